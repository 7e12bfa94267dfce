package cli

import "tracker/internal/core/domain/model/shipment"

// ANSI escape sequences for terminal rendering.
const (
	green   = "\033[0;32m"
	red     = "\033[0;31m"
	yellow  = "\033[1;33m"
	cyan    = "\033[0;36m"
	blue    = "\033[0;34m"
	magenta = "\033[0;35m"
	bold    = "\033[1m"
	reset   = "\033[0m"
)

var statusColors = map[shipment.Status]string{
	shipment.Pending:        yellow,
	shipment.PickedUp:       cyan,
	shipment.InTransit:      blue,
	shipment.OutForDelivery: magenta,
	shipment.Delivered:      green,
	shipment.FailedAttempt:  red,
	shipment.Returned:       red,
	shipment.Cancelled:      red,
}

func statusColor(status shipment.Status) string {
	if color, ok := statusColors[status]; ok {
		return color
	}
	return reset
}
