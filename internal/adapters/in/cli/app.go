// Package cli implements the inbound adapter for the single-operator
// terminal surface. It coordinates between parsed command-line input and the
// application use cases, rendering results with the ANSI color scheme the
// tool has always used.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/pkg/errs"
)

const (
	timestampFormat = "2006-01-02 15:04:05"
	etaFormat       = "2006-01-02 15:04"
)

// App coordinates between terminal subcommands and application use cases.
type App struct {
	out io.Writer

	// Command handlers
	createShipmentHandler commands.CreateShipmentCommandHandler
	updateStatusHandler   commands.UpdateStatusCommandHandler

	// Query handlers
	getShipmentHandler    queries.GetShipmentQueryHandler
	listShipmentsHandler  queries.ListShipmentsQueryHandler
	getHistoryHandler     queries.GetHistoryQueryHandler
	getStatsHandler       queries.GetStatsQueryHandler
	exportSnapshotHandler queries.ExportSnapshotQueryHandler
}

// NewApp creates the terminal adapter with the required command and query handlers.
func NewApp(
	out io.Writer,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateStatusHandler commands.UpdateStatusCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
	getHistoryHandler queries.GetHistoryQueryHandler,
	getStatsHandler queries.GetStatsQueryHandler,
	exportSnapshotHandler queries.ExportSnapshotQueryHandler,
) *App {
	return &App{
		out:                   out,
		createShipmentHandler: createShipmentHandler,
		updateStatusHandler:   updateStatusHandler,
		getShipmentHandler:    getShipmentHandler,
		listShipmentsHandler:  listShipmentsHandler,
		getHistoryHandler:     getHistoryHandler,
		getStatsHandler:       getStatsHandler,
		exportSnapshotHandler: exportSnapshotHandler,
	}
}

// AddRequest carries the parsed arguments of the add subcommand.
type AddRequest struct {
	Sender            string
	Recipient         string
	Destination       string
	WeightKg          float64
	Courier           string
	EstimatedDelivery *time.Time
	Notes             string
}

// Add registers a new shipment and prints its generated tracking number.
func (a *App) Add(ctx context.Context, req AddRequest) error {
	cmd, err := commands.NewCreateShipmentCommand(
		req.Sender, req.Recipient, req.Destination, req.WeightKg,
		req.Courier, req.EstimatedDelivery, req.Notes,
	)
	if err != nil {
		return err
	}

	created, err := a.createShipmentHandler.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s✓ Shipment created%s\n", green, reset)
	fmt.Fprintf(a.out, "  Tracking : %s%s%s%s\n", bold, cyan, created.TrackingNumber(), reset)
	fmt.Fprintf(a.out, "  From     : %s  →  %s\n", created.Sender(), created.Recipient())
	fmt.Fprintf(a.out, "  Dest     : %s\n", created.Destination())
	return nil
}

// List prints all shipments, optionally restricted to one status,
// most recently updated first.
func (a *App) List(ctx context.Context, statusFilter string) error {
	var filter *shipment.Status
	if statusFilter != "" {
		parsed, err := shipment.StatusFromString(statusFilter)
		if err != nil {
			return err
		}
		filter = &parsed
	}

	query, err := queries.NewListShipmentsQuery(filter)
	if err != nil {
		return err
	}

	shipments, err := a.listShipmentsHandler.Handle(ctx, query)
	if err != nil {
		return err
	}

	if len(shipments) == 0 {
		fmt.Fprintf(a.out, "%sNo shipments found.%s\n", yellow, reset)
		return nil
	}

	fmt.Fprintf(a.out, "\n%s%s── Shipments (%d) %s%s\n",
		bold, blue, len(shipments), strings.Repeat("─", 38), reset)
	for _, s := range shipments {
		a.printShipmentLine(s)
	}
	fmt.Fprintln(a.out)
	return nil
}

// Track prints one shipment's details and its full event history.
// An unknown tracking number is reported on the terminal, not as an error.
func (a *App) Track(ctx context.Context, trackingNumber string) error {
	parsed, err := kernel.NewTrackingNumber(trackingNumber)
	if err != nil {
		return err
	}

	query, err := queries.NewGetShipmentQuery(parsed)
	if err != nil {
		return err
	}

	found, err := a.getShipmentHandler.Handle(ctx, query)
	if err != nil {
		return err
	}
	if found == nil {
		fmt.Fprintf(a.out, "%s✗ Tracking number not found: %s%s\n", red, trackingNumber, reset)
		return nil
	}

	sc := statusColor(found.Status)
	fmt.Fprintf(a.out, "\n%s%s── Tracking: %s%s%s\n", bold, blue, cyan, found.TrackingNumber, reset)
	fmt.Fprintf(a.out, "  Status     : %s%s%s%s\n", sc, bold, found.Status, reset)
	fmt.Fprintf(a.out, "  Sender     : %s\n", found.Sender)
	fmt.Fprintf(a.out, "  Recipient  : %s\n", found.Recipient)
	fmt.Fprintf(a.out, "  Destination: %s\n", found.Destination)
	if found.EstimatedDelivery != nil {
		fmt.Fprintf(a.out, "  ETA        : %s%s%s\n",
			yellow, found.EstimatedDelivery.Format(etaFormat), reset)
	}
	if found.ActualDelivery != nil {
		fmt.Fprintf(a.out, "  Delivered  : %s%s%s\n",
			green, found.ActualDelivery.Format(timestampFormat), reset)
	}

	historyQuery, err := queries.NewGetHistoryQuery(parsed)
	if err != nil {
		return err
	}
	events, err := a.getHistoryHandler.Handle(ctx, historyQuery)
	if err != nil {
		return err
	}

	if len(events) > 0 {
		fmt.Fprintf(a.out, "\n  %sHistory:%s\n", bold, reset)
		for _, event := range events {
			location := ""
			if event.Location != "" {
				location = " @ " + event.Location
			}
			fmt.Fprintf(a.out, "    %s  %s%s  %s\n",
				event.Timestamp.Format(timestampFormat), event.Status, location, event.Message)
		}
	}
	fmt.Fprintln(a.out)
	return nil
}

// Update moves a shipment to a new status, recording optional location and
// message context on the resulting tracking event.
func (a *App) Update(ctx context.Context, trackingNumber, newStatus, location, message string) error {
	parsed, err := kernel.NewTrackingNumber(trackingNumber)
	if err != nil {
		return err
	}

	status, err := shipment.StatusFromString(newStatus)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateStatusCommand(parsed, status, location, message)
	if err != nil {
		return err
	}

	updated, err := a.updateStatusHandler.Handle(ctx, cmd)
	if err != nil {
		var notFoundErr *errs.ObjectNotFoundError
		if errors.As(err, &notFoundErr) {
			fmt.Fprintf(a.out, "%s✗ Tracking number not found%s\n", red, reset)
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "%s✓ %s → %s%s\n", green, updated.TrackingNumber(), updated.Status(), reset)
	return nil
}

// Status prints the aggregate counters with a per-status bar chart.
func (a *App) Status(ctx context.Context) error {
	stats, err := a.getStatsHandler.Handle(ctx, queries.NewGetStatsQuery())
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\n%s%s── Shipment Tracker Status %s%s\n",
		bold, blue, strings.Repeat("─", 34), reset)
	fmt.Fprintf(a.out, "  Total    : %s%d%s   Active: %s%d%s\n",
		bold, stats.Total, reset, bold, stats.Active, reset)
	fmt.Fprintf(a.out, "\n  %sBy Status:%s\n", bold, reset)

	names := make([]string, 0, len(stats.ByStatus))
	for name := range stats.ByStatus {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		count := stats.ByStatus[name]
		color := reset
		if parsed, parseErr := shipment.StatusFromString(name); parseErr == nil {
			color = statusColor(parsed)
		}
		bar := strings.Repeat("█", min(count, 40))
		fmt.Fprintf(a.out, "    %s%-20s%s %4d  %s\n", color, name, reset, count, bar)
	}
	fmt.Fprintln(a.out)
	return nil
}

func (a *App) printShipmentLine(s queries.ShipmentResponse) {
	sc := statusColor(s.Status)
	fmt.Fprintf(a.out, "  %s#%-4d%s %s%s%s  %s%-18s%s %s\n",
		bold, s.ID, reset, cyan, s.TrackingNumber, reset, sc, s.Status, reset, s.Recipient)

	line := fmt.Sprintf("            %s → %s", s.Sender, s.Destination)
	if s.Courier != "" {
		line += "  courier:" + s.Courier
	}
	if s.EstimatedDelivery != nil {
		line += fmt.Sprintf("  eta:%s%s%s", yellow, s.EstimatedDelivery.Format(etaFormat), reset)
	}
	fmt.Fprintln(a.out, line)
}
