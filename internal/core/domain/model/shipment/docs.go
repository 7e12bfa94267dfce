// Package shipment provides domain entities and business logic for shipment
// lifecycle tracking. It implements the Shipment aggregate root together with
// its append-only TrackingEvent audit trail.
//
// The package includes:
//   - Shipment: The aggregate root holding the current state of one delivery
//   - Status: The closed set of lifecycle states and the IsActive predicate
//   - TrackingEvent: An immutable record of one status the shipment has held
//
// Key business rules:
//   - Shipments require a sender, recipient, destination and a valid tracking number
//   - Every shipment starts in Pending and carries at least its creation event
//   - Status transitions are deliberately unrestricted: any valid status may
//     follow any other, and Delivered/Returned/Cancelled are terminal only for
//     the IsActive business predicate
//   - ActualDelivery is recorded when a shipment reaches Delivered and is
//     never cleared by later transitions
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
