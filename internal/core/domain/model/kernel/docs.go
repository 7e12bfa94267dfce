// Package kernel provides core domain primitives and utilities for the shipment tracker.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - TrackingNumber: A value object for the human-readable unique shipment code,
//     with validation and a pluggable random generator
//   - Clock: An injectable time source keeping timestamp assignment testable
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
