// Package services provides domain services that coordinate more than one
// aggregate or need collaborators the aggregates must not know about.
//
// The package includes:
//   - DeliveryHandshake: hands an order to a delivery partner, issues the
//     one-time codes and verifies the customer's code at drop-off
//
// Randomness and time are injected through the CodeGenerator and Clock
// interfaces so that the handshake stays deterministic under test.
package services
