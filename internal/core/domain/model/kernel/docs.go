// Package kernel provides the value objects shared by the FreshCart domain model.
//
// The package includes:
//   - UUID: identifier for orders, customers and delivery partners
//   - OTP: the six digit one-time code exchanged during the delivery handshake
//
// Both are immutable and safe for concurrent use. Their zero values are invalid
// and report so through Validate.
package kernel
