// Package order provides the Order aggregate and the status taxonomy of the
// FreshCart order lifecycle.
//
// The package includes:
//   - Status: the closed set of canonical lifecycle stages, with labels, display
//     buckets and the manual transition table
//   - ParseStatus and Classify: strict and lenient readers of the many historical
//     status spellings, backed by one alias table
//   - Order: the aggregate root holding the timeline, the delivery handshake OTPs
//     and the payment fields touched on delivery
//
// Key business rules:
//   - the handshake moves an order Pending..Shipped -> OutForDelivery -> Delivered
//   - Delivered and every cancelled-bucket stage are terminal
//   - rejected operations never mutate the aggregate or its timeline
package order
