// Package partner provides the DeliveryPartner aggregate: the registry of people
// who can be handed an order at dispatch.
//
// Key business rules:
//   - a partner has a valid identifier, a non-empty name and a phone number
//   - only active partners can receive orders
package partner
