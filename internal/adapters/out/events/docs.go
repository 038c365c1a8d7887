// Package events publishes committed order status changes.
//
// AMQPPublisher sends one persistent JSON message per change to a RabbitMQ
// topic exchange with the routing key "order.status.<new status>", so
// consumers can bind to e.g. "order.status.delivered" or "order.status.#".
// LogPublisher is used when no broker is configured and only writes the
// changes to the structured log.
package events
