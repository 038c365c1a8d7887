package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// AMQPURL enables status update publishing to RabbitMQ. When empty,
	// status changes are only logged.
	AMQPURL      string
	AMQPExchange string

	// MetricsCron is the six field schedule of the bucket gauge refresh.
	MetricsCron string
}
