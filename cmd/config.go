package cmd

import "time"

// Config carries everything the composition root needs to wire the
// application. Values come from the environment; see cmd/app/main.go.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string

	// RedisAddr enables the tracking cache when set; empty falls back to
	// hitting the database on every tracking request.
	RedisAddr string

	// KafkaHost enables parcel event publishing when set; empty disables
	// it, which is the usual mode in development.
	KafkaHost              string
	KafkaParcelEventsTopic string

	WizardTTL        time.Duration
	TrackingCacheTTL time.Duration
	PaymentDelay     time.Duration
}
