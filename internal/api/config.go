package api

// Config holds server configuration.
type Config struct {
	Host string // Bind address (default "127.0.0.1")
	Port int    // Listen port
}
