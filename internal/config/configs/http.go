package configs

import (
	"fmt"
	"time"
)

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadTimeout and WriteTimeout bound a single request. Ad requests are
	// on the page-rendering path, so they are kept short.
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	// ShutdownTimeout is how long in-flight requests get to finish after a
	// termination signal.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Addr returns the listen address for http.Server.
func (c HTTP) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
