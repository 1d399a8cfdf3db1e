package mcrcon

import (
	"net"
	"time"
)

// Config holds the connection settings
type Config struct {
	Host     string
	Port     string
	Password string
	Timeout  time.Duration
	Retries  int
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

func (c Config) retries() int {
	if c.Retries <= 0 {
		return DefaultRetries
	}
	return c.Retries
}

// address joins host and port, filling in the defaults for empty fields.
func (c Config) address() string {
	host, port := c.Host, c.Port
	if host == "" {
		host = DefaultHost
	}
	if port == "" {
		port = DefaultPort
	}
	return net.JoinHostPort(host, port)
}
