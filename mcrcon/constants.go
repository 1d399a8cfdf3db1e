package mcrcon

import "time"

const (
	DefaultPort    = "25575"
	DefaultHost    = "localhost"
	DefaultTimeout = 10 * time.Second
	DefaultRetries = 3
	dataBuffSize   = 4096
	rconPID        = 0xBADC0DE
	retryDelay     = time.Second
)
