// Package mcrcon is a client for the Minecraft remote console (Source RCON)
// protocol.
package mcrcon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrAuthRejected is returned when the server refuses the password.
	ErrAuthRejected = errors.New("authentication rejected")
	// ErrInvalidResponseID is returned when a response does not answer our request.
	ErrInvalidResponseID = errors.New("invalid response ID")
	// ErrCommandTooLong is returned for commands that do not fit in one packet.
	ErrCommandTooLong = errors.New("command too long")
)

// Client manages the RCON connection
type Client struct {
	conn   net.Conn
	config Config
	log    *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for connection diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// Dial connects to the server, retrying failed attempts.
func Dial(ctx context.Context, config Config, opts ...Option) (*Client, error) {
	c := &Client{config: config, log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}

	address := config.address()
	dialer := net.Dialer{Timeout: config.timeout()}
	attempts := config.retries()

	var conn net.Conn
	var err error
	for i := 0; i < attempts; i++ {
		conn, err = dialer.DialContext(ctx, "tcp", address)
		if err == nil {
			break
		}
		c.log.Warn("dial failed",
			zap.String("address", address),
			zap.Int("attempt", i+1),
			zap.Error(err))
		if i == attempts-1 {
			break
		}
		t := time.NewTimer(retryDelay)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, fmt.Errorf("failed to connect to %s: %w", address, ctx.Err())
		case <-t.C:
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", address, err)
	}

	// Disable Nagle's algorithm for better performance
	if tcpConn, ok := conn.(*net.TCPConn); ok {
		tcpConn.SetNoDelay(true)
	}

	c.conn = conn
	c.log.Debug("connected", zap.String("address", address))
	return c, nil
}

// Close closes the RCON connection
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Authenticate performs RCON authentication
func (c *Client) Authenticate() error {
	packet := &Packet{
		ID:   rconPID,
		Type: rconAuthenticate,
		Body: c.config.Password,
	}

	if err := c.sendPacket(packet); err != nil {
		return fmt.Errorf("failed to send auth packet: %w", err)
	}

	response, err := c.receivePacket()
	if err != nil {
		return fmt.Errorf("failed to receive auth response: %w", err)
	}

	if response.ID == -1 {
		return ErrAuthRejected
	}

	c.log.Debug("authenticated")
	return nil
}

// Exec sends a command and returns the response body, which may carry
// formatting directives.
func (c *Client) Exec(command string) (string, error) {
	if len(command) >= dataBuffSize {
		return "", fmt.Errorf("%w (%d bytes). Maximum: %d", ErrCommandTooLong, len(command), dataBuffSize-1)
	}

	packet := &Packet{
		ID:   rconPID,
		Type: rconExecCommand,
		Body: command,
	}

	if err := c.sendPacket(packet); err != nil {
		return "", fmt.Errorf("failed to send command: %w", err)
	}

	response, err := c.receivePacket()
	if err != nil {
		return "", fmt.Errorf("failed to receive response: %w", err)
	}

	if response.ID != rconPID {
		return "", ErrInvalidResponseID
	}

	c.log.Debug("command executed",
		zap.String("command", command),
		zap.Int32("response_size", response.Size))
	return response.Body, nil
}

func (c *Client) sendPacket(packet *Packet) error {
	c.conn.SetWriteDeadline(time.Now().Add(c.config.timeout()))
	defer c.conn.SetWriteDeadline(time.Time{})
	return writePacket(c.conn, packet)
}

func (c *Client) receivePacket() (*Packet, error) {
	c.conn.SetReadDeadline(time.Now().Add(c.config.timeout()))
	defer c.conn.SetReadDeadline(time.Time{})
	return readPacket(c.conn)
}
