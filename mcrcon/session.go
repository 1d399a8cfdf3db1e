package mcrcon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"mctext-go/mctext"
	"mctext-go/render"
)

// Executor runs one console command. *Client implements it.
type Executor interface {
	Exec(command string) (string, error)
}

// LineReader yields terminal input lines. *readline.Instance implements it.
type LineReader interface {
	Readline() (string, error)
}

// Formatter turns a raw response body into printable text.
type Formatter func(string) string

// RawFormatter prints responses untouched.
func RawFormatter() Formatter {
	return func(s string) string { return s }
}

// PlainFormatter removes formatting directives.
func PlainFormatter(sg *mctext.Segmenter) Formatter {
	return sg.Strip
}

// ColorFormatter paints responses as terminal colours. The server resets
// colours at line breaks, so every line is segmented on its own.
func ColorFormatter(sg *mctext.Segmenter, a *render.ANSI) Formatter {
	return func(s string) string {
		var b strings.Builder
		for _, line := range strings.SplitAfter(s, "\n") {
			b.WriteString(a.Render(sg.Segment(line)))
		}
		return b.String()
	}
}

// Session prints command responses for a connected server.
type Session struct {
	exec   Executor
	out    io.Writer
	errOut io.Writer
	log    *zap.Logger
	wait   time.Duration
	silent bool

	mu     sync.RWMutex
	format Formatter
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithFormatter sets the initial response formatter.
func WithFormatter(f Formatter) SessionOption {
	return func(s *Session) { s.format = f }
}

// WithWait sets the delay between batched commands.
func WithWait(d time.Duration) SessionOption {
	return func(s *Session) { s.wait = d }
}

// WithSilent suppresses response output.
func WithSilent(silent bool) SessionOption {
	return func(s *Session) { s.silent = silent }
}

// WithErrorOutput sets where terminal-mode command errors are reported.
func WithErrorOutput(w io.Writer) SessionOption {
	return func(s *Session) { s.errOut = w }
}

// WithSessionLogger sets the diagnostic logger.
func WithSessionLogger(l *zap.Logger) SessionOption {
	return func(s *Session) { s.log = l }
}

// NewSession returns a session printing to out.
func NewSession(exec Executor, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		exec:   exec,
		out:    out,
		errOut: io.Discard,
		log:    zap.NewNop(),
		format: RawFormatter(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetFormatter swaps the formatter; safe to call while a session runs.
func (s *Session) SetFormatter(f Formatter) {
	s.mu.Lock()
	s.format = f
	s.mu.Unlock()
}

func (s *Session) formatter() Formatter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.format
}

// Execute runs a command and prints its response.
func (s *Session) Execute(command string) error {
	body, err := s.exec.Exec(command)
	if err != nil {
		return err
	}
	if !s.silent && len(body) > 0 {
		s.printResponse(body)
	}
	return nil
}

// printResponse prints the response, adding a trailing newline if missing.
func (s *Session) printResponse(body string) {
	text := s.formatter()(body)
	fmt.Fprint(s.out, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(s.out)
	}
}

// RunCommands executes commands in order, waiting between them if
// configured. It stops at the first failure or when ctx is done.
func (s *Session) RunCommands(ctx context.Context, commands []string) error {
	for i, cmd := range commands {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Execute(cmd); err != nil {
			return fmt.Errorf("command %q failed: %w", cmd, err)
		}

		if i < len(commands)-1 && s.wait > 0 {
			timer := time.NewTimer(s.wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	return nil
}

// RunTerminal reads commands until EOF, interrupt or "q". Failed commands
// are reported and the loop continues. "stop" is sent and then ends the
// session, since the server closes the connection.
func (s *Session) RunTerminal(lines LineReader) error {
	for {
		line, err := lines.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("input error: %w", err)
		}

		command := strings.TrimSpace(line)
		if len(command) == 0 {
			continue
		}

		if strings.EqualFold(command, "q") {
			return nil
		}

		if err := s.Execute(command); err != nil {
			s.log.Debug("command failed", zap.String("command", command), zap.Error(err))
			fmt.Fprintf(s.errOut, "Error: %v\n", err)
		}

		// Exit on "stop" command to avoid server-side bug
		if strings.EqualFold(command, "stop") {
			return nil
		}
	}
}
