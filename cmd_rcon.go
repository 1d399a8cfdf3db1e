package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mctext-go/config"
	"mctext-go/mcrcon"
	"mctext-go/render"
)

type rconOptions struct {
	host     string
	port     string
	password string
	wait     uint
	terminal bool
	silent   bool
	noColors bool
	raw      bool
}

func newRCONCmd(a *app) *cobra.Command {
	var o rconOptions
	cmd := &cobra.Command{
		Use:     "rcon [commands...]",
		Short:   "Send rcon commands to a Minecraft server",
		Long:    mcrcon.Usage,
		Example: mcrcon.Example,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRCON(cmd, o, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.host, "host", "H", "", "Server address (default: localhost)")
	flags.StringVarP(&o.port, "port", "P", "", "Port (default: 25575)")
	flags.StringVarP(&o.password, "password", "p", "", "Rcon password")
	flags.UintVarP(&o.wait, "wait", "w", 0, "Wait time between commands in seconds (1-600)")
	flags.BoolVarP(&o.terminal, "terminal", "t", false, "Terminal mode")
	flags.BoolVarP(&o.silent, "silent", "s", false, "Silent mode")
	flags.BoolVarP(&o.noColors, "no-colors", "c", false, "Disable colors")
	flags.BoolVarP(&o.raw, "raw", "r", false, "Output raw packets")
	return cmd
}

func (a *app) runRCON(cmd *cobra.Command, o rconOptions, commands []string) error {
	rc := a.cfg.RCON
	flags := cmd.Flags()
	if flags.Changed("host") {
		rc.Host = o.host
	}
	if flags.Changed("port") {
		rc.Port = o.port
	}
	if flags.Changed("password") {
		rc.Password = o.password
	}
	if flags.Changed("wait") {
		if o.wait < 1 || o.wait > config.MaxWaitSeconds {
			return fmt.Errorf("wait value out of range (1-%d)", config.MaxWaitSeconds)
		}
		rc.WaitSeconds = o.wait
	}
	if rc.Password == "" {
		return errors.New("you must provide password (-p password)")
	}

	ctx := cmd.Context()
	client, err := mcrcon.Dial(ctx, mcrcon.Config{
		Host:     rc.Host,
		Port:     rc.Port,
		Password: rc.Password,
		Timeout:  time.Duration(rc.TimeoutSecs) * time.Second,
		Retries:  rc.Retries,
	}, mcrcon.WithLogger(a.log))
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Authenticate(); err != nil {
		return err
	}

	session := mcrcon.NewSession(client, a.stdout,
		mcrcon.WithFormatter(a.formatter(a.cfg.Render, o)),
		mcrcon.WithWait(time.Duration(rc.WaitSeconds)*time.Second),
		mcrcon.WithSilent(o.silent),
		mcrcon.WithErrorOutput(a.stderr),
		mcrcon.WithSessionLogger(a.log),
	)

	if !o.terminal && len(commands) > 0 {
		return session.RunCommands(ctx, commands)
	}
	return a.runTerminal(ctx, session, o)
}

// formatter picks the response formatter for the given render settings.
func (a *app) formatter(rc config.RenderConfig, o rconOptions) mcrcon.Formatter {
	switch {
	case o.raw:
		return mcrcon.RawFormatter()
	case o.noColors:
		return mcrcon.PlainFormatter(newSegmenter(rc))
	default:
		profile := render.ProfileFor(rc.ColorMode, a.stdout)
		return mcrcon.ColorFormatter(newSegmenter(rc), render.NewANSI(a.stdout, profile))
	}
}

func (a *app) runTerminal(ctx context.Context, session *mcrcon.Session, o rconOptions) error {
	rlConfig := &readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "q",
		Stdout:          a.stdout,
		Stderr:          a.stderr,
	}
	if a.stdin != os.Stdin {
		rlConfig.Stdin = io.NopCloser(a.stdin)
		rlConfig.FuncIsTerminal = func() bool { return false }
		rlConfig.FuncMakeRaw = func() error { return nil }
		rlConfig.FuncExitRaw = func() error { return nil }
	}
	rl, err := readline.NewEx(rlConfig)
	if err != nil {
		return fmt.Errorf("failed to start terminal: %w", err)
	}

	fmt.Fprintln(a.stdout, "Logged in.")
	fmt.Fprintln(a.stdout, "Type 'Q' or press Ctrl-D / Ctrl-C to disconnect.")

	watchCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		a.watchRenderConfig(watchCtx, session, o)
	}()
	// Closing the instance unblocks a pending Readline once ctx ends.
	go func() {
		defer wg.Done()
		<-watchCtx.Done()
		rl.Close()
	}()
	defer func() {
		cancel()
		wg.Wait()
	}()

	err = session.RunTerminal(rl)
	if ctx.Err() != nil {
		// Interrupted: disconnect quietly.
		return nil
	}
	return err
}

// watchRenderConfig applies edits to the config file to a running session.
func (a *app) watchRenderConfig(ctx context.Context, session *mcrcon.Session, o rconOptions) {
	err := config.Watch(ctx, a.path, func(cfg config.Config, err error) {
		if err != nil {
			a.log.Warn("config reload failed", zap.Error(err))
			return
		}
		session.SetFormatter(a.formatter(cfg.Render, o))
		a.log.Info("render settings reloaded", zap.String("path", a.path))
	})
	if err != nil {
		a.log.Debug("config watch disabled", zap.Error(err))
	}
}
