package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mctext-go/config"
	"mctext-go/mctext"
)

// skipConfig marks commands that must run even when the config file is broken.
const skipConfig = "skip-config"

type globalOptions struct {
	configPath   string
	verbose      bool
	colorMode    string
	defaultColor string
	sentinel     string
	styles       bool
}

// app carries the streams and resolved state for one invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	opts globalOptions
	path string
	cfg  config.Config
	log  *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   AppName,
		Short: "Render and strip Minecraft section-sign formatted text.",
		Long: `mctext splits legacy Minecraft formatted text (§a, §c, ... §r) into
coloured runs and paints them for terminals, HTML or JSON. It also talks to
servers over RCON and renders their colour-coded replies.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.configPath, "config", "", "Config file (default: user config dir/mctext/config.toml)")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "Debug logging on stderr")
	flags.StringVar(&a.opts.colorMode, "color-mode", "", "auto, truecolor, ansi256, ansi or none")
	flags.StringVar(&a.opts.defaultColor, "default-color", "", "Colour for text outside any directive (#RRGGBB)")
	flags.StringVar(&a.opts.sentinel, "sentinel", "", "Directive marker character (default §)")
	flags.BoolVar(&a.opts.styles, "styles", false, "Recognise k-o style codes")

	root.AddCommand(
		newRenderCmd(a),
		newStripCmd(a),
		newRCONCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup resolves the config path, loads the file and applies flag overrides.
func (a *app) setup(cmd *cobra.Command) error {
	a.path = a.opts.configPath
	if a.path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		a.path = p
	}

	a.cfg = config.Default()
	if cmd.Annotations[skipConfig] == "" {
		cfg, err := config.Load(a.path)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	overrides := []struct {
		flag, key, value string
	}{
		{"color-mode", "render.color_mode", a.opts.colorMode},
		{"default-color", "render.default_color", a.opts.defaultColor},
		{"sentinel", "render.sentinel", a.opts.sentinel},
		{"styles", "render.style_codes", fmt.Sprint(a.opts.styles)},
	}
	for _, o := range overrides {
		if !cmd.Flags().Changed(o.flag) {
			continue
		}
		cfg, err := a.cfg.Patch(o.key, o.value)
		if err != nil {
			return fmt.Errorf("--%s: %w", o.flag, err)
		}
		a.cfg = cfg
	}

	level := a.cfg.Log.Level
	if a.opts.verbose {
		level = "debug"
	}
	log, err := newLogger(level, a.stderr)
	if err != nil {
		return err
	}
	a.log = log.With(zap.String("command", cmd.Name()))
	a.log.Debug("configuration loaded", zap.String("path", a.path))
	return nil
}

func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		lvl,
	)
	return zap.New(core), nil
}

func (a *app) segmenter() *mctext.Segmenter {
	return newSegmenter(a.cfg.Render)
}

// newSegmenter builds the Segmenter described by the render settings.
func newSegmenter(r config.RenderConfig) *mctext.Segmenter {
	opts := []mctext.Option{
		mctext.WithDefaultColor(r.DefaultColor),
		mctext.WithSentinel(r.SentinelRune()),
	}
	if r.StyleCodes {
		opts = append(opts, mctext.WithStyleCodes())
	}
	return mctext.NewSegmenter(opts...)
}
