package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mctext-go/render"
)

const maxLineSize = 1 << 20

func newRenderCmd(a *app) *cobra.Command {
	var (
		format string
		width  int
	)
	cmd := &cobra.Command{
		Use:   "render [text...]",
		Short: "Render formatted text as ANSI, HTML, JSON or plain text",
		Long: `Render splits formatted text into coloured runs and prints them in the
chosen format. Arguments are joined with spaces and rendered as one text.
Without arguments every line of standard input is rendered.`,
		Example: `  mctext render "§aHello §cWorld"
  mctext render --format json "§6gold"
  mctext --sentinel '&' render "&cred &9blue"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			if width < 0 {
				return fmt.Errorf("width must not be negative, got %d", width)
			}
			return a.renderInputs(args, f, width)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(render.FormatANSI), "Output format: ansi, html, json, component, plain or legacy")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Truncate every text to this many cells (0 disables)")
	return cmd
}

func newStripCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strip [text...]",
		Short: "Remove formatting directives and print the plain text",
		Example: `  mctext strip "§aHello §cWorld"
  cat motd.txt | mctext strip`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sg := a.segmenter()
			return a.eachInput(args, func(s string) error {
				_, err := fmt.Fprintln(a.stdout, sg.Strip(s))
				return err
			})
		},
	}
}

func (a *app) renderInputs(args []string, format render.Format, width int) error {
	profile := render.ProfileFor(a.cfg.Render.ColorMode, a.stdout)
	w := render.NewWriter(a.stdout, format, a.segmenter(), profile)
	if width > 0 {
		w.SetWidth(width, "…")
	}
	return a.eachInput(args, w.Write)
}

// eachInput calls fn once with the joined arguments, or once per stdin line
// when there are none.
func (a *app) eachInput(args []string, fn func(string) error) error {
	if len(args) > 0 {
		return fn(strings.Join(args, " "))
	}

	scanner := bufio.NewScanner(a.stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
