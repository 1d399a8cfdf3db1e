// Package render paints segmented text for terminals, web views and
// Minecraft chat components.
package render

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"mctext-go/mctext"
)

// ANSI renders runs as terminal escape sequences for a fixed color profile.
// Colours outside the profile are degraded by termenv.
type ANSI struct {
	r *lipgloss.Renderer
}

// NewANSI returns an ANSI renderer writing sequences for profile.
func NewANSI(w io.Writer, profile termenv.Profile) *ANSI {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return &ANSI{r: r}
}

// Render returns the styled text. Runs in the default colour without
// decorations are written as-is.
func (a *ANSI) Render(runs []mctext.TextRun) string {
	var b strings.Builder
	for _, run := range runs {
		if run.Color == "" && run.Style == 0 {
			b.WriteString(run.Text)
			continue
		}
		st := a.style(run)
		// lipgloss pads multi-line blocks to equal width, so style each line
		// on its own.
		for i, line := range strings.Split(run.Text, "\n") {
			if i > 0 {
				b.WriteByte('\n')
			}
			if line != "" {
				b.WriteString(st.Render(line))
			}
		}
	}
	return b.String()
}

func (a *ANSI) style(run mctext.TextRun) lipgloss.Style {
	st := a.r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if run.Color != "" {
		st = st.Foreground(lipgloss.Color(run.Color))
	}
	if run.Style.Has(mctext.Bold) {
		st = st.Bold(true)
	}
	if run.Style.Has(mctext.Italic) {
		st = st.Italic(true)
	}
	if run.Style.Has(mctext.Underline) {
		st = st.Underline(true)
	}
	if run.Style.Has(mctext.Strikethrough) {
		st = st.Strikethrough(true)
	}
	if run.Style.Has(mctext.Obfuscated) {
		st = st.Blink(true)
	}
	return st
}

// Color modes accepted by ProfileFor.
const (
	ModeAuto      = "auto"
	ModeTrueColor = "truecolor"
	ModeANSI256   = "ansi256"
	ModeANSI      = "ansi"
	ModeNone      = "none"
)

// ProfileFor maps a colour mode to a termenv profile. In auto mode colours
// are only used when w is a terminal, honouring NO_COLOR and CLICOLOR_FORCE.
func ProfileFor(mode string, w io.Writer) termenv.Profile {
	switch strings.ToLower(mode) {
	case ModeTrueColor:
		return termenv.TrueColor
	case ModeANSI256:
		return termenv.ANSI256
	case ModeANSI:
		return termenv.ANSI
	case ModeNone:
		return termenv.Ascii
	}
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}
