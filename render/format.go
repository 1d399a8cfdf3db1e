package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"mctext-go/mctext"
)

// Format selects an output representation.
type Format string

const (
	FormatANSI      Format = "ansi"
	FormatHTML      Format = "html"
	FormatJSON      Format = "json"
	FormatComponent Format = "component"
	FormatPlain     Format = "plain"
	FormatLegacy    Format = "legacy"
)

var formats = []Format{FormatANSI, FormatHTML, FormatJSON, FormatComponent, FormatPlain, FormatLegacy}

// ParseFormat accepts a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of %s)", s, formatList())
}

func formatList() string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Writer renders formatted text to an output in one Format.
type Writer struct {
	w         io.Writer
	format    Format
	segmenter *mctext.Segmenter
	ansi      *ANSI
	width     int
	tail      string
}

// NewWriter binds a format and segmenter to w. profile only matters for
// FormatANSI.
func NewWriter(w io.Writer, format Format, sg *mctext.Segmenter, profile termenv.Profile) *Writer {
	return &Writer{
		w:         w,
		format:    format,
		segmenter: sg,
		ansi:      NewANSI(w, profile),
		tail:      "…",
	}
}

// SetWidth truncates every written text to width display cells (0 disables).
func (wr *Writer) SetWidth(width int, tail string) {
	wr.width, wr.tail = width, tail
}

// Write renders s followed by a newline.
func (wr *Writer) Write(s string) error {
	runs := wr.segmenter.Segment(s)
	if wr.width > 0 {
		runs = Truncate(runs, wr.width, wr.tail)
	}
	out, err := wr.render(runs)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(wr.w, out+"\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (wr *Writer) render(runs []mctext.TextRun) (string, error) {
	switch wr.format {
	case FormatANSI:
		return wr.ansi.Render(runs), nil
	case FormatHTML:
		return HTML(runs), nil
	case FormatJSON:
		b, err := JSON(runs)
		if err != nil {
			return "", fmt.Errorf("failed to encode segments: %w", err)
		}
		return string(b), nil
	case FormatComponent:
		b, err := json.Marshal(ToComponent(runs))
		if err != nil {
			return "", fmt.Errorf("failed to encode component: %w", err)
		}
		return string(b), nil
	case FormatPlain:
		return mctext.Plain(runs), nil
	case FormatLegacy:
		return wr.segmenter.Encode(runs), nil
	}
	return "", fmt.Errorf("unknown format %q", wr.format)
}
