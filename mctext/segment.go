// Package mctext parses legacy Minecraft formatted text, where a section
// sign followed by a code character switches the colour of the text after it.
//
//	§aHello §cWorld  ->  [{"Hello ", "#55FF55"}, {"World", "#FF5555"}]
//
// Only the 16 colour codes and the reset code r are directives by default.
// Any other character after the sentinel is kept as literal text, as is a
// sentinel at the very end of the input.
package mctext

import (
	"strings"
	"unicode/utf8"
)

// Sentinel introduces a formatting directive.
const Sentinel = '§'

// TextRun is a maximal span of text sharing one colour and style.
type TextRun struct {
	Text  string `json:"text"`
	Color string `json:"color"`
	Style Style  `json:"style,omitempty"`
}

// Segmenter splits formatted text into runs. It holds no mutable state and
// is safe for concurrent use.
type Segmenter struct {
	sentinel     rune
	defaultColor string
	styles       bool
}

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithDefaultColor sets the colour used before the first directive and
// after a reset. The zero value "" means "inherit from the surroundings".
func WithDefaultColor(color string) Option {
	return func(sg *Segmenter) {
		sg.defaultColor = color
	}
}

// WithSentinel replaces the section sign, e.g. with '&'.
func WithSentinel(r rune) Option {
	return func(sg *Segmenter) {
		if r != utf8.RuneError {
			sg.sentinel = r
		}
	}
}

// WithStyleCodes makes k, l, m, n and o directives. A colour code clears
// active styles and r clears colour and styles.
func WithStyleCodes() Option {
	return func(sg *Segmenter) {
		sg.styles = true
	}
}

// NewSegmenter returns a Segmenter for the section sign and the default
// colour "" unless options say otherwise.
func NewSegmenter(opts ...Option) *Segmenter {
	sg := &Segmenter{sentinel: Sentinel}
	for _, opt := range opts {
		opt(sg)
	}
	return sg
}

var std = NewSegmenter()

// Segment splits s with the default Segmenter.
func Segment(s string) []TextRun {
	return std.Segment(s)
}

// Strip removes directives from s with the default Segmenter.
func Strip(s string) string {
	return std.Strip(s)
}

// DefaultColor returns the colour assigned to text outside any directive.
func (sg *Segmenter) DefaultColor() string {
	return sg.defaultColor
}

type directiveKind uint8

const (
	setColor directiveKind = iota
	reset
	addStyle
)

type directive struct {
	kind  directiveKind
	color string
	style Style
}

func (sg *Segmenter) classify(code rune) (directive, bool) {
	if lowerASCII(code) == ResetCode {
		return directive{kind: reset}, true
	}
	if c, ok := Lookup(code); ok {
		if c.Hex == "" {
			return directive{kind: reset}, true
		}
		return directive{kind: setColor, color: c.Hex}, true
	}
	if sg.styles {
		if st, ok := styleOf(code); ok {
			return directive{kind: addStyle, style: st}, true
		}
	}
	return directive{}, false
}

// scan walks s once. Every maximal literal span between directives is handed
// to text (never empty), every recognised directive to apply. Literal spans
// are substrings of s, so unrecognised pairs and invalid UTF-8 pass through
// untouched.
func (sg *Segmenter) scan(s string, text func(string), apply func(directive)) {
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != sg.sentinel || i+size >= len(s) {
			i += size
			continue
		}
		code, codeSize := utf8.DecodeRuneInString(s[i+size:])
		d, ok := sg.classify(code)
		if !ok {
			i += size + codeSize
			continue
		}
		if start < i {
			text(s[start:i])
		}
		apply(d)
		i += size + codeSize
		start = i
	}
	if start < len(s) {
		text(s[start:])
	}
}

// Segment splits s into runs in input order. The concatenated run texts
// equal sg.Strip(s); the empty string yields no runs.
func (sg *Segmenter) Segment(s string) []TextRun {
	var runs []TextRun
	color, style := sg.defaultColor, Style(0)
	sg.scan(s,
		func(text string) {
			runs = append(runs, TextRun{Text: text, Color: color, Style: style})
		},
		func(d directive) {
			switch d.kind {
			case setColor:
				color = d.color
				style = 0
			case reset:
				color = sg.defaultColor
				style = 0
			case addStyle:
				style |= d.style
			}
		})
	return runs
}

// Strip returns s without its directives.
func (sg *Segmenter) Strip(s string) string {
	if !strings.ContainsRune(s, sg.sentinel) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	sg.scan(s, func(text string) { b.WriteString(text) }, func(directive) {})
	return b.String()
}

// Plain concatenates the run texts.
func Plain(runs []TextRun) string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString(run.Text)
	}
	return b.String()
}
