package mctext

import "strings"

// Encode turns runs back into formatted text. Directives are written only
// when the colour or style changes; a return to the default colour becomes
// the reset code and colours outside the palette use their nearest code.
// Styles are dropped unless the Segmenter was built WithStyleCodes.
//
// Run texts are written verbatim, so Encode expects runs produced by Segment
// (whose texts never hold a recognised directive). A hand-built run such as
// {Text: "§aX"} turns into a directive when the result is segmented again.
func (sg *Segmenter) Encode(runs []TextRun) string {
	var b strings.Builder
	color, style := sg.defaultColor, Style(0)
	for _, run := range runs {
		if run.Text == "" {
			continue
		}
		want := run.Style
		if !sg.styles {
			want = 0
		}
		// Styles can only be cleared by a colour or reset directive.
		if run.Color != color || style&^want != 0 {
			b.WriteRune(sg.sentinel)
			b.WriteRune(sg.colorCode(run.Color))
			color, style = run.Color, 0
		}
		for _, code := range (want &^ style).codes() {
			b.WriteRune(sg.sentinel)
			b.WriteRune(code)
		}
		style = want
		b.WriteString(run.Text)
	}
	return b.String()
}

func (sg *Segmenter) colorCode(color string) rune {
	if color == sg.defaultColor || color == "" {
		return ResetCode
	}
	if c, ok := Nearest(color); ok {
		return c.Code
	}
	return ResetCode
}
