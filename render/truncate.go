package render

import (
	"github.com/mattn/go-runewidth"

	"mctext-go/mctext"
)

// Width returns the terminal display width of the run texts.
func Width(runs []mctext.TextRun) int {
	w := 0
	for _, run := range runs {
		w += runewidth.StringWidth(run.Text)
	}
	return w
}

// Truncate cuts runs so they fit in width display cells, appending tail in
// the colour of the run that was cut. Runs that already fit are returned
// unchanged.
func Truncate(runs []mctext.TextRun, width int, tail string) []mctext.TextRun {
	if width <= 0 {
		return nil
	}
	if Width(runs) <= width {
		return runs
	}
	tailWidth := runewidth.StringWidth(tail)
	if tailWidth > width {
		tail = runewidth.Truncate(tail, width, "")
		tailWidth = runewidth.StringWidth(tail)
	}
	limit := width - tailWidth

	var out []mctext.TextRun
	used := 0
	for _, run := range runs {
		w := runewidth.StringWidth(run.Text)
		if used+w <= limit {
			out = append(out, run)
			used += w
			continue
		}
		if cut := runewidth.Truncate(run.Text, limit-used, ""); cut != "" {
			out = append(out, mctext.TextRun{Text: cut, Color: run.Color, Style: run.Style})
		}
		if tail != "" {
			out = append(out, mctext.TextRun{Text: tail, Color: run.Color, Style: run.Style})
		}
		break
	}
	return out
}
