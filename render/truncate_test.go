package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mctext-go/mctext"
)

func TestTruncate(t *testing.T) {
	runs := mctext.Segment("§aHello §cWorld")

	tests := []struct {
		name  string
		width int
		tail  string
		want  []mctext.TextRun
	}{
		{"fits", 11, "...", runs},
		{"zero width", 0, "...", nil},
		{"cut first run", 8, "...", []mctext.TextRun{
			{Text: "Hello", Color: "#55FF55"},
			{Text: "...", Color: "#55FF55"},
		}},
		{"cut second run", 9, "", []mctext.TextRun{
			{Text: "Hello ", Color: "#55FF55"},
			{Text: "Wor", Color: "#FF5555"},
		}},
		{"cut on run boundary", 9, "...", []mctext.TextRun{
			{Text: "Hello ", Color: "#55FF55"},
			{Text: "...", Color: "#FF5555"},
		}},
		{"tail wider than width", 2, "...", []mctext.TextRun{
			{Text: "..", Color: "#55FF55"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(runs, tt.width, tt.tail))
		})
	}
}

func TestTruncateWide(t *testing.T) {
	runs := []mctext.TextRun{{Text: "日本語", Color: "#FFAA00"}}
	assert.Equal(t, 6, Width(runs))
	assert.Equal(t, []mctext.TextRun{{Text: "日本", Color: "#FFAA00"}}, Truncate(runs, 5, ""))
}
