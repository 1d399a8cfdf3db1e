package mctext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"two colours", "§aHello §cWorld", "§aHello §cWorld"},
		{"leading reset dropped", "§rReset", "Reset"},
		{"no-op directives dropped", "A§a§bB", "A§bB"},
		{"return to default", "A§aB§fC", "A§aB§rC"},
		{"uppercase normalised", "§AHi", "§aHi"},
		{"literal pair survives", "§rReset§ztest", "Reset§ztest"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, std.Encode(Segment(tt.input)))
		})
	}
}

func TestEncodeNearest(t *testing.T) {
	got := std.Encode([]TextRun{
		{Text: "almost green", Color: "#56FF56"},
		{Text: "almost black", Color: "#000001"},
		{Text: "bad", Color: "not-a-colour"},
	})
	assert.Equal(t, "§aalmost green§0almost black§rbad", got)
}

func TestEncodeStyles(t *testing.T) {
	sg := NewSegmenter(WithStyleCodes())
	runs := []TextRun{
		{Text: "X", Color: green, Style: Bold | Italic},
		{Text: "Y", Color: green, Style: Bold},
		{Text: "Z", Color: green, Style: Bold | Underline},
	}
	encoded := sg.Encode(runs)
	assert.Equal(t, "§a§l§oX§a§lY§nZ", encoded)
	assert.Equal(t, runs, sg.Segment(encoded))

	// Without style codes the decorations are dropped.
	assert.Equal(t, "§aXYZ", std.Encode(runs))
}

func TestEncodeCustomDefaultAndSentinel(t *testing.T) {
	sg := NewSegmenter(WithDefaultColor("#FFFFFF"), WithSentinel('&'))
	runs := sg.Segment("A&cB&rC")
	require.Len(t, runs, 3)
	assert.Equal(t, "A&cB&rC", sg.Encode(runs))
}

func TestEncodeWritesTextVerbatim(t *testing.T) {
	// Literal pairs left in by Segment are not directives and survive.
	runs := Segment("§c§zred§")
	encoded := std.Encode(runs)
	assert.Equal(t, "§c§zred§", encoded)
	assert.Equal(t, runs, Segment(encoded))

	// A directive smuggled into a hand-built run is not escaped.
	hand := []TextRun{{Text: "§aX"}}
	assert.Equal(t, "§aX", std.Encode(hand))
	assert.Equal(t, []TextRun{{Text: "X", Color: green}}, Segment(std.Encode(hand)))
}
