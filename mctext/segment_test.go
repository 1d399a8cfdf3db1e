package mctext

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	green = "#55FF55"
	red   = "#FF5555"
	aqua  = "#55FFFF"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TextRun
	}{
		{"empty", "", nil},
		{"plain", "plain text", []TextRun{{Text: "plain text"}}},
		{"two colours", "§aHello §cWorld", []TextRun{
			{Text: "Hello ", Color: green},
			{Text: "World", Color: red},
		}},
		{"reset then unknown code", "§rReset§ztest", []TextRun{{Text: "Reset§ztest"}}},
		{"trailing sentinel", "abc§", []TextRun{{Text: "abc§"}}},
		{"lone sentinel", "§", []TextRun{{Text: "§"}}},
		{"only directives", "§a§b", nil},
		{"text before directive", "x§ay", []TextRun{{Text: "x"}, {Text: "y", Color: green}}},
		{"repeated colour keeps split", "§aA§aB", []TextRun{
			{Text: "A", Color: green},
			{Text: "B", Color: green},
		}},
		{"f is default", "§aX§fY", []TextRun{{Text: "X", Color: green}, {Text: "Y"}}},
		{"r is default", "§aX§rY", []TextRun{{Text: "X", Color: green}, {Text: "Y"}}},
		{"double sentinel is literal", "§§a", []TextRun{{Text: "§§a"}}},
		{"literal pair then directive", "x§§§ay", []TextRun{{Text: "x§§"}, {Text: "y", Color: green}}},
		{"style code is literal by default", "§lBold", []TextRun{{Text: "§lBold"}}},
		{"multibyte text", "§a日本§c語", []TextRun{
			{Text: "日本", Color: green},
			{Text: "語", Color: red},
		}},
		{"multibyte code is literal", "§éa", []TextRun{{Text: "§éa"}}},
		{"newline kept", "§8line1\nline2", []TextRun{{Text: "line1\nline2", Color: "#555555"}}},
		{"every palette colour", "§00§11§22§33§44§55§66§77§88§99", []TextRun{
			{Text: "0", Color: "#000000"},
			{Text: "1", Color: "#0000AA"},
			{Text: "2", Color: "#00AA00"},
			{Text: "3", Color: "#00AAAA"},
			{Text: "4", Color: "#AA0000"},
			{Text: "5", Color: "#AA00AA"},
			{Text: "6", Color: "#FFAA00"},
			{Text: "7", Color: "#AAAAAA"},
			{Text: "8", Color: "#555555"},
			{Text: "9", Color: "#5555FF"},
		}},
		{"letters", "§aa§bb§cc§dd§ee§ff", []TextRun{
			{Text: "a", Color: "#55FF55"},
			{Text: "b", Color: "#55FFFF"},
			{Text: "c", Color: "#FF5555"},
			{Text: "d", Color: "#FF55FF"},
			{Text: "e", Color: "#FFFF55"},
			{Text: "f"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Segment(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
			assert.Equal(t, Strip(tt.input), Plain(got))
		})
	}
}

func TestSegmentCaseInsensitive(t *testing.T) {
	assert.Equal(t, Segment("§aHi"), Segment("§AHi"))
	assert.Equal(t, Segment("§cX§RY"), Segment("§cX§rY"))
	assert.Equal(t, []TextRun{{Text: "Hi", Color: "#FF55FF"}}, Segment("§DHi"))
}

func TestSegmentInvalidUTF8(t *testing.T) {
	input := "\xffa§b\xfe"
	got := Segment(input)
	require.Len(t, got, 2)
	assert.Equal(t, TextRun{Text: "\xffa"}, got[0])
	assert.Equal(t, TextRun{Text: "\xfe", Color: aqua}, got[1])

	got = Segment("§\xff")
	assert.Equal(t, []TextRun{{Text: "§\xff"}}, got)
}

func TestStrip(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"no codes", "no codes"},
		{"§aHello §cWorld", "Hello World"},
		{"§rReset§ztest", "Reset§ztest"},
		{"abc§", "abc§"},
		{"§§a", "§§a"},
		{"The go-to 32x resource pack.\n§8November 2024 Pre-release", "The go-to 32x resource pack.\nNovember 2024 Pre-release"},
		{"§r§lAstra§4§lLex", "§lAstra§lLex"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Strip(tt.input), "Strip(%q)", tt.input)
		assert.Equal(t, Strip(tt.input), Strip(Strip(tt.input)), "idempotent for %q", tt.input)
	}
}

func TestStripNoSentinelReturnsInput(t *testing.T) {
	s := strings.Repeat("x", 64)
	assert.Equal(t, s, Strip(s))
}

func TestWithStyleCodes(t *testing.T) {
	sg := NewSegmenter(WithStyleCodes())

	got := sg.Segment("§r§lAstra§4§lLex§r§l_By_")
	want := []TextRun{
		{Text: "Astra", Style: Bold},
		{Text: "Lex", Color: "#AA0000", Style: Bold},
		{Text: "_By_", Style: Bold},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	got = sg.Segment("§a§l§oX§cY")
	assert.Equal(t, []TextRun{
		{Text: "X", Color: green, Style: Bold | Italic},
		{Text: "Y", Color: red},
	}, got)

	assert.Equal(t, "AstraLex_By_", sg.Strip("§r§lAstra§4§lLex§r§l_By_"))
	assert.Equal(t, []TextRun{{Text: "§pX"}}, sg.Segment("§pX"))
}

func TestWithDefaultColor(t *testing.T) {
	sg := NewSegmenter(WithDefaultColor("#FFFFFF"))
	assert.Equal(t, "#FFFFFF", sg.DefaultColor())
	assert.Equal(t, []TextRun{
		{Text: "A", Color: "#FFFFFF"},
		{Text: "B", Color: green},
		{Text: "C", Color: "#FFFFFF"},
		{Text: "D", Color: green},
		{Text: "E", Color: "#FFFFFF"},
	}, sg.Segment("A§aB§rC§aD§fE"))
}

func TestWithSentinel(t *testing.T) {
	sg := NewSegmenter(WithSentinel('&'))
	assert.Equal(t, []TextRun{{Text: "Hi & bye", Color: green}}, sg.Segment("&aHi & bye"))
	assert.Equal(t, []TextRun{{Text: "§cstays"}}, sg.Segment("§cstays"))
	assert.Equal(t, "Hi & bye", sg.Strip("&aHi & bye"))

	// RuneError would match every invalid byte, so it is ignored.
	sg = NewSegmenter(WithSentinel(utf8.RuneError))
	assert.Equal(t, []TextRun{{Text: "X", Color: green}}, sg.Segment("§aX"))
}

func TestSegmentConcurrent(t *testing.T) {
	sg := NewSegmenter(WithStyleCodes())
	want := sg.Segment("§aHello §l§cWorld")

	var wg sync.WaitGroup
	for n := 0; n < 16; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 100; n++ {
				assert.Equal(t, want, sg.Segment("§aHello §l§cWorld"))
			}
		}()
	}
	wg.Wait()
}

func FuzzSegment(f *testing.F) {
	for _, seed := range []string{"", "plain", "§aHello §cWorld", "§rReset§ztest", "abc§", "§§§a", "\xc2§a§r\xa7a"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		runs := Segment(s)
		for _, run := range runs {
			if run.Text == "" {
				t.Fatalf("empty run in %q", s)
			}
		}
		stripped := Strip(s)
		if got := Plain(runs); got != stripped {
			t.Fatalf("Plain(Segment(%q)) = %q, Strip = %q", s, got, stripped)
		}
		if again := Strip(stripped); again != stripped {
			t.Fatalf("Strip not idempotent for %q: %q then %q", s, stripped, again)
		}
		if !strings.ContainsRune(s, Sentinel) && s != "" {
			if len(runs) != 1 || runs[0].Text != s || runs[0].Color != "" {
				t.Fatalf("Segment(%q) = %v, want one default run", s, runs)
			}
		}
		if utf8.ValidString(s) {
			if got := Strip(std.Encode(runs)); got != stripped {
				t.Fatalf("Encode changed text of %q: %q", s, got)
			}
		}
	})
}
