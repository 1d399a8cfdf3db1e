package render

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mctext-go/mctext"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("HTML")
	require.NoError(t, err)
	assert.Equal(t, FormatHTML, f)

	_, err = ParseFormat("markdown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ansi, html, json, component, plain, legacy")
}

func TestWriter(t *testing.T) {
	sg := mctext.NewSegmenter()
	tests := []struct {
		format Format
		input  string
		want   string
	}{
		{FormatPlain, "§aHello §cWorld", "Hello World\n"},
		{FormatLegacy, "§AHello§c", "§aHello\n"},
		{FormatHTML, "§aHi", `<span style="color:#55FF55">Hi</span>` + "\n"},
		{FormatJSON, "§aHi", `[{"text":"Hi","color":"#55FF55"}]` + "\n"},
		{FormatJSON, "", "[]\n"},
		{FormatComponent, "§aHi", `{"text":"","extra":[{"text":"Hi","color":"green"}]}` + "\n"},
		{FormatANSI, "§aHi", "Hi\n"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			wr := NewWriter(&buf, tt.format, sg, termenv.Ascii)
			require.NoError(t, wr.Write(tt.input))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriterWidth(t *testing.T) {
	var buf bytes.Buffer
	wr := NewWriter(&buf, FormatLegacy, mctext.NewSegmenter(), termenv.Ascii)
	wr.SetWidth(8, "...")
	require.NoError(t, wr.Write("§aHello §cWorld"))
	assert.Equal(t, "§aHello...\n", buf.String())
}

func TestWriterUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	wr := NewWriter(&buf, Format("yaml"), mctext.NewSegmenter(), termenv.Ascii)
	assert.Error(t, wr.Write("x"))
	assert.Empty(t, buf.String())
}
