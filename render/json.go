package render

import (
	"encoding/json"

	"mctext-go/mctext"
)

// Segment is the JSON shape of one run.
type Segment struct {
	Text   string   `json:"text"`
	Color  string   `json:"color"`
	Styles []string `json:"styles,omitempty"`
}

// JSON encodes runs as an array of {text, color} records. No runs encode as
// an empty array.
func JSON(runs []mctext.TextRun) ([]byte, error) {
	out := make([]Segment, 0, len(runs))
	for _, run := range runs {
		out = append(out, Segment{Text: run.Text, Color: run.Color, Styles: run.Style.Names()})
	}
	return json.Marshal(out)
}

// Component is a Minecraft JSON text component.
type Component struct {
	Text          string      `json:"text"`
	Color         string      `json:"color,omitempty"`
	Bold          bool        `json:"bold,omitempty"`
	Italic        bool        `json:"italic,omitempty"`
	Underlined    bool        `json:"underlined,omitempty"`
	Strikethrough bool        `json:"strikethrough,omitempty"`
	Obfuscated    bool        `json:"obfuscated,omitempty"`
	Extra         []Component `json:"extra,omitempty"`
}

// ToComponent wraps runs as children of an empty root component. Palette
// colours use their vanilla names; any other colour is passed as hex.
func ToComponent(runs []mctext.TextRun) Component {
	root := Component{}
	for _, run := range runs {
		c := Component{
			Text:          run.Text,
			Color:         run.Color,
			Bold:          run.Style.Has(mctext.Bold),
			Italic:        run.Style.Has(mctext.Italic),
			Underlined:    run.Style.Has(mctext.Underline),
			Strikethrough: run.Style.Has(mctext.Strikethrough),
			Obfuscated:    run.Style.Has(mctext.Obfuscated),
		}
		if name, ok := mctext.NameOf(run.Color); ok {
			c.Color = name
		}
		root.Extra = append(root.Extra, c)
	}
	return root
}
