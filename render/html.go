package render

import (
	"html"
	"strings"

	"mctext-go/mctext"
)

// HTML renders one inline span per run. The colour attribute is omitted for
// default-coloured runs so they inherit from the surrounding element.
func HTML(runs []mctext.TextRun) string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString("<span")
		if run.Style.Has(mctext.Obfuscated) {
			b.WriteString(` class="mc-obfuscated"`)
		}
		if css := cssOf(run); css != "" {
			b.WriteString(` style="`)
			b.WriteString(html.EscapeString(css))
			b.WriteByte('"')
		}
		b.WriteByte('>')
		b.WriteString(html.EscapeString(run.Text))
		b.WriteString("</span>")
	}
	return b.String()
}

func cssOf(run mctext.TextRun) string {
	var decls []string
	if run.Color != "" {
		decls = append(decls, "color:"+run.Color)
	}
	if run.Style.Has(mctext.Bold) {
		decls = append(decls, "font-weight:bold")
	}
	if run.Style.Has(mctext.Italic) {
		decls = append(decls, "font-style:italic")
	}
	var deco []string
	if run.Style.Has(mctext.Underline) {
		deco = append(deco, "underline")
	}
	if run.Style.Has(mctext.Strikethrough) {
		deco = append(deco, "line-through")
	}
	if len(deco) > 0 {
		decls = append(decls, "text-decoration:"+strings.Join(deco, " "))
	}
	return strings.Join(decls, ";")
}
