package mctext

import "strings"

// Style is a set of text decorations toggled by the k-o codes.
type Style uint8

const (
	Obfuscated Style = 1 << iota
	Bold
	Strikethrough
	Underline
	Italic
)

// style codes in code order; index i corresponds to bit 1<<i.
var styleCodes = [...]struct {
	code rune
	name string
}{
	{'k', "obfuscated"},
	{'l', "bold"},
	{'m', "strikethrough"},
	{'n', "underline"},
	{'o', "italic"},
}

func styleOf(code rune) (Style, bool) {
	code = lowerASCII(code)
	for i, sc := range styleCodes {
		if sc.code == code {
			return Style(1 << i), true
		}
	}
	return 0, false
}

// Has reports whether every bit of f is set.
func (s Style) Has(f Style) bool {
	return s&f == f
}

// Names lists the decoration names in code order.
func (s Style) Names() []string {
	var names []string
	for i, sc := range styleCodes {
		if s&(1<<i) != 0 {
			names = append(names, sc.name)
		}
	}
	return names
}

func (s Style) String() string {
	if s == 0 {
		return "none"
	}
	return strings.Join(s.Names(), "|")
}

// codes returns the code characters for s in k..o order.
func (s Style) codes() []rune {
	var out []rune
	for i, sc := range styleCodes {
		if s&(1<<i) != 0 {
			out = append(out, sc.code)
		}
	}
	return out
}
