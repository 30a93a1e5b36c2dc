// Package fallback synthesizes a descriptive title and a
// human-readable path description from a chain's atoms when no rule
// in the store matched at any tier (C9).
package fallback

import "strings"

// glossary maps each closed-alphabet chain atom to its Chinese noun.
// The alphabet is closed: adding an atom anywhere in the codec
// requires a matching entry here.
var glossary = map[string]string{
	"f": "父", "m": "母", "s": "子", "d": "女", "h": "夫", "w": "妻",
	"xb": "兄弟", "xs": "姐妹", "ob": "兄", "lb": "弟", "os": "姐", "ls": "妹",
	"s&o": "子(长)", "s&l": "子(幼)", "d&o": "女(长)", "d&l": "女(幼)",
}

// defaultTitle is used when a chain is non-empty but somehow yields no
// glossary-mapped atoms at all — the chain alphabet is closed so this
// branch is defensive rather than expected in normal operation.
const defaultTitle = "远房亲戚"

func atoms(chain string) []string {
	var out []string
	for _, a := range strings.Split(chain, ",") {
		if noun, ok := glossary[a]; ok {
			out = append(out, noun)
		}
	}
	return out
}

// Title synthesizes the possessive fallback title, e.g. "父的父的兄弟".
// Returns defaultTitle when chain maps to zero glossary atoms.
func Title(chain string) string {
	nouns := atoms(chain)
	if len(nouns) == 0 {
		return defaultTitle
	}
	return strings.Join(nouns, "的")
}

// Describe builds the arrow-joined path description carried alongside
// the result regardless of match tier, independent of Title's
// possessive join.
func Describe(chain string) string {
	nouns := atoms(chain)
	if len(nouns) == 0 {
		return ""
	}
	return strings.Join(nouns, " → ")
}
