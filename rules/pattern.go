package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// compileDisjunction turns a chain pattern containing [a|b|...]
// alternations into a whole-string-matching regular expression.
// Non-bracket runs are escaped literally; each bracket group becomes a
// non-capturing alternation. Unbalanced brackets are reported as an
// error so the caller can silently demote the rule to "never matches".
func compileDisjunction(pattern string) (*regexp.Regexp, error) {
	var sb strings.Builder
	sb.WriteString("^")

	i := 0
	for i < len(pattern) {
		if pattern[i] == '[' {
			end := strings.IndexByte(pattern[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("rules: unbalanced bracket in pattern %q", pattern)
			}
			end += i
			alts := strings.Split(pattern[i+1:end], "|")
			for j, alt := range alts {
				alts[j] = regexp.QuoteMeta(alt)
			}
			sb.WriteString("(?:")
			sb.WriteString(strings.Join(alts, "|"))
			sb.WriteString(")")
			i = end + 1
			continue
		}
		if pattern[i] == ']' {
			return nil, fmt.Errorf("rules: unbalanced bracket in pattern %q", pattern)
		}

		// literal run up to the next bracket
		next := strings.IndexAny(pattern[i:], "[]")
		var literal string
		if next < 0 {
			literal = pattern[i:]
			i = len(pattern)
		} else {
			literal = pattern[i : i+next]
			i += next
		}
		sb.WriteString(regexp.QuoteMeta(literal))
	}

	sb.WriteString("$")
	return regexp.Compile(sb.String())
}

// templateCatalog is the closed mapping from template variable name to
// its list of expansion chains (spec §3). Expansion values are spliced
// into the pattern string verbatim, so a multi-atom expansion like
// "f,f" supplies its own internal comma.
var templateCatalog = map[string][]string{
	"G0":  {""},
	"G1":  {"f", "m"},
	"G1M": {"f"},
	"G1W": {"m"},
	"G2":  {"f,f", "f,m", "m,f", "m,m"},
	"M0":  {"h", "w"},
	"M1M": {"h,f", "w,f"},
	"M1W": {"h,m", "w,m"},
	// M2M/M2W are not enumerated by name in the spec; resolved per
	// DESIGN.md as the spouse prefix (M0) combined with the subset of
	// G2's two-generation blood chains that end in the matching gender
	// (M2M ends male/"f", M2W ends female/"m"), mirroring how M1M/M1W
	// already pair M0 with a gender-fixed one-generation blood hop.
	"M2M": {"h,f,f", "h,m,f", "w,f,f", "w,m,f"},
	"M2W": {"h,f,m", "h,m,m", "w,f,m", "w,m,m"},
	"M-1": {"s", "d"},
}

var templateToken = regexp.MustCompile(`\{([A-Za-z0-9_-]+)\}`)

// expandTemplate recursively substitutes the leftmost template
// variable in pattern with each of its catalog expansions, recursing
// until no variable remains. An empty expansion splices out exactly
// one adjacent comma, preferring the right side and falling back to
// the left when the variable is the final token.
func expandTemplate(pattern string) []string {
	loc := templateToken.FindStringSubmatchIndex(pattern)
	if loc == nil {
		return []string{pattern}
	}
	start, end := loc[0], loc[1]
	name := pattern[loc[2]:loc[3]]

	expansions, ok := templateCatalog[name]
	if !ok {
		return nil
	}

	var results []string
	for _, exp := range expansions {
		spliced := spliceExpansion(pattern, start, end, exp)
		results = append(results, expandTemplate(spliced)...)
	}
	return results
}

func spliceExpansion(pattern string, start, end int, expansion string) string {
	left, right := pattern[:start], pattern[end:]
	if expansion != "" {
		return left + expansion + right
	}
	if strings.HasPrefix(right, ",") {
		return left + right[1:]
	}
	if strings.HasSuffix(left, ",") {
		return left[:len(left)-1] + right
	}
	return left + right
}
