package chain

import "strings"

var siblingReplacements = map[string][]string{
	"ob": {"ob", "xb", "s&o"},
	"lb": {"lb", "xb", "s&l"},
	"os": {"os", "xs", "d&o"},
	"ls": {"ls", "xs", "d&l"},
	"xb": {"xb", "s&o", "s&l", "ob", "lb"},
	"xs": {"xs", "d&o", "d&l", "os", "ls"},
}

// GenerateVariants produces the ordered list of alternate chains the
// matcher tries, canonical chain always first. Fires only when the
// chain contains a sibling atom or ends with a &o/&l suffix.
func GenerateVariants(canonical string) []string {
	parts := strings.Split(canonical, ",")

	var siblingIndices []int
	for i, p := range parts {
		if _, ok := siblingReplacements[p]; ok {
			siblingIndices = append(siblingIndices, i)
		}
	}
	hasSuffix := len(parts) > 0 && (strings.HasSuffix(parts[len(parts)-1], "&o") || strings.HasSuffix(parts[len(parts)-1], "&l"))

	if len(siblingIndices) == 0 && !hasSuffix {
		return []string{canonical}
	}

	base := expandSiblingPositions(parts, siblingIndices)

	seen := make(map[string]bool, len(base)*2)
	var all []string
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			all = append(all, s)
		}
	}
	for _, v := range base {
		add(v)
		if stripped, ok := stripSuffix(v); ok {
			add(stripped)
		}
	}

	// canonical chain is always first
	result := make([]string, 0, len(all)+1)
	result = append(result, canonical)
	for _, v := range all {
		if v != canonical {
			result = append(result, v)
		}
	}
	return result
}

func expandSiblingPositions(parts []string, indices []int) []string {
	if len(indices) == 0 {
		return []string{strings.Join(parts, ",")}
	}
	return generate(parts, indices, 0)
}

func generate(parts []string, indices []int, idx int) []string {
	if idx >= len(indices) {
		return []string{strings.Join(parts, ",")}
	}

	pos := indices[idx]
	original := parts[pos]
	replacements := siblingReplacements[original]

	seen := make(map[string]bool)
	var results []string
	for _, replacement := range replacements {
		next := append([]string(nil), parts...)
		next[pos] = replacement
		for _, r := range generate(next, indices, idx+1) {
			if !seen[r] {
				seen[r] = true
				results = append(results, r)
			}
		}
	}
	return results
}

func stripSuffix(chain string) (string, bool) {
	parts := strings.Split(chain, ",")
	last := parts[len(parts)-1]
	if !strings.HasSuffix(last, "&o") && !strings.HasSuffix(last, "&l") {
		return "", false
	}
	parts[len(parts)-1] = strings.SplitN(last, "&", 2)[0]
	return strings.Join(parts, ","), true
}
