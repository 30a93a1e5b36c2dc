package rules

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Load reads a relationship-table CSV (category, chain_pattern, title,
// aliases) and returns a populated Store. The header row is skipped.
// Rows with fewer than 3 columns, or whose chain_pattern column is
// empty after trimming, are skipped rather than rejected — malformed
// input degrades the rule set, it does not abort loading.
func Load(r io.Reader) (*Store, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("rules: empty CSV, expected a header row")
		}
		return nil, fmt.Errorf("rules: reading header: %w", err)
	}

	store := newStore()
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("rules: reading row: %w", err)
		}

		rule, category, ok := parseRow(row)
		if !ok {
			continue
		}

		switch category {
		case CategoryPrimary:
			store.Primary[rule.ChainPattern] = rule
		case CategoryCombined:
			store.Combined = append(store.Combined, rule)
		case CategoryBranch:
			store.Branch = append(store.Branch, rule)
		case CategoryInput:
			store.Input[rule.ChainPattern] = rule
		case CategoryPrefix:
			store.Prefix = append(store.Prefix, rule)
		case CategoryPair:
			store.Pair = append(store.Pair, rule)
		default:
			if strings.HasSuffix(category, "方言") {
				store.Dialect[category] = append(store.Dialect[category], rule)
			}
		}
	}
	return store, nil
}

func parseRow(row []string) (Rule, string, bool) {
	if len(row) < 3 {
		return Rule{}, "", false
	}
	category := strings.TrimSpace(row[0])
	chain := strings.Trim(strings.TrimSpace(row[1]), `"`)
	title := strings.TrimSpace(row[2])
	if chain == "" {
		return Rule{}, "", false
	}

	aliasSource := title
	if len(row) > 3 && strings.TrimSpace(row[3]) != "" {
		aliasSource = strings.TrimSpace(row[3])
	}
	var aliases []string
	for _, a := range strings.Split(aliasSource, "、") {
		a = strings.TrimSpace(a)
		if a != "" {
			aliases = append(aliases, a)
		}
	}

	return Rule{
		Category:     category,
		ChainPattern: chain,
		Title:        title,
		Aliases:      aliases,
	}, category, true
}
