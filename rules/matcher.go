package rules

// Match is the outcome of resolving one chain (and its variants)
// against a Store. Tier is TierNone when every variant exhausted all
// three tiers without a hit; callers fall back to C9 in that case.
type Match struct {
	Rule  Rule
	Tier  MatchTier
	Chain string // the variant string that actually matched
}

// Resolve tries each of variants in order (canonical first) against
// the store's primary, combined and branch tiers, in that priority,
// per variant, before moving on to the next variant.
func (s *Store) Resolve(variants []string) Match {
	for _, variant := range variants {
		if rule, ok := s.Primary[variant]; ok {
			return Match{Rule: rule, Tier: TierPrimary, Chain: variant}
		}
		if rule, ok := s.matchCombined(variant); ok {
			return Match{Rule: rule, Tier: TierCombined, Chain: variant}
		}
		if rule, ok := s.matchBranch(variant); ok {
			return Match{Rule: rule, Tier: TierBranch, Chain: variant}
		}
	}
	return Match{Tier: TierNone}
}

func (s *Store) matchCombined(chain string) (Rule, bool) {
	for _, rule := range s.Combined {
		re, err := s.compiledPattern(rule.ChainPattern)
		if err != nil {
			continue
		}
		if re.MatchString(chain) {
			return rule, true
		}
	}
	return Rule{}, false
}

func (s *Store) matchBranch(chain string) (Rule, bool) {
	for _, rule := range s.Branch {
		for _, concrete := range expandTemplate(rule.ChainPattern) {
			re, err := s.compiledPattern(concrete)
			if err != nil {
				continue
			}
			if re.MatchString(chain) {
				return rule, true
			}
		}
	}
	return Rule{}, false
}
