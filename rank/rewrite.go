package rank

import "strconv"

// cnOrdinals covers ranks 1-10; ranks beyond that fall back to the
// plain decimal numeral, matching the reference rewrite table.
var cnOrdinals = map[int]string{
	1: "大", 2: "二", 3: "三", 4: "四", 5: "五",
	6: "六", 7: "七", 8: "八", 9: "九", 10: "十",
}

func ordinal(position int) string {
	if s, ok := cnOrdinals[position]; ok {
		return s
	}
	return strconv.Itoa(position)
}

// rewriteKind distinguishes where the ordinal is spliced: simple
// titles get a bare prefix, compound titles (堂/表 cousins) keep their
// leading qualifier before the ordinal.
type rewriteKind int

const (
	prefixOrdinal  rewriteKind = iota // 哥哥 -> 二哥
	qualifiedAfter                    // 堂哥 -> 堂二哥
	wholeReplace                      // 爷爷 -> 二爷爷 (ordinal before the whole title)
)

type rewriteRule struct {
	kind   rewriteKind
	suffix string // the trailing form after the ordinal, or the qualifier for qualifiedAfter
}

// titleRewrites is the closed table of titles the rank decorator knows
// how to prefix with a birth-rank ordinal. Titles absent from this
// table are emitted unchanged regardless of a defined Rank.
var titleRewrites = map[string]rewriteRule{
	"哥哥": {prefixOrdinal, "哥"},
	"弟弟": {prefixOrdinal, "弟"},
	"姐姐": {prefixOrdinal, "姐"},
	"妹妹": {prefixOrdinal, "妹"},
	"伯父": {prefixOrdinal, "伯"},
	"叔叔": {prefixOrdinal, "叔"},
	"姑姑": {prefixOrdinal, "姑"},
	"舅舅": {prefixOrdinal, "舅"},
	"姨妈": {prefixOrdinal, "姨"},
	"伯母": {prefixOrdinal, "伯母"},
	"婶婶": {prefixOrdinal, "婶"},
	"舅妈": {prefixOrdinal, "舅妈"},
	"姨夫": {prefixOrdinal, "姨夫"},

	"堂哥": {qualifiedAfter, "堂"},
	"堂弟": {qualifiedAfter, "堂"},
	"堂姐": {qualifiedAfter, "堂"},
	"堂妹": {qualifiedAfter, "堂"},
	"表哥": {qualifiedAfter, "表"},
	"表弟": {qualifiedAfter, "表"},
	"表姐": {qualifiedAfter, "表"},
	"表妹": {qualifiedAfter, "表"},

	"爷爷": {wholeReplace, "爷爷"},
	"奶奶": {wholeReplace, "奶奶"},
	"外公": {wholeReplace, "外公"},
	"外婆": {wholeReplace, "外婆"},
}

// ApplyTitle rewrites title with rank's ordinal if the cohort was
// large enough (Rank.Defined()) and title appears in the closed
// rewrite table; otherwise title is returned unchanged.
func ApplyTitle(title string, r Rank) string {
	if !r.Defined() {
		return title
	}
	rule, ok := titleRewrites[title]
	if !ok {
		return title
	}

	ord := ordinal(r.Position)
	switch rule.kind {
	case qualifiedAfter:
		return rule.suffix + ord + title[len(rule.suffix):]
	default: // prefixOrdinal, wholeReplace
		return ord + rule.suffix
	}
}
