// Package splitter breaks long Japanese (and mixed Japanese/Latin) prose into
// paragraph-sized chunks with punctuation and bracket aware rules.
//
// A paragraph ends, in order of preference, at the furthest usable "。" within
// the soft limit once enough periods exist; otherwise at the first "。",
// line break, question or exclamation mark, or "、" inside the search window;
// otherwise at the hard limit. Bracket spans are never split and never start
// a paragraph: they are folded into the paragraph before them.
package splitter

import (
	"strings"

	"github.com/riverfjs/quickpopup-go/internal/util"
)

// Separator joins paragraphs in the output of Split.
const Separator = "\n\n"

// Paragraph is one chunk of split text and the rule that ended it.
type Paragraph struct {
	Text string
	Rule Rule
}

type piece struct {
	text []rune
	rule Rule
}

// cut is the result of choosing one split point.
type cut struct {
	paragraph []rune
	remaining []rune
	rule      Rule
}

// Split inserts paragraph breaks into text. Empty or white space only text
// is returned unchanged.
func Split(text string, cfg Config) string {
	if util.IsBlank(text) {
		return text
	}
	paragraphs := Paragraphs(text, cfg)
	texts := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		texts[i] = p.Text
	}
	return strings.Join(texts, Separator)
}

// Paragraphs splits text into trimmed, non-empty paragraphs in input order.
// It returns nil for empty or white space only text.
func Paragraphs(text string, cfg Config) []Paragraph {
	if util.IsBlank(text) {
		return nil
	}

	var pieces []piece
	base := absorbLeadingBracket(util.TrimLeft([]rune(text)), &pieces)

	// remaining is always a suffix of base, so one depth table serves every pass.
	depth := newDepthTable(base)
	remaining := base

	for len(remaining) > 0 {
		c := findSplitPoint(remaining, depth.from(len(base)-len(remaining)), cfg)
		paragraph := c.paragraph
		remaining = util.TrimLeft(c.remaining)

		// A bracket span right after the split point belongs to this paragraph.
		for len(remaining) > 0 && isOpenBracket(remaining[0]) {
			absorbed, rest, ok := absorbBracketPair(remaining)
			if !ok {
				break
			}
			paragraph = util.Concat(paragraph, absorbed)
			remaining = util.TrimLeft(rest)
		}

		if trimmed := util.Trim(paragraph); len(trimmed) > 0 {
			pieces = append(pieces, piece{text: trimmed, rule: c.rule})
		}
	}

	pieces = mergeBracketLeading(pieces)

	paragraphs := make([]Paragraph, len(pieces))
	for i, p := range pieces {
		paragraphs[i] = Paragraph{Text: string(p.text), Rule: p.rule}
	}
	return paragraphs
}

// absorbLeadingBracket handles text that opens with bracket spans. The run of
// consecutive matched spans, each with a following "。", is attached to the
// last emitted paragraph if there is one; otherwise it is moved behind the
// first "。" of the rest (or to its end) so that the first paragraph does not
// open with a bracket.
func absorbLeadingBracket(text []rune, pieces *[]piece) []rune {
	payload, rest := leadingBracketRun(text)
	if len(payload) == 0 {
		return text
	}

	if n := len(*pieces); n > 0 {
		(*pieces)[n-1].text = util.Concat((*pieces)[n-1].text, payload)
		return rest
	}

	rest = util.TrimLeft(rest)
	if len(rest) == 0 {
		*pieces = append(*pieces, piece{text: payload, rule: RuleBracket})
		return nil
	}
	if i := indexRune(rest, 0, len(rest), period); i >= 0 {
		return util.Concat(rest[:i+1], payload, []rune{' '}, rest[i+1:])
	}
	return util.Concat(rest, []rune{' '}, payload)
}

// leadingBracketRun cuts every matched bracket span at the start of text,
// skipping white space between spans. The spans are joined without it.
func leadingBracketRun(text []rune) (payload, rest []rune) {
	rest = text
	for len(rest) > 0 && isOpenBracket(rest[0]) {
		absorbed, after, ok := absorbBracketPair(rest)
		if !ok {
			break
		}
		payload = util.Concat(payload, absorbed)
		rest = util.TrimLeft(after)
	}
	if len(payload) == 0 {
		return nil, text
	}
	return payload, rest
}

// mergeBracketLeading folds every paragraph that still opens with a bracket
// (an unmatched one) into the previous paragraph, joined by one space.
// The first paragraph is kept as is.
func mergeBracketLeading(pieces []piece) []piece {
	if len(pieces) <= 1 {
		return pieces
	}
	merged := make([]piece, 0, len(pieces))
	for _, p := range pieces {
		if len(merged) > 0 && isOpenBracket(p.text[0]) {
			last := &merged[len(merged)-1]
			last.text = util.Concat(last.text, []rune{' '}, p.text)
			continue
		}
		merged = append(merged, p)
	}
	return merged
}

// findSplitPoint chooses where the paragraph at the start of text ends.
// depth must describe text, starting at its first rune.
func findSplitPoint(text []rune, depth depthTable, cfg Config) cut {
	if len(text) <= cfg.SoftLimit {
		return cut{paragraph: text, rule: RuleWhole}
	}

	periods := usablePeriods(text, depth, cfg)
	if len(periods) >= cfg.MinPeriods {
		return splitByPeriodCount(text, periods, depth, cfg)
	}
	return splitByCharLimit(text, depth, cfg)
}

// usablePeriods returns the positions of "。" outside brackets and not right
// after an opening bracket. Past the soft limit only the first such period can
// change the outcome, and only when exactly MinPeriods-1 lie within the limit,
// so the scan stops there.
func usablePeriods(text []rune, depth depthTable, cfg Config) []int {
	var periods []int
	within := 0
	for i, r := range text {
		if i > cfg.SoftLimit && within != cfg.MinPeriods-1 {
			break
		}
		if r != period || depth.inside(i) || isAfterOpenBracket(text, i) {
			continue
		}
		periods = append(periods, i)
		if i > cfg.SoftLimit {
			break
		}
		within++
	}
	return periods
}

// splitByPeriodCount ends the paragraph at the MinPeriods-th usable period,
// extended through further periods still within the soft limit. When that
// period lies beyond the soft limit, the one before it is tried.
func splitByPeriodCount(text []rune, periods []int, depth depthTable, cfg Config) cut {
	nth := cfg.MinPeriods - 1
	if periods[nth] <= cfg.SoftLimit {
		at := periods[nth]
		for _, p := range periods[nth:] {
			if p > cfg.SoftLimit {
				break
			}
			at = p
		}
		return cutAfter(text, at, RulePeriodCount)
	}

	if prev := periods[nth-1]; prev <= cfg.SoftLimit {
		return cutAfter(text, prev, RulePeriodFallback)
	}

	return splitByCharLimit(text, depth, cfg)
}

// splitByCharLimit searches [SearchStart, min(len, SearchEnd)) for, in order:
// a usable "。", a line break, a question or exclamation mark, a "、".
// Without any of them the text is cut at the hard limit.
func splitByCharLimit(text []rune, depth depthTable, cfg Config) cut {
	start := cfg.SearchStart
	end := min(len(text), cfg.SearchEnd)

	if start < end {
		for i := start; i < end; i++ {
			if text[i] == period && !depth.inside(i) && !isBeforeBracket(text, i) {
				return cutAfter(text, i, RulePeriod)
			}
		}
		if i := indexRune(text, start, end, '\n'); i >= 0 {
			return cut{paragraph: text[:i], remaining: util.TrimLeft(text[i+1:]), rule: RuleNewline}
		}
		if i := indexFunc(text, start, end, isQuestionOrExclamation); i >= 0 {
			return cutAfter(text, i, RuleQuestion)
		}
		if i := indexRune(text, start, end, comma); i >= 0 {
			return cutAfter(text, i, RuleComma)
		}
	}

	hard := min(len(text), cfg.HardLimit)
	return cut{paragraph: text[:hard], remaining: util.TrimLeft(text[hard:]), rule: RuleHardCut}
}

// cutAfter ends the paragraph right after the delimiter at pos.
func cutAfter(text []rune, pos int, rule Rule) cut {
	return cut{
		paragraph: text[:pos+1],
		remaining: util.TrimLeft(text[pos+1:]),
		rule:      rule,
	}
}

func isQuestionOrExclamation(r rune) bool {
	switch r {
	case '？', '！', '?', '!':
		return true
	}
	return false
}

func indexRune(text []rune, start, end int, target rune) int {
	for i := start; i < end; i++ {
		if text[i] == target {
			return i
		}
	}
	return -1
}

func indexFunc(text []rune, start, end int, f func(rune) bool) int {
	for i := start; i < end; i++ {
		if f(text[i]) {
			return i
		}
	}
	return -1
}
