package splitter

// Rule identifies the splitting tier that ended a paragraph.
type Rule int

const (
	// RuleWhole means the remaining text fit within the soft limit.
	RuleWhole Rule = iota
	// RulePeriodCount means the paragraph ended at the furthest usable "。"
	// within the soft limit, at or after the MinPeriods-th one.
	RulePeriodCount
	// RulePeriodFallback means the paragraph ended at the period preceding
	// the MinPeriods-th one because that one lay beyond the soft limit.
	RulePeriodFallback
	// RulePeriod means a "。" inside the char-limit search window.
	RulePeriod
	// RuleNewline means a line break inside the search window; the break is dropped.
	RuleNewline
	// RuleQuestion means a question or exclamation mark inside the search window.
	RuleQuestion
	// RuleComma means a "、" inside the search window.
	RuleComma
	// RuleHardCut means no delimiter was found and the text was cut at the hard limit.
	RuleHardCut
	// RuleBracket means a leading bracket span with nothing after it.
	RuleBracket
)

// String returns the string representation of Rule.
func (r Rule) String() string {
	switch r {
	case RuleWhole:
		return "whole"
	case RulePeriodCount:
		return "period-count"
	case RulePeriodFallback:
		return "period-fallback"
	case RulePeriod:
		return "period"
	case RuleNewline:
		return "newline"
	case RuleQuestion:
		return "question"
	case RuleComma:
		return "comma"
	case RuleHardCut:
		return "hard-cut"
	case RuleBracket:
		return "bracket"
	default:
		return "unknown"
	}
}
