package quickpopup

import (
	"github.com/riverfjs/quickpopup-go/internal/splitter"
)

// Paragraph is one chunk of split text and the rule that ended it.
type Paragraph = splitter.Paragraph

// Rule identifies the splitting tier that ended a paragraph.
type Rule = splitter.Rule

const (
	RuleWhole          = splitter.RuleWhole
	RulePeriodCount    = splitter.RulePeriodCount
	RulePeriodFallback = splitter.RulePeriodFallback
	RulePeriod         = splitter.RulePeriod
	RuleNewline        = splitter.RuleNewline
	RuleQuestion       = splitter.RuleQuestion
	RuleComma          = splitter.RuleComma
	RuleHardCut        = splitter.RuleHardCut
	RuleBracket        = splitter.RuleBracket
)

// Separator joins paragraphs in the output of Split.
const Separator = splitter.Separator
