package splitter

import "golang.org/x/text/width"

const (
	fullOpen  = '（'
	fullClose = '）'
	halfOpen  = '('
	halfClose = ')'
	period    = '。'
	comma     = '、'
)

// bracketOf classifies r as an opening or closing parenthesis. Width variants
// fold to their narrow form, and full reports which bracket system r belongs
// to: "（" and "）" are full-width, "(" and ")" are not.
func bracketOf(r rune) (opening, closing, full bool) {
	p := width.LookupRune(r)
	narrow := r
	if n := p.Narrow(); n != 0 {
		narrow = n
	}
	full = p.Kind() == width.EastAsianFullwidth
	return narrow == halfOpen, narrow == halfClose, full
}

func isOpenBracket(r rune) bool {
	opening, _, _ := bracketOf(r)
	return opening
}

// depthTable holds the full-width bracket depth before every rune index, so
// d[i]-d[0] counts "（" minus "）" between the table start and i.
type depthTable []int

func newDepthTable(text []rune) depthTable {
	d := make(depthTable, len(text)+1)
	for i, r := range text {
		d[i+1] = d[i]
		switch opening, closing, full := bracketOf(r); {
		case opening && full:
			d[i+1]++
		case closing && full:
			d[i+1]--
		}
	}
	return d
}

// from returns the table of the suffix starting at off. Depths are relative
// to that suffix, as if the table had been built for it alone.
func (d depthTable) from(off int) depthTable {
	return d[off:]
}

// inside reports whether pos lies within a full-width bracket span.
func (d depthTable) inside(pos int) bool {
	return d[pos]-d[0] > 0
}

// isAfterOpenBracket reports whether the rune before pos is an opening bracket.
func isAfterOpenBracket(text []rune, pos int) bool {
	if pos <= 0 {
		return false
	}
	return isOpenBracket(text[pos-1])
}

// isBeforeBracket reports whether the rune after pos is an opening bracket.
func isBeforeBracket(text []rune, pos int) bool {
	if pos >= len(text)-1 {
		return false
	}
	return isOpenBracket(text[pos+1])
}

// matchingClose returns the index of the bracket closing the one at openPos,
// or -1 when the span is never closed.
func matchingClose(text []rune, openPos int) int {
	_, _, openFull := bracketOf(text[openPos])
	depth := 1
	for i := openPos + 1; i < len(text); i++ {
		opening, closing, full := bracketOf(text[i])
		if full != openFull {
			continue
		}
		switch {
		case opening:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// absorbBracketPair cuts the bracket span at the start of text, together with
// a directly following "。". ok is false when the span is never closed.
func absorbBracketPair(text []rune) (absorbed, rest []rune, ok bool) {
	end := matchingClose(text, 0)
	if end == -1 {
		return nil, text, false
	}
	end++
	if end < len(text) && text[end] == period {
		end++
	}
	return text[:end], text[end:], true
}
