package splitter

import (
	"testing"
)

func runesIndex(text []rune, target rune) int {
	return indexRune(text, 0, len(text), target)
}

// TestDepthTable_Inside 测试括号深度判定
func TestDepthTable_Inside(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"inside full-width brackets", "前のテキスト（括弧の中。テスト）後のテキスト", true},
		{"outside brackets", "前のテキスト（括弧の中）後のテキスト。最後", false},
		{"no brackets", "括弧なしのテキスト。", false},
		{"nested brackets", "テキスト（外側（内側。テスト）まだ外側）終わり", true},
		{"after bracket closed", "テキスト（括弧）外の句点。ここ", false},
		{"half-width brackets are not tracked", "text(inner。)after", false},
		{"stray closer never counts as inside", "）テキスト（括弧）。", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := []rune(tt.text)
			pos := runesIndex(text, period)
			if got := newDepthTable(text).inside(pos); got != tt.want {
				t.Errorf("inside(%d) = %v, want %v", pos, got, tt.want)
			}
		})
	}
}

func TestIsBeforeBracket(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"テキスト。（括弧）", true},
		{"テキスト。(括弧)", true},
		{"テキスト。次の文。", false},
		{"テキスト。", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			text := []rune(tt.text)
			if got := isBeforeBracket(text, runesIndex(text, period)); got != tt.want {
				t.Errorf("isBeforeBracket(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsAfterOpenBracket(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"テキスト（。括弧）", true},
		{"テキスト(。括弧)", true},
		{"テキスト（括弧）。次の文", false},
		{"。テキスト", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			text := []rune(tt.text)
			if got := isAfterOpenBracket(text, runesIndex(text, period)); got != tt.want {
				t.Errorf("isAfterOpenBracket(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

// TestMatchingClose 测试匹配括号查找
func TestMatchingClose(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"simple full-width", "（abc）def", 4},
		{"simple half-width", "(abc)def", 4},
		{"nested full-width", "（a（b）c）d", 6},
		{"nested half-width", "(a(b)c)d", 6},
		{"unmatched", "（abc", -1},
		{"full-width open never closed by half-width", "（abc)", -1},
		{"half-width open never closed by full-width", "(abc）", -1},
		{"other system ignored inside", "（a(b）c)", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchingClose([]rune(tt.text), 0); got != tt.want {
				t.Errorf("matchingClose(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestAbsorbBracketPair(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantAbsorbed string
		wantRest     string
		wantOK       bool
	}{
		{"with period", "（参照）。次の文", "（参照）。", "次の文", true},
		{"without period", "（参照）次の文", "（参照）", "次の文", true},
		{"comma is not absorbed", "(ref)、next", "(ref)", "、next", true},
		{"unmatched", "（参照 次の文", "", "（参照 次の文", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			absorbed, rest, ok := absorbBracketPair([]rune(tt.text))
			if ok != tt.wantOK {
				t.Fatalf("absorbBracketPair() ok = %v, want %v", ok, tt.wantOK)
			}
			if string(absorbed) != tt.wantAbsorbed {
				t.Errorf("absorbBracketPair() absorbed = %q, want %q", string(absorbed), tt.wantAbsorbed)
			}
			if string(rest) != tt.wantRest {
				t.Errorf("absorbBracketPair() rest = %q, want %q", string(rest), tt.wantRest)
			}
		})
	}
}

func TestBracketOf(t *testing.T) {
	tests := []struct {
		r           rune
		wantOpening bool
		wantClosing bool
		wantFull    bool
	}{
		{fullOpen, true, false, true},
		{fullClose, false, true, true},
		{halfOpen, true, false, false},
		{halfClose, false, true, false},
		{'「', false, false, false},
		{'［', false, false, true},
		{period, false, false, false},
		{'a', false, false, false},
	}
	for _, tt := range tests {
		opening, closing, full := bracketOf(tt.r)
		if opening != tt.wantOpening || closing != tt.wantClosing || full != tt.wantFull {
			t.Errorf("bracketOf(%q) = %v, %v, %v, want %v, %v, %v",
				tt.r, opening, closing, full, tt.wantOpening, tt.wantClosing, tt.wantFull)
		}
	}
}

// TestDepthTable_From 测试后缀视图与单独构建的深度表一致
func TestDepthTable_From(t *testing.T) {
	text := []rune("前（外（内。）中）。後）（開。")
	whole := newDepthTable(text)
	for off := 0; off <= len(text); off++ {
		suffix := text[off:]
		fresh := newDepthTable(suffix)
		view := whole.from(off)
		for pos := range suffix {
			if got, want := view.inside(pos), fresh.inside(pos); got != want {
				t.Errorf("from(%d).inside(%d) = %v, want %v", off, pos, got, want)
			}
		}
	}
}
