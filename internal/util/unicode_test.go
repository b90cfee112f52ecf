package util

import (
	"testing"
)

func TestUTF16Len(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"日本語", 3},
		{"😀", 2},
		{"a😀b", 4},
	}
	for _, tt := range tests {
		if got := UTF16Len(tt.text); got != tt.want {
			t.Errorf("UTF16Len(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

// TestTrim 测试全角空格与 BOM 也会被去除
func TestTrim(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLeft  string
		wantRight string
		wantBoth  string
	}{
		{"none", "abc", "abc", "abc", "abc"},
		{"ascii", " \tabc\n ", "abc\n ", " \tabc", "abc"},
		{"ideographic space", "\u3000本文\u3000", "本文\u3000", "\u3000本文", "本文"},
		{"bom", "\uFEFF本文", "本文", "\uFEFF本文", "本文"},
		{"blank", " \u3000 ", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runes := []rune(tt.text)
			if got := string(TrimLeft(runes)); got != tt.wantLeft {
				t.Errorf("TrimLeft() = %q, want %q", got, tt.wantLeft)
			}
			if got := string(TrimRight(runes)); got != tt.wantRight {
				t.Errorf("TrimRight() = %q, want %q", got, tt.wantRight)
			}
			if got := string(Trim(runes)); got != tt.wantBoth {
				t.Errorf("Trim() = %q, want %q", got, tt.wantBoth)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	for text, want := range map[string]bool{
		"":        true,
		" \n\t":   true,
		"\u3000":  true,
		"\uFEFF ": true,
		" a ":     false,
		"。":       false,
	} {
		if got := IsBlank(text); got != want {
			t.Errorf("IsBlank(%q) = %v, want %v", text, got, want)
		}
	}
}

func TestConcat_FreshStorage(t *testing.T) {
	base := make([]rune, 2, 8)
	copy(base, []rune("ab"))
	joined := Concat(base[:1], []rune("x"))
	_ = append(base[:1], 'z')

	if got := string(joined); got != "ax" {
		t.Errorf("Concat() = %q, want %q", got, "ax")
	}
}
