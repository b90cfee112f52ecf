package parser

import (
	"testing"
)

func rangeTexts(source string) []string {
	var out []string
	for _, r := range ParagraphRanges([]byte(source)) {
		out = append(out, source[r.Start:r.Stop])
	}
	return out
}

// TestParagraphRanges 测试顶层段落定位
func TestParagraphRanges(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "single paragraph",
			source: "今日は晴れ。明日は雨。\n",
			want:   []string{"今日は晴れ。明日は雨。"},
		},
		{
			name:   "paragraphs around heading",
			source: "# 見出し\n\n最初の段落。\n\n## 次\n\n二つ目の段落。\n",
			want:   []string{"最初の段落。", "二つ目の段落。"},
		},
		{
			name:   "multi-line paragraph",
			source: "一行目。\n二行目。\n\nnext",
			want:   []string{"一行目。\n二行目。", "next"},
		},
		{
			name:   "list and quote paragraphs skipped",
			source: "- 項目。\n- 項目二。\n\n> 引用。\n\n本文。\n",
			want:   []string{"本文。"},
		},
		{
			name:   "code block skipped",
			source: "```\nコード。\n```\n\n本文。",
			want:   []string{"本文。"},
		},
		{
			name:   "table skipped",
			source: "| a | b |\n|---|---|\n| 1 | 2 |\n\n本文。",
			want:   []string{"本文。"},
		},
		{
			name:   "indented paragraph",
			source: "  字下げ。\n",
			want:   []string{"字下げ。"},
		},
		{
			name:   "empty",
			source: "",
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rangeTexts(tt.source)
			if len(got) != len(tt.want) {
				t.Fatalf("ParagraphRanges() = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParagraphRanges()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParagraphRanges_Ordered(t *testing.T) {
	source := []byte("a。\n\nb。\n\nc。\n")
	ranges := ParagraphRanges(source)
	for i := 1; i < len(ranges); i++ {
		if ranges[i].Start < ranges[i-1].Stop {
			t.Errorf("range %d starts at %d before previous stop %d", i, ranges[i].Start, ranges[i-1].Stop)
		}
	}
}
