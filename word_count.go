package quickpopup

import (
	"unicode/utf8"

	"github.com/riverfjs/quickpopup-go/internal/util"
)

// CountText 返回拆分阈值使用的文本长度（rune 数）
func CountText(text string) int {
	return utf8.RuneCountInString(text)
}

// UTF16Len 返回文本的 UTF-16 code units 数量（编辑器侧的长度单位）
//
// 只有 BMP 之外的字符（如部分 emoji 与罕用汉字）会与 CountText 不同。
func UTF16Len(text string) int {
	return util.UTF16Len(text)
}
