package quickpopup

import (
	"strings"

	"go.uber.org/zap"

	"github.com/riverfjs/quickpopup-go/internal/parser"
)

// SplitMarkdown 拆分 Markdown 文档中的顶层段落
//
// 标题、列表、引用、表格、代码块和 HTML 逐字节保留；每个顶层段落被
// Split 的结果替换，段落前后的空白保持不变。
func SplitMarkdown(source string, opts ...Option) string {
	o := applyOptions(opts...)

	src := []byte(source)
	ranges := parser.ParagraphRanges(src)
	if len(ranges) == 0 {
		return source
	}

	var sb strings.Builder
	sb.Grow(len(source) + len(ranges)*2)
	prev := 0
	for _, r := range ranges {
		sb.Write(src[prev:r.Start])
		sb.WriteString(o.split(string(src[r.Start:r.Stop])))
		prev = r.Stop
	}
	sb.Write(src[prev:])

	o.logger().Debug("split markdown", zap.Int("paragraphs", len(ranges)))
	return sb.String()
}
