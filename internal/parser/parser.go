package parser

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/quickpopup-go/internal/util"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,            // GitHub Flavored Markdown (tables, strikethrough, tasklists)
		extension.DefinitionList, // 定义列表
		extension.Footnote,       // 脚注
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(), // 自动生成标题 ID
	),
}

// Range 是 source 中的字节区间 [Start, Stop)
type Range struct {
	Start int
	Stop  int
}

// ParseAST 仅解析为 AST，不遍历
func ParseAST(source []byte) ast.Node {
	md := goldmark.New(StandardOptions...)
	return md.Parser().Parse(text.NewReader(source))
}

// ParagraphRanges 返回文档顶层段落的字节区间，按出现顺序排列
//
// 只收集文档直接子节点中的 ast.Paragraph；列表、引用、表格等内部的段落
// 不在结果中。区间不包含首尾空白。
func ParagraphRanges(source []byte) []Range {
	doc := ParseAST(source)

	var ranges []Range
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if n.Kind() != ast.KindParagraph {
			continue
		}
		lines := n.Lines()
		if lines.Len() == 0 {
			continue
		}
		r := trimRange(source, Range{
			Start: lines.At(0).Start,
			Stop:  lines.At(lines.Len() - 1).Stop,
		})
		if r.Start < r.Stop {
			ranges = append(ranges, r)
		}
	}
	return ranges
}

func trimRange(source []byte, r Range) Range {
	for r.Start < r.Stop && isSpaceByte(source[r.Start]) {
		r.Start++
	}
	for r.Stop > r.Start && isSpaceByte(source[r.Stop-1]) {
		r.Stop--
	}
	return r
}

func isSpaceByte(b byte) bool {
	return b < 0x80 && util.IsSpace(rune(b))
}
