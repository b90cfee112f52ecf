// Package quickpopup 提供划词弹窗插件的两个确定性核心
//
// 核心功能：
//   - 将长篇日文（及日英混排）文本按标点与括号规则拆分为段落
//   - 在不遮挡选区、不越出屏幕边距的前提下计算弹窗位置
//   - 只拆分 Markdown 笔记中的顶层段落，其余结构保持原样
//
// 主要 API：
//   - SplitIntoParagraphs(): 使用默认阈值拆分，段落之间以空行分隔
//   - Paragraphs(): 返回段落及结束该段落的规则
//   - SplitMarkdown(): 拆分 Markdown 文档中的段落
//   - CalculatePopupPosition(): 计算弹窗左上角坐标与朝向
//
// 示例：
//
//	text := quickpopup.SplitIntoParagraphs(note)
//
//	p := quickpopup.CalculatePopupPosition(selection, popup, viewport)
//	if p.Orientation == quickpopup.Above {
//	    // 箭头朝下
//	}
package quickpopup

import (
	"strings"

	"go.uber.org/zap"

	"github.com/riverfjs/quickpopup-go/internal/placement"
	"github.com/riverfjs/quickpopup-go/internal/splitter"
	"github.com/riverfjs/quickpopup-go/internal/util"
)

// SplitIntoParagraphs 使用默认阈值拆分文本
//
// 空文本或仅含空白的文本原样返回；否则返回以 "\n\n" 连接的段落。
func SplitIntoParagraphs(text string) string {
	return Split(text)
}

// Split 拆分文本，可通过 WithSplitConfig 指定阈值
func Split(text string, opts ...Option) string {
	return applyOptions(opts...).split(text)
}

// Paragraphs 返回拆分后的段落（已去除首尾空白，不含空段落）
func Paragraphs(text string, opts ...Option) []Paragraph {
	return applyOptions(opts...).paragraphs(text)
}

// CalculatePopupPosition 计算弹窗位置
//
// 参数：
//   - selection: 选区在视口中的矩形
//   - popup: 弹窗尺寸（只使用 Width 与 Height）
//   - viewport: 视口尺寸
//
// 返回的位置总是水平居中于选区并限制在屏幕边距内；优先放在选区下方。
func CalculatePopupPosition(selection, popup Rect, viewport Viewport, opts ...Option) Placement {
	o := applyOptions(opts...)
	res := placement.CalculateDetailed(selection, popup, viewport, *o.PopupConfig)
	if res.Forced {
		o.logger().Debug("popup overlapped selection, using fallback position",
			zap.Float64("selection_top", selection.Top),
			zap.Float64("selection_bottom", selection.Bottom()),
			zap.Float64("top", res.Top),
			zap.Stringer("orientation", res.Orientation),
		)
	}
	return res.Placement
}

func (o *Options) split(text string) string {
	if util.IsBlank(text) {
		return text
	}
	paragraphs := o.paragraphs(text)
	texts := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		texts[i] = p.Text
	}
	return strings.Join(texts, splitter.Separator)
}

func (o *Options) paragraphs(text string) []Paragraph {
	log := o.logger()
	paragraphs := splitter.Paragraphs(text, o.splitConfig())
	for i, p := range paragraphs {
		if p.Rule == RuleHardCut {
			log.Debug("paragraph cut at hard limit",
				zap.Int("index", i),
				zap.Int("length", CountText(p.Text)),
			)
		}
	}
	log.Debug("split text",
		zap.Int("length", CountText(text)),
		zap.Int("paragraphs", len(paragraphs)),
	)
	return paragraphs
}
