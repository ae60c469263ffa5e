package canvasrenderer

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ByLCY/copyfit/layout"
)

// measurer 把字体度量与压缩参数合成为 token 进距。
// 词 token：自然宽度 × Scale + Tracking × 字符数；
// 空白 token：自然宽度 × Scale × WordSpacing（tracking 不作用于空白）。
// textWidth 与折行逻辑解耦，测试可注入假的度量函数。
type measurer struct {
	textWidth func(string) float64
	adj       layout.Adjustments
}

func identityMeasurer(textWidth func(string) float64) measurer {
	return measurer{textWidth: textWidth, adj: layout.IdentityAdjustments()}
}

// advance 返回一个 token 在当前压缩参数下占用的水平进距（mm）。
func (m measurer) advance(token string) float64 {
	if token == "" {
		return 0
	}
	w := m.textWidth(token) * m.adj.Scale
	if isSpaceToken(token) {
		return w * m.adj.WordSpacing
	}
	return w + m.adj.Tracking*float64(utf8.RuneCountInString(token))
}

// lineWidth 计算一串 token 的总进距。
func (m measurer) lineWidth(tokens []string) float64 {
	total := 0.0
	for _, tok := range tokens {
		total += m.advance(tok)
	}
	return total
}

// isSpaceToken 判断 token 是否为空白 run。tokenizeContent 产出的 token
// 要么全为空白，要么不含空白，看第一个 rune 即可。
func isSpaceToken(token string) bool {
	r, _ := utf8.DecodeRuneInString(token)
	return unicode.IsSpace(r)
}

// greedyWrap 按给定折行策略将文本拆行，所有宽度比较使用 mm。
// wrap 取值：anywhere（默认，空白处优先、词内可拆）、break-word（纯按宽度
// 逐字切分）、nowrap（仅按显式换行拆分）。
func greedyWrap(content string, width float64, m measurer, wrap string) []layout.TextLine {
	limit := width
	if limit <= 0 {
		limit = math.MaxFloat64
	}

	// nowrap：仅按显式换行划分，不基于宽度折行
	if wrap == "nowrap" {
		parts := strings.Split(content, "\n")
		lines := make([]layout.TextLine, 0, len(parts))
		for _, p := range parts {
			lines = append(lines, layout.TextLine{Content: p, Width: m.lineWidth(tokenizeContent(p))})
		}
		return lines
	}

	// break-word：忽略空白机会，纯按宽度切分（仍然尊重显式换行）
	if wrap == "break-word" {
		var lines []layout.TextLine
		var builder strings.Builder
		current := 0.0
		emit := func(force bool) {
			if builder.Len() == 0 {
				if force {
					lines = append(lines, layout.TextLine{Content: "", Width: 0})
				}
				return
			}
			lines = append(lines, layout.TextLine{Content: builder.String(), Width: current})
			builder.Reset()
			current = 0
		}
		for _, r := range content {
			if r == '\r' {
				continue
			}
			if r == '\n' {
				emit(true)
				continue
			}
			s := string(r)
			cw := m.advance(s)
			if current > 0 && current+cw > limit {
				emit(false)
			}
			builder.WriteString(s)
			current += cw
			if current > limit {
				emit(false)
			}
		}
		emit(true)
		return lines
	}

	// 默认（anywhere）：优先在空白处分割，超限的词在词内拆分
	tokens := tokenizeContent(content)
	var lines []layout.TextLine
	var builder strings.Builder
	currentWidth := 0.0

	emit := func(force bool) {
		if builder.Len() == 0 {
			if force {
				lines = append(lines, layout.TextLine{Content: "", Width: 0})
			}
			return
		}
		lines = append(lines, layout.TextLine{Content: builder.String(), Width: currentWidth})
		builder.Reset()
		currentWidth = 0
	}

	appendToken := func(token string) {
		builder.WriteString(token)
		currentWidth += m.advance(token)
	}

	for _, token := range tokens {
		if token == "\n" {
			emit(true)
			continue
		}

		tokenWidth := m.advance(token)
		if currentWidth > 0 && currentWidth+tokenWidth > limit {
			emit(false)
		}
		if tokenWidth <= limit {
			appendToken(token)
			if currentWidth > limit {
				emit(false)
			}
			continue
		}

		for _, chunk := range splitTokenByWidth(token, limit, m) {
			chunkWidth := m.advance(chunk)
			if currentWidth > 0 && currentWidth+chunkWidth > limit {
				emit(false)
			}
			appendToken(chunk)
			if currentWidth > limit {
				emit(false)
			}
		}
	}

	emit(true)
	return lines
}

// tokenizeContent 将文本拆成交替的词 run 与空白 run，显式换行单独成 token。
func tokenizeContent(s string) []string {
	var tokens []string
	var builder strings.Builder
	lastWasSpace := false
	flush := func() {
		if builder.Len() == 0 {
			return
		}
		tokens = append(tokens, builder.String())
		builder.Reset()
	}

	for _, r := range s {
		if r == '\r' {
			continue
		}
		if r == '\n' {
			flush()
			tokens = append(tokens, "\n")
			lastWasSpace = false
			continue
		}
		isSpace := unicode.IsSpace(r)
		if builder.Len() == 0 {
			lastWasSpace = isSpace
		} else if lastWasSpace != isSpace {
			flush()
			lastWasSpace = isSpace
		}
		builder.WriteRune(r)
	}
	flush()
	return tokens
}

// splitTokenByWidth 把超宽的单个词按进距拆成若干段。
func splitTokenByWidth(token string, limit float64, m measurer) []string {
	if limit <= 0 || limit == math.MaxFloat64 {
		return []string{token}
	}
	var parts []string
	var builder strings.Builder
	for _, r := range token {
		builder.WriteRune(r)
		if m.advance(builder.String()) > limit && builder.Len() > 1 {
			runes := []rune(builder.String())
			parts = append(parts, string(runes[:len(runes)-1]))
			builder.Reset()
			builder.WriteRune(r)
		}
	}
	if builder.Len() > 0 {
		parts = append(parts, builder.String())
	}
	return parts
}
