package canvasrenderer

import (
	"testing"
	"unicode/utf8"

	"github.com/ByLCY/copyfit/layout"
)

// runeWidth 每个 rune 宽 1mm，折行逻辑的测试不依赖字体资源。
func runeWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s))
}

func TestGreedyWrapAnywhere(t *testing.T) {
	m := identityMeasurer(runeWidth)
	lines := greedyWrap("aaa bbb ccc", 7, m, "anywhere")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %+v", len(lines), lines)
	}
	if lines[0].Content != "aaa bbb" {
		t.Fatalf("first line mismatch: %q", lines[0].Content)
	}
	if lines[0].Width != 7 {
		t.Fatalf("first line width mismatch: %g", lines[0].Width)
	}
}

// 第一行宽度与容器宽度恰好相等且后面紧跟显式换行时，不应产生额外空行。
func TestNoBlankLineWhenEqualWidthThenNewline(t *testing.T) {
	m := identityMeasurer(runeWidth)
	first := "SAMPLE-A"
	limit := m.advance(first)
	if limit != 8 {
		t.Fatalf("unexpected measured width: %g", limit)
	}

	lines := greedyWrap(first+"\n"+"SAMPLE-B", limit, m, "anywhere")
	if got := len(lines); got != 2 {
		t.Fatalf("expected 2 lines without blank, got %d", got)
	}
	if lines[0].Content != first {
		t.Fatalf("first line mismatch: got=%q want=%q", lines[0].Content, first)
	}
	if lines[1].Content != "SAMPLE-B" {
		t.Fatalf("second line mismatch: got=%q", lines[1].Content)
	}
}

func TestGreedyWrapBreakWord(t *testing.T) {
	m := identityMeasurer(runeWidth)
	lines := greedyWrap("abcdef", 2, m, "break-word")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %+v", len(lines), lines)
	}
	if lines[0].Content != "ab" || lines[1].Content != "cd" || lines[2].Content != "ef" {
		t.Fatalf("unexpected chunks: %+v", lines)
	}
}

func TestGreedyWrapNowrap(t *testing.T) {
	m := identityMeasurer(runeWidth)
	lines := greedyWrap("one two\nthree", 3, m, "nowrap")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Content != "one two" || lines[1].Content != "three" {
		t.Fatalf("unexpected lines: %+v", lines)
	}
	if lines[0].Width != 7 {
		t.Fatalf("nowrap width mismatch: %g", lines[0].Width)
	}
}

func TestSplitTokenByWidth(t *testing.T) {
	m := identityMeasurer(runeWidth)
	parts := splitTokenByWidth("abcdef", 2.5, m)
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %v", parts)
	}
	if parts[0] != "ab" || parts[1] != "cd" || parts[2] != "ef" {
		t.Fatalf("unexpected parts: %v", parts)
	}
}

// 进距约定：词 token = 自然宽 × Scale + Tracking × 字符数；
// 空白 token = 自然宽 × Scale × WordSpacing，tracking 不作用于空白。
func TestMeasurerAdvance(t *testing.T) {
	m := measurer{textWidth: runeWidth, adj: layout.Adjustments{
		Tracking:    -0.1,
		Scale:       0.9,
		WordSpacing: 0.5,
	}}
	if got, want := m.advance("abcd"), 4*0.9+(-0.1)*4; !almostEqual(got, want) {
		t.Fatalf("word advance mismatch: got=%g want=%g", got, want)
	}
	if got, want := m.advance("  "), 2*0.9*0.5; !almostEqual(got, want) {
		t.Fatalf("space advance mismatch: got=%g want=%g", got, want)
	}
}

// 压缩参数收紧时贪心折行的行数单调不增。
func TestAdjustmentsReduceLineCount(t *testing.T) {
	content := "word word word word word word word word"
	width := 12.0

	natural := greedyWrap(content, width, identityMeasurer(runeWidth), "anywhere")
	compressed := greedyWrap(content, width, measurer{
		textWidth: runeWidth,
		adj:       layout.Adjustments{Tracking: -0.2, Scale: 0.8, WordSpacing: 0.6},
	}, "anywhere")

	if len(compressed) > len(natural) {
		t.Fatalf("compression increased line count: natural=%d compressed=%d", len(natural), len(compressed))
	}
	if len(compressed) == len(natural) {
		t.Fatalf("expected fewer lines after compression: natural=%d compressed=%d", len(natural), len(compressed))
	}
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
