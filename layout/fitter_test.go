package layout

import (
	"errors"
	"testing"

	"github.com/ByLCY/copyfit/fit"
)

// TestProfileAxes 只有真正留出压缩空间的参数才构成搜索轴，轴序固定。
func TestProfileAxes(t *testing.T) {
	if axes := profileAxes(FitProfile{Tracking: 0, Scale: 1, WordSpacing: 1}); len(axes) != 0 {
		t.Fatalf("全自然值档位不应产生轴: %+v", axes)
	}

	axes := profileAxes(DefaultFitProfile)
	if len(axes) != 3 {
		t.Fatalf("默认档位应有 3 条轴，实际 %d", len(axes))
	}
	if axes[0].kind != axisTracking || axes[1].kind != axisScale || axes[2].kind != axisWordSpacing {
		t.Fatalf("轴序错误: %+v", axes)
	}
	if axes[0].limit != DefaultFitProfile.Tracking || axes[0].natural != 0 {
		t.Fatalf("tracking 轴端点错误: %+v", axes[0])
	}

	axes = profileAxes(FitProfile{Scale: 0.95, WordSpacing: 1})
	if len(axes) != 1 || axes[0].kind != axisScale {
		t.Fatalf("仅 scale 档位应产生单轴: %+v", axes)
	}
}

// TestAdjustmentsAt 搜索坐标映射回压缩参数时，未入轴的参数保持自然值。
func TestAdjustmentsAt(t *testing.T) {
	axes := profileAxes(FitProfile{Scale: 0.9, WordSpacing: 0.8})
	adj := adjustmentsAt(fit.NewPoint(0.95, 0.85), axes)
	if adj.Tracking != 0 {
		t.Fatalf("tracking 未入轴时应保持 0，实际 %g", adj.Tracking)
	}
	if adj.Scale != 0.95 || adj.WordSpacing != 0.85 {
		t.Fatalf("坐标映射错误: %+v", adj)
	}
}

type failingTypesetter struct{ err error }

func (f *failingTypesetter) LayoutLines(string, float64, FontResource, float64, float64, string, Adjustments) ([]TextLine, error) {
	return nil, f.err
}

// TestFitterLayoutError 排版后端出错时上抛错误而不是产出报告。
func TestFitterLayoutError(t *testing.T) {
	sentinel := errors.New("字体加载失败")
	f := &fitter{
		ts:      &failingTypesetter{err: sentinel},
		content: "abc",
		width:   100,
	}
	_, _, err := f.fit(2, DefaultFitProfile)
	if !errors.Is(err, sentinel) {
		t.Fatalf("期望上抛排版错误，实际 %v", err)
	}
}

// countingTypesetter 行数由压缩参数决定，用于验证量测计数与报告内容。
type countingTypesetter struct {
	calls int
}

func (c *countingTypesetter) LayoutLines(content string, width float64, font FontResource, fontSize, lineHeight float64, wrap string, adj Adjustments) ([]TextLine, error) {
	c.calls++
	// scale ≤ 0.98 时收进 2 行，否则 3 行
	n := 3
	if adj.Scale <= 0.98 {
		n = 2
	}
	lines := make([]TextLine, n)
	for i := range lines {
		lines[i] = TextLine{Content: "x", Width: 1, Height: fontSize}
	}
	return lines, nil
}

func TestFitterReportAccounting(t *testing.T) {
	ts := &countingTypesetter{}
	f := &fitter{ts: ts, content: "x", width: 100, trace: true}
	lines, report, err := f.fit(2, FitProfile{Name: "ScaleOnly", Scale: 0.9, WordSpacing: 1})
	if err != nil {
		t.Fatalf("适配失败: %v", err)
	}
	if report.Outcome != OutcomeCompressed {
		t.Fatalf("期望 compressed，实际 %s", report.Outcome)
	}
	if len(lines) != 2 || report.FinalLines != 2 || report.NaturalLines != 3 {
		t.Fatalf("行数记录错误: %+v", report)
	}
	if report.Applied.Scale > 0.98 || report.Applied.Scale < 0.9 {
		t.Fatalf("提交的 scale 超出范围: %g", report.Applied.Scale)
	}
	if report.Profile != "ScaleOnly" {
		t.Fatalf("档位名未记录: %+v", report)
	}
	if report.Evaluations == 0 || len(report.Trace) != report.Evaluations {
		t.Fatalf("量测计数与轨迹不一致: evals=%d trace=%d", report.Evaluations, len(report.Trace))
	}
	// 总调用 = 自然排版 1 次 + 搜索量测 + 最终重排版 1 次
	if ts.calls != report.Evaluations+2 {
		t.Fatalf("调用计数不一致: calls=%d evals=%d", ts.calls, report.Evaluations)
	}
}
