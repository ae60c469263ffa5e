package layout

import (
	"github.com/ByLCY/copyfit/fit"
)

// DefaultFitProfile 是 story 未指明 fit 资源时使用的压缩上限。
var DefaultFitProfile = FitProfile{
	Name:        "default",
	Tracking:    -0.15,
	Scale:       0.97,
	WordSpacing: 0.8,
}

// 轴种类。搜索空间的轴序固定：先 tracking，再 scale，最后 word-spacing。
type axisKind int

const (
	axisTracking axisKind = iota
	axisScale
	axisWordSpacing
)

// fitAxis 把一个压缩参数映射为搜索空间中的一条轴：
// limit 为压缩角（矩形的 min），natural 为自然角（矩形的 max）。
type fitAxis struct {
	kind    axisKind
	limit   float64
	natural float64
}

// profileAxes 展开档位中真正有压缩空间的轴；
// 停在自然值上的参数不构成轴，不参与搜索。
func profileAxes(p FitProfile) []fitAxis {
	var axes []fitAxis
	if p.Tracking < 0 {
		axes = append(axes, fitAxis{kind: axisTracking, limit: p.Tracking, natural: 0})
	}
	if p.Scale > 0 && p.Scale < 1 {
		axes = append(axes, fitAxis{kind: axisScale, limit: p.Scale, natural: 1})
	}
	if p.WordSpacing > 0 && p.WordSpacing < 1 {
		axes = append(axes, fitAxis{kind: axisWordSpacing, limit: p.WordSpacing, natural: 1})
	}
	return axes
}

// adjustmentsAt 把搜索空间中的坐标映射回压缩参数，未入轴的参数保持自然值。
func adjustmentsAt(p fit.Point, axes []fitAxis) Adjustments {
	adj := IdentityAdjustments()
	for i, ax := range axes {
		switch ax.kind {
		case axisTracking:
			adj.Tracking = p.At(i)
		case axisScale:
			adj.Scale = p.At(i)
		case axisWordSpacing:
			adj.WordSpacing = p.At(i)
		}
	}
	return adj
}

// fitter 把"按压缩参数重排版并统计行数"包装成 fit.Predicate，并承担
// 宿主职责：在进入搜索前识别"无需调整"，搜索失败时保留自然排版。
type fitter struct {
	ts         Typesetter
	content    string
	width      float64
	font       FontResource
	fontSize   float64
	lineHeight float64
	wrap       string
	trace      bool

	evaluations int
	traceLog    []FitEvaluation
	layoutErr   error
}

func (f *fitter) layoutAt(adj Adjustments) ([]TextLine, error) {
	return f.ts.LayoutLines(f.content, f.width, f.font, f.fontSize, f.lineHeight, f.wrap, adj)
}

// measure 在搜索期间量测一个角点是否满足行数预算。排版错误记入
// layoutErr，该角按"不可行"处理，错误在搜索返回后统一上抛。
func (f *fitter) measure(p fit.Point, axes []fitAxis, maxLines int) bool {
	adj := adjustmentsAt(p, axes)
	f.evaluations++
	lines, err := f.layoutAt(adj)
	if err != nil {
		if f.layoutErr == nil {
			f.layoutErr = err
		}
		return false
	}
	fits := len(lines) <= maxLines
	if f.trace {
		f.traceLog = append(f.traceLog, FitEvaluation{Adjustments: adj, Lines: len(lines), Fits: fits})
	}
	return fits
}

// fit 执行一个 story 的适配流程：
//
//  1. 自然排版满足预算 → OutcomeFits（无需进入搜索）；
//  2. 无可用压缩轴，或搜索未提交可行点 → OutcomeOverset，保留自然排版；
//  3. 否则按提交点重排版 → OutcomeCompressed。
//
// "无法适配"是报告值而非错误；只有排版后端出错才返回 error。
func (f *fitter) fit(maxLines int, profile FitProfile) ([]TextLine, *FitReport, error) {
	natural, err := f.layoutAt(IdentityAdjustments())
	if err != nil {
		return nil, nil, err
	}
	report := &FitReport{
		MaxLines:     maxLines,
		NaturalLines: len(natural),
		FinalLines:   len(natural),
		Applied:      IdentityAdjustments(),
		Profile:      profile.Name,
	}
	if len(natural) <= maxLines {
		report.Outcome = OutcomeFits
		return natural, report, nil
	}

	axes := profileAxes(profile)
	if len(axes) == 0 {
		report.Outcome = OutcomeOverset
		return natural, report, nil
	}
	lo := make([]float64, len(axes))
	hi := make([]float64, len(axes))
	for i, ax := range axes {
		lo[i] = ax.limit
		hi[i] = ax.natural
	}
	pred := func(min, max fit.Point) (bool, *fit.Point) {
		if f.layoutErr != nil {
			return false, nil
		}
		if f.measure(max, axes, maxLines) {
			return false, nil // 自然侧角已满足预算：矩形内不含边界
		}
		if f.measure(min, axes, maxLines) {
			p := min
			return true, &p
		}
		return false, nil
	}

	best, found := fit.NewSearch().Run(fit.NewSpace(fit.NewPoint(lo...), fit.NewPoint(hi...), pred))
	if f.layoutErr != nil {
		return nil, nil, f.layoutErr
	}
	report.Evaluations = f.evaluations
	report.Trace = f.traceLog
	if !found {
		report.Outcome = OutcomeOverset
		return natural, report, nil
	}

	applied := adjustmentsAt(best, axes)
	final, err := f.layoutAt(applied)
	if err != nil {
		return nil, nil, err
	}
	report.Outcome = OutcomeCompressed
	report.FinalLines = len(final)
	report.Applied = applied
	return final, report, nil
}
