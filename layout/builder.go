package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ByLCY/copyfit/binding"
	"github.com/ByLCY/copyfit/dsl"
)

const blockSpacing = 3.0

// Build 根据 DSL AST 生成页面与文本布局结果，story 语句在此阶段完成行数适配。
func Build(doc *dsl.Document, data any, opts BuildOptions) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("文档为空")
	}
	if opts.Typesetter == nil {
		return nil, fmt.Errorf("layout: 缺少排版后端 Typesetter")
	}

	res, err := collectResources(doc)
	if err != nil {
		return nil, err
	}
	meta := collectMeta(doc)
	pageSection := firstPage(doc)
	if pageSection == nil {
		return nil, fmt.Errorf("文档中缺少 page 段落")
	}

	pages, err := buildPages(pageSection, res, data, opts)
	if err != nil {
		return nil, err
	}

	return &Result{
		Pages:     pages,
		Resources: res,
		Meta:      meta,
	}, nil
}

func buildPages(section *dsl.PageSection, res ResourceSet, data any, opts BuildOptions) ([]Page, error) {
	width, height, err := resolvePageSize(section.Spec)
	if err != nil {
		return nil, err
	}
	if section.Block == nil {
		return nil, fmt.Errorf("page 段落缺少内容")
	}

	margin := resolveMargin(section.Spec.Params)
	collector := newPageCollector(width, height, margin)

	root := &flowContext{
		baseX:          margin.Left,
		baseY:          collector.contentTop(),
		width:          width - margin.Left - margin.Right,
		cursorY:        collector.contentTop(),
		data:           data,
		typesetter:     opts.Typesetter,
		debug:          opts.Debug,
		collector:      collector,
		margin:         margin,
		allowPageBreak: true,
		textWrap:       "anywhere",
	}

	if err := processBlock(section.Block, root, res); err != nil {
		return nil, err
	}

	return collector.pages(), nil
}

// processBlock 依次处理 block 内的命令，支持 flow、story 与 text。
func processBlock(block *dsl.Block, ctx *flowContext, res ResourceSet) error {
	for _, stmt := range block.Statements {
		if stmt.Command == nil {
			continue
		}
		cmd := stmt.Command
		switch cmd.Name {
		case "flow":
			if err := handleFlow(cmd, ctx, res); err != nil {
				return err
			}
		case "story":
			if err := handleStory(cmd, ctx, res); err != nil {
				return err
			}
		case "text":
			if err := handleText(cmd, ctx, res); err != nil {
				return err
			}
		default:
			// 其余命令暂未实现，忽略即可
			continue
		}
	}
	return nil
}

func normalizeWrap(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case "break-word", "word-break:break-word":
		return "break-word"
	case "nowrap", "no-wrap":
		return "nowrap"
	default:
		return "anywhere"
	}
}

func handleFlow(cmd *dsl.Command, parent *flowContext, res ResourceSet) error {
	if cmd.Block == nil {
		return fmt.Errorf("flow 语句缺少子内容")
	}
	styleName, attrs := parseArgs(cmd.Args, false)
	attrs = mergeStyleAttributes(styleName, attrs, res.Styles)
	width := parent.width
	if v := attrs["width"]; v != "" {
		if w := parseDimension(v, parent.width); w > 0 && w <= parent.width {
			width = w
		}
	}
	offset := alignOffset(parent.width, width, attrs["align"])

	// 规范化本 flow 的文本对齐方式与折行策略，供子 story/text 继承
	flowAlign := normalizeAlign(attrs["align"])
	flowWrap := parent.textWrap
	if v, ok := attrs["wrap"]; ok && strings.TrimSpace(v) != "" {
		flowWrap = normalizeWrap(v)
	}

	child := &flowContext{
		baseX:          parent.baseX + offset,
		baseY:          parent.cursorY,
		width:          width,
		cursorY:        parent.cursorY,
		data:           parent.data,
		typesetter:     parent.typesetter,
		debug:          parent.debug,
		parent:         parent,
		collector:      parent.collector,
		margin:         parent.margin,
		allowPageBreak: parent.allowPageBreak,
		textAlign:      flowAlign,
		textWrap:       flowWrap,
	}

	if err := processBlock(cmd.Block, child, res); err != nil {
		return err
	}

	if child.cursorY > parent.cursorY {
		parent.cursorY = child.cursorY + blockSpacing
	}
	return nil
}

// handleStory 处理带行数预算的段落：先适配（必要时压缩），再落位。
func handleStory(cmd *dsl.Command, ctx *flowContext, res ResourceSet) error {
	if cmd.Block == nil {
		return fmt.Errorf("story 语句缺少文本块")
	}
	styleName, attrs := parseArgs(cmd.Args, true)
	attrs = mergeStyleAttributes(styleName, attrs, res.Styles)
	inheritAlign(attrs, ctx)

	maxLines, err := parseMaxLines(attrs)
	if err != nil {
		return err
	}
	profile := DefaultFitProfile
	if name := strings.TrimSpace(attrs["fit"]); name != "" {
		p, ok := res.Profiles[name]
		if !ok {
			return fmt.Errorf("fit 档位 %s 未定义", name)
		}
		profile = p
	}

	tb, height, err := composeTextBox(styleName, attrs, cmd.Block, ctx, res, maxLines, profile)
	if err != nil {
		return err
	}
	placeTextBox(ctx, tb, height)
	return nil
}

func handleText(cmd *dsl.Command, ctx *flowContext, res ResourceSet) error {
	if cmd.Block == nil {
		return fmt.Errorf("text 语句缺少文本块")
	}
	styleName, attrs := parseArgs(cmd.Args, true)
	attrs = mergeStyleAttributes(styleName, attrs, res.Styles)
	inheritAlign(attrs, ctx)

	tb, height, err := composeTextBox(styleName, attrs, cmd.Block, ctx, res, 0, FitProfile{})
	if err != nil {
		return err
	}
	placeTextBox(ctx, tb, height)
	return nil
}

// inheritAlign 在未显式声明 align 时继承父 flow 的对齐方式。
func inheritAlign(attrs map[string]string, ctx *flowContext) {
	if strings.TrimSpace(attrs["align"]) == "" && ctx.textAlign != "" {
		attrs["align"] = ctx.textAlign
	}
}

func parseMaxLines(attrs map[string]string) (int, error) {
	v := strings.TrimSpace(attrs["max-lines"])
	if v == "" {
		v = strings.TrimSpace(attrs["maxLines"])
	}
	if v == "" {
		return 0, fmt.Errorf("story 语句缺少 max-lines")
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("max-lines 取值无效：%s", v)
	}
	return n, nil
}

func placeTextBox(ctx *flowContext, tb TextBox, height float64) {
	ctx.ensureSpace(height)
	tb.X = ctx.baseX
	tb.Y = ctx.cursorY
	if acc := ctx.acc(); acc != nil {
		acc.texts = append(acc.texts, tb)
	}
	ctx.cursorY += height + blockSpacing
}

// composeTextBox 解析样式属性、完成数据插值，并排版（maxLines > 0 时适配）。
func composeTextBox(style string, attrs map[string]string, block *dsl.Block, ctx *flowContext, res ResourceSet, maxLines int, profile FitProfile) (TextBox, float64, error) {
	content := extractText(block)
	if content == "" {
		return TextBox{}, 0, fmt.Errorf("缺少文本内容")
	}
	if ctx.data != nil {
		content = binding.Interpolate(content, ctx.data)
	}

	fontName := attrs["font"]
	if fontName == "" {
		fontName = style
	}
	if fontName == "" {
		fontName = "Body"
	}
	fontRes, err := resolveFontResource(fontName, res)
	if err != nil {
		return TextBox{}, 0, err
	}

	fontSize := ParseLength(attrs["size"]).ToMM()
	if fontSize <= 0 { // default 12pt in mm
		fontSize = 12 * PtToMm
	}
	lineHeight := ParseLineHeight(attrs["line-height"]).ResolveMM(fontSize)
	color := resolveColor(attrs["color"], res)
	wrap := ctx.textWrap
	if v, ok := attrs["wrap"]; ok && strings.TrimSpace(v) != "" {
		wrap = normalizeWrap(v)
	}

	f := &fitter{
		ts:         ctx.typesetter,
		content:    content,
		width:      ctx.width,
		font:       fontRes,
		fontSize:   fontSize,
		lineHeight: lineHeight,
		wrap:       wrap,
		trace:      ctx.debug.FitTrace,
	}

	var lines []TextLine
	var report *FitReport
	if maxLines > 0 {
		lines, report, err = f.fit(maxLines, profile)
	} else {
		lines, err = f.layoutAt(IdentityAdjustments())
	}
	if err != nil {
		return TextBox{}, 0, err
	}
	if len(lines) == 0 {
		lines = []TextLine{{Content: "", Width: ctx.width, Height: fontSize}}
	}

	totalHeight := 0.0
	defaultLeading := math.Max(lineHeight-fontSize, 0)
	for i := range lines {
		if lines[i].Height <= 0 {
			lines[i].Height = fontSize
		}
		if i == 0 {
			lines[i].GapBefore = 0
		} else if lines[i].GapBefore <= 0 {
			lines[i].GapBefore = defaultLeading
		}
		totalHeight += lines[i].GapBefore + lines[i].Height
	}

	tb := TextBox{
		Content:    content,
		Width:      ctx.width,
		LineHeight: lineHeight,
		Font:       fontName,
		FontSize:   fontSize,
		Color:      color,
		Lines:      lines,
		Height:     totalHeight,
		Align:      normalizeAlign(attrs["align"]),
		Wrap:       wrap,
		Fit:        report,
	}
	return tb, totalHeight, nil
}

func normalizeAlign(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case "start":
		return "left"
	case "end":
		return "right"
	case "left", "center", "right":
		return v
	default:
		return ""
	}
}

func resolveFontResource(name string, res ResourceSet) (FontResource, error) {
	if font, ok := res.Fonts[name]; ok {
		return font, nil
	}
	if font, ok := res.Fonts["Body"]; ok {
		return font, nil
	}
	for _, font := range res.Fonts {
		return font, nil
	}
	return FontResource{}, fmt.Errorf("字体 %s 未定义，且没有可用的默认字体", name)
}

type pageAccumulator struct {
	texts []TextBox
}

type pageCollector struct {
	width   float64
	height  float64
	margin  Margin
	accs    []*pageAccumulator
	current int
}

func newPageCollector(width, height float64, margin Margin) *pageCollector {
	pc := &pageCollector{
		width:  width,
		height: height,
		margin: margin,
	}
	pc.newPage()
	return pc
}

func (pc *pageCollector) newPage() *pageAccumulator {
	acc := &pageAccumulator{}
	pc.accs = append(pc.accs, acc)
	pc.current = len(pc.accs) - 1
	return acc
}

func (pc *pageCollector) curr() *pageAccumulator {
	if len(pc.accs) == 0 {
		return pc.newPage()
	}
	return pc.accs[pc.current]
}

func (pc *pageCollector) contentTop() float64 {
	return pc.margin.Top
}

func (pc *pageCollector) maxContentY() float64 {
	return pc.height - pc.margin.Bottom
}

func (pc *pageCollector) pages() []Page {
	out := make([]Page, len(pc.accs))
	for i, acc := range pc.accs {
		out[i] = Page{
			Width:  pc.width,
			Height: pc.height,
			Margin: pc.margin,
			Texts:  acc.texts,
		}
	}
	return out
}

type flowContext struct {
	baseX          float64
	baseY          float64
	width          float64
	cursorY        float64
	data           any
	typesetter     Typesetter
	debug          DebugOptions
	parent         *flowContext
	collector      *pageCollector
	margin         Margin
	allowPageBreak bool
	// textAlign 继承自父 flow 的对齐方式（left/center/right）。
	textAlign string
	// textWrap 继承自父 flow 的折行方式（anywhere(默认)/break-word/nowrap）。
	textWrap string
}

func (ctx *flowContext) ensureSpace(height float64) {
	if !ctx.allowPageBreak || ctx.collector == nil {
		return
	}
	if ctx.cursorY+height <= ctx.collector.maxContentY() {
		return
	}
	ctx.pageBreak()
}

func (ctx *flowContext) pageBreak() {
	if ctx.collector == nil {
		return
	}
	if ctx.parent != nil {
		ctx.parent.pageBreak()
		ctx.baseY = ctx.parent.cursorY
		ctx.cursorY = ctx.baseY
		return
	}
	ctx.collector.newPage()
	ctx.baseX = ctx.margin.Left
	ctx.baseY = ctx.collector.contentTop()
	ctx.cursorY = ctx.baseY
}

func (ctx *flowContext) acc() *pageAccumulator {
	if ctx.collector == nil {
		return nil
	}
	return ctx.collector.curr()
}

func collectResources(doc *dsl.Document) (ResourceSet, error) {
	res := ResourceSet{
		Fonts:    map[string]FontResource{},
		Colors:   map[string]Color{},
		Styles:   map[string]Style{},
		Profiles: map[string]FitProfile{},
	}
	rawStyles := map[string]Style{}

	for _, section := range doc.Sections {
		if section.Resources == nil || section.Resources.Block == nil {
			continue
		}
		for _, stmt := range section.Resources.Block.Statements {
			if stmt.Command == nil {
				continue
			}
			switch stmt.Command.Name {
			case "font":
				font := parseFontResource(stmt.Command)
				if font.Name != "" {
					res.Fonts[font.Name] = font
				}
			case "color":
				name, value := parseColorResource(stmt.Command)
				if name == "" || value == "" {
					continue
				}
				if c, err := parseColor(value); err == nil {
					res.Colors[name] = c
				}
			case "style":
				style := parseStyleResource(stmt.Command)
				if style.Name != "" {
					rawStyles[style.Name] = style
				}
			case "fit":
				profile, err := parseFitResource(stmt.Command)
				if err != nil {
					return res, err
				}
				res.Profiles[profile.Name] = profile
			}
		}
	}

	if len(res.Fonts) == 0 {
		res.Fonts["Body"] = FontResource{
			Name:     "Body",
			Src:      "embed:Inter/static/Inter-Regular.ttf",
			Family:   "Body",
			Fallback: "embed:Inter/static/Inter-Regular.ttf",
		}
	}

	resolvedStyles, err := resolveStyles(rawStyles)
	if err != nil {
		return res, err
	}
	res.Styles = resolvedStyles

	return res, nil
}

// parseFitResource 解析压缩档位：
//
//	fit Tight { tracking: -0.2mm scale: 0.97 word-spacing: 0.85 }
//
// 未声明的参数停在自然值上（不参与搜索）。
func parseFitResource(cmd *dsl.Command) (FitProfile, error) {
	if len(cmd.Args) == 0 {
		return FitProfile{}, fmt.Errorf("fit 档位缺少名称")
	}
	profile := FitProfile{
		Name:        cmd.Args[0].Value,
		Tracking:    0,
		Scale:       1,
		WordSpacing: 1,
	}
	if cmd.Block == nil {
		return profile, nil
	}
	for _, stmt := range cmd.Block.Statements {
		if stmt.Assignment == nil {
			continue
		}
		val := valueToString(stmt.Assignment.Value)
		switch stmt.Assignment.Key {
		case "tracking":
			t := ParseLength(val).ToMM()
			if t >= 0 {
				return profile, fmt.Errorf("fit 档位 %s 的 tracking 必须为负值：%s", profile.Name, val)
			}
			profile.Tracking = t
		case "scale":
			s, err := strconv.ParseFloat(val, 64)
			if err != nil || s <= 0 || s > 1 {
				return profile, fmt.Errorf("fit 档位 %s 的 scale 取值无效：%s", profile.Name, val)
			}
			profile.Scale = s
		case "word-spacing", "wordSpacing":
			w, err := strconv.ParseFloat(val, 64)
			if err != nil || w <= 0 || w > 1 {
				return profile, fmt.Errorf("fit 档位 %s 的 word-spacing 取值无效：%s", profile.Name, val)
			}
			profile.WordSpacing = w
		}
	}
	return profile, nil
}

func collectMeta(doc *dsl.Document) DocumentMeta {
	meta := DocumentMeta{
		Creator: "Copyfit",
	}
	for _, section := range doc.Sections {
		if section.Meta == nil || section.Meta.Block == nil {
			continue
		}
		for _, stmt := range section.Meta.Block.Statements {
			if stmt.Assignment == nil {
				continue
			}
			switch strings.ToLower(stmt.Assignment.Key) {
			case "title":
				meta.Title = valueToString(stmt.Assignment.Value)
			case "author":
				meta.Author = valueToString(stmt.Assignment.Value)
			case "subject":
				meta.Subject = valueToString(stmt.Assignment.Value)
			case "creator":
				meta.Creator = valueToString(stmt.Assignment.Value)
			case "keywords":
				meta.Keywords = valueToStringSlice(stmt.Assignment.Value)
			}
		}
	}
	return meta
}

func parseFontResource(cmd *dsl.Command) FontResource {
	if len(cmd.Args) == 0 {
		return FontResource{}
	}
	font := FontResource{
		Name:   cmd.Args[0].Value,
		Family: cmd.Args[0].Value,
	}
	if cmd.Block == nil {
		return font
	}
	for _, stmt := range cmd.Block.Statements {
		if stmt.Assignment == nil || stmt.Assignment.Value.String == nil {
			continue
		}
		val := string(*stmt.Assignment.Value.String)
		switch stmt.Assignment.Key {
		case "src":
			font.Src = val
		case "style":
			font.Style = val
		case "fallback":
			font.Fallback = val
		}
	}
	return font
}

func parseStyleResource(cmd *dsl.Command) Style {
	if len(cmd.Args) == 0 {
		return Style{}
	}
	style := Style{
		Name:  cmd.Args[0].Value,
		Props: map[string]string{},
	}
	if len(cmd.Args) >= 3 && strings.EqualFold(cmd.Args[1].Value, "extends") {
		style.Extends = cmd.Args[2].Value
	}
	if cmd.Block == nil {
		return style
	}
	for _, stmt := range cmd.Block.Statements {
		if stmt.Assignment == nil {
			continue
		}
		if val := valueToString(stmt.Assignment.Value); val != "" {
			style.Props[stmt.Assignment.Key] = val
		}
	}
	return style
}

func resolveStyles(styles map[string]Style) (map[string]Style, error) {
	resolved := map[string]Style{}
	visiting := map[string]bool{}

	var dfs func(name string) (Style, error)
	dfs = func(name string) (Style, error) {
		if style, ok := resolved[name]; ok {
			return style, nil
		}
		style, ok := styles[name]
		if !ok {
			return Style{}, fmt.Errorf("style %s 未定义", name)
		}
		if visiting[name] {
			return Style{}, fmt.Errorf("style 继承存在循环：%s", name)
		}
		visiting[name] = true

		props := map[string]string{}
		if style.Extends != "" {
			parent, err := dfs(style.Extends)
			if err != nil {
				return Style{}, err
			}
			for k, v := range parent.Props {
				props[k] = v
			}
		}
		for k, v := range style.Props {
			props[k] = v
		}
		style.Props = props
		resolved[name] = style
		delete(visiting, name)
		return style, nil
	}

	for name := range styles {
		if _, err := dfs(name); err != nil {
			return nil, err
		}
	}
	return resolved, nil
}

func parseColorResource(cmd *dsl.Command) (string, string) {
	if len(cmd.Args) == 0 {
		return "", ""
	}
	name := cmd.Args[0].Value
	value := ""
	if len(cmd.Args) > 1 {
		value = cmd.Args[len(cmd.Args)-1].Value
	}
	return name, value
}

func resolvePageSize(spec dsl.PageSpec) (float64, float64, error) {
	base, ok := pagePresets[strings.ToUpper(spec.Size)]
	if !ok {
		return 0, 0, fmt.Errorf("暂不支持的纸张尺寸：%s", spec.Size)
	}
	width := base[0]
	height := base[1]
	for _, token := range spec.Params {
		if token.Value == "landscape" {
			width, height = height, width
		}
	}
	return width, height, nil
}

var pagePresets = map[string][2]float64{
	"A4": {210, 297},
	"A5": {148, 210},
}

func resolveMargin(params []*dsl.Lexeme) Margin {
	// default 20mm on all sides
	margin := Margin{Top: 20, Right: 20, Bottom: 20, Left: 20}
	for i := 0; i < len(params); i++ {
		if params[i].Value != "margin" {
			continue
		}
		// margin 后最多取 4 个长度值，遇到非数值（如 portrait）即停止
		vals := []float64{}
		for j := i + 1; j < len(params) && len(vals) < 4; j++ {
			l := ParseLength(params[j].Value)
			if l.Unit == UnitNone && l.Value == 0 && params[j].Value != "0" {
				break
			}
			vals = append(vals, l.ToMM())
		}
		// CSS 简写语义：1 值四边；2 值上下/左右；3 值上/右/下，左 0；4 值上右下左
		switch len(vals) {
		case 1:
			margin = Margin{Top: vals[0], Right: vals[0], Bottom: vals[0], Left: vals[0]}
		case 2:
			margin = Margin{Top: vals[0], Right: vals[1], Bottom: vals[0], Left: vals[1]}
		case 3:
			margin = Margin{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: 0}
		case 4:
			margin = Margin{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}
		}
	}
	return margin
}

// firstPage 返回第一个 page 段落；page-set 模板段落在布局阶段整体跳过。
func firstPage(doc *dsl.Document) *dsl.PageSection {
	for _, section := range doc.Sections {
		if section.Page != nil {
			return section.Page
		}
	}
	return nil
}

func parseArgs(args []*dsl.Lexeme, allowStyle bool) (string, map[string]string) {
	result := map[string]string{}
	if len(args) == 0 {
		return "", result
	}

	cursor := 0
	var style string
	if allowStyle && args[0].Type == "Ident" {
		style = args[0].Value
		cursor = 1
	}
	for cursor < len(args)-1 {
		result[args[cursor].Value] = args[cursor+1].Value
		cursor += 2
	}
	return style, result
}

func mergeStyleAttributes(style string, inline map[string]string, styles map[string]Style) map[string]string {
	out := make(map[string]string)
	if style != "" {
		if s, ok := styles[style]; ok {
			for k, v := range s.Props {
				out[k] = v
			}
		}
	}
	for k, v := range inline {
		out[k] = v
	}
	return out
}

func extractText(block *dsl.Block) string {
	if block == nil {
		return ""
	}
	var builder strings.Builder
	for _, stmt := range block.Statements {
		if stmt.Text != nil {
			builder.WriteString(string(stmt.Text.Value))
		}
	}
	return builder.String()
}

func resolveColor(value string, res ResourceSet) Color {
	if value == "" {
		return Color{R: 30, G: 30, B: 30}
	}
	if c, ok := res.Colors[value]; ok {
		return c
	}
	if strings.HasPrefix(value, "#") {
		if c, err := parseColor(value); err == nil {
			return c
		}
	}
	return Color{R: 30, G: 30, B: 30}
}

func parseColor(value string) (Color, error) {
	value = strings.TrimPrefix(value, "#")
	switch len(value) {
	case 3:
		return Color{
			R: mustHex(strings.Repeat(string(value[0]), 2)),
			G: mustHex(strings.Repeat(string(value[1]), 2)),
			B: mustHex(strings.Repeat(string(value[2]), 2)),
		}, nil
	case 6, 8:
		return Color{
			R: mustHex(value[0:2]),
			G: mustHex(value[2:4]),
			B: mustHex(value[4:6]),
		}, nil
	default:
		return Color{}, fmt.Errorf("颜色值 %s 无法解析", value)
	}
}

func mustHex(s string) int {
	v, _ := strconv.ParseInt(s, 16, 64)
	return int(v)
}

func parseDimension(value string, reference float64) float64 {
	if value == "" {
		return 0
	}
	if strings.HasSuffix(value, "%") {
		if f, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64); err == nil {
			return reference * f / 100
		}
		return 0
	}
	return ParseLength(value).ToMM()
}

func alignOffset(container, width float64, align string) float64 {
	if container <= width {
		return 0
	}
	switch strings.ToLower(align) {
	case "center", "middle":
		return (container - width) / 2
	case "right", "end":
		return container - width
	default:
		return 0
	}
}

func valueToString(val *dsl.Value) string {
	if val == nil {
		return ""
	}
	switch {
	case val.String != nil:
		return string(*val.String)
	case val.Number != nil:
		return *val.Number
	case val.Color != nil:
		return *val.Color
	case val.Expr != nil:
		var builder strings.Builder
		for _, part := range val.Expr.Parts {
			builder.WriteString(part.Value)
		}
		return builder.String()
	default:
		return ""
	}
}

func valueToStringSlice(val *dsl.Value) []string {
	if val == nil {
		return nil
	}
	if val.Array != nil {
		out := make([]string, 0, len(val.Array.Values))
		for _, item := range val.Array.Values {
			if s := valueToString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	if s := valueToString(val); s != "" {
		return []string{s}
	}
	return nil
}
