package layout

// 该文件定义布局与适配结果的数据模型，供布局计算、渲染与调试 JSON 共用。

// Result 保存布局后的页面、资源与文档信息。
type Result struct {
	Pages     []Page       `json:"pages"`
	Resources ResourceSet  `json:"resources"`
	Meta      DocumentMeta `json:"meta"`
}

// ResourceSet 记录解析出的字体、颜色、样式与压缩档位定义。
type ResourceSet struct {
	Fonts    map[string]FontResource `json:"fonts"`
	Colors   map[string]Color        `json:"colors"`
	Styles   map[string]Style        `json:"styles"`
	Profiles map[string]FitProfile   `json:"fitProfiles"`
}

// FontResource 描述字体资源，src 可以是文件路径或内置 embed 路径。
type FontResource struct {
	Name     string `json:"name"`
	Src      string `json:"src"`
	Style    string `json:"style"`
	Family   string `json:"family"`
	Fallback string `json:"fallback"`
}

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Style 用于描述可继承的文本样式。
type Style struct {
	Name    string            `json:"name"`
	Extends string            `json:"extends,omitempty"`
	Props   map[string]string `json:"props"`
}

// DocumentMeta 保存 PDF 元信息。
type DocumentMeta struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Subject  string   `json:"subject"`
	Creator  string   `json:"creator"`
	Keywords []string `json:"keywords"`
}

// Page 记录页面尺寸、边距与排好坐标的文本块（单位均为 mm）。
type Page struct {
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Margin Margin    `json:"margin"`
	Texts  []TextBox `json:"texts"`
}

// Margin 以毫米为单位。
type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// TextBox 表示一个已经排好坐标的文本块。story 生成的文本块带有 Fit 报告，
// 普通 text 的 Fit 为空。
type TextBox struct {
	Content    string     `json:"content"`
	X          float64    `json:"x"`
	Y          float64    `json:"y"`
	Width      float64    `json:"width"`
	LineHeight float64    `json:"lineHeight"`
	Font       string     `json:"font"`
	FontSize   float64    `json:"fontSize"`
	Color      Color      `json:"color"`
	Lines      []TextLine `json:"lines"`
	Height     float64    `json:"height"`
	Align      string     `json:"align,omitempty"`
	Wrap       string     `json:"wrap,omitempty"`
	Fit        *FitReport `json:"fit,omitempty"`
}

// TextLine 表示排版后的一行文本内容及其宽高。
type TextLine struct {
	Content   string  `json:"content"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	GapBefore float64 `json:"gapBefore,omitempty"`
}

// Adjustments 描述作用于一段文本的三个压缩参数。度量约定：
// 词 token 的进距 = 自然宽度 × Scale + Tracking × 字符数；
// 空白 run 的进距 = 自然宽度 × Scale × WordSpacing（tracking 不作用于空白）。
// 三个参数各自向压缩方向移动时行数单调不增，这是边界搜索的前提。
type Adjustments struct {
	Tracking    float64 `json:"tracking"`    // 每字符附加进距（mm），负值收紧
	Scale       float64 `json:"scale"`       // 字形进距的水平缩放，1 为自然值
	WordSpacing float64 `json:"wordSpacing"` // 空白进距的缩放，1 为自然值
}

// IdentityAdjustments 返回不施加任何压缩的参数。
func IdentityAdjustments() Adjustments {
	return Adjustments{Tracking: 0, Scale: 1, WordSpacing: 1}
}

// IsIdentity 报告是否等价于不压缩。
func (a Adjustments) IsIdentity() bool {
	return a.Tracking == 0 && a.Scale == 1 && a.WordSpacing == 1
}

// FitProfile 描述一个 story 允许的最大压缩量，即搜索根矩形的压缩角。
// 等于自然值（Tracking=0 / Scale=1 / WordSpacing=1）的轴不参与搜索。
type FitProfile struct {
	Name        string  `json:"name"`
	Tracking    float64 `json:"tracking"`    // 最紧的 tracking（mm，≤0）
	Scale       float64 `json:"scale"`       // 最小水平缩放（0<…≤1）
	WordSpacing float64 `json:"wordSpacing"` // 最小空白缩放（0<…≤1）
}

// FitOutcome 是 story 适配的对外结果词汇。
type FitOutcome string

const (
	// OutcomeFits：自然排版即满足行数预算，未施加任何压缩。
	OutcomeFits FitOutcome = "fits"
	// OutcomeCompressed：边界搜索找到了满足预算的压缩参数。
	OutcomeCompressed FitOutcome = "compressed"
	// OutcomeOverset：最大允许压缩仍超出预算（cannot fit），保留自然排版。
	OutcomeOverset FitOutcome = "overset"
)

// FitReport 记录一次 story 适配的输入、结果与代价。
type FitReport struct {
	Outcome      FitOutcome      `json:"outcome"`
	MaxLines     int             `json:"maxLines"`
	NaturalLines int             `json:"naturalLines"`
	FinalLines   int             `json:"finalLines"`
	Applied      Adjustments     `json:"applied"`
	Evaluations  int             `json:"evaluations"` // 搜索期间的重排版次数
	Profile      string          `json:"profile,omitempty"`
	Trace        []FitEvaluation `json:"trace,omitempty"` // 仅在 Debug.FitTrace 开启时记录
}

// FitEvaluation 记录一次谓词求值：测试的压缩参数与得到的行数。
type FitEvaluation struct {
	Adjustments Adjustments `json:"adjustments"`
	Lines       int         `json:"lines"`
	Fits        bool        `json:"fits"`
}
