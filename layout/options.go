package layout

// BuildOptions 配置布局阶段所需的依赖，例如排版后端。
type BuildOptions struct {
	Typesetter Typesetter
	Debug      DebugOptions
}

// DebugOptions 控制调试相关输出。
type DebugOptions struct {
	FitTrace bool // 在 FitReport 中记录每次谓词求值的参数与行数
}

// Typesetter 负责在给定宽度与压缩参数下将文本拆成可绘制的行。
// 所有长度入参与返回值均为毫米（mm）。
type Typesetter interface {
	LayoutLines(content string, width float64, font FontResource, fontSize, lineHeight float64, wrap string, adj Adjustments) ([]TextLine, error)
}
