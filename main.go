package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ByLCY/copyfit/dsl"
	"github.com/ByLCY/copyfit/layout"
	"github.com/ByLCY/copyfit/renderer"
	canvasrenderer "github.com/ByLCY/copyfit/renderer/canvas"
)

func main() {
	input := flag.String("in", "examples/demo.copyfit", "DSL 文件路径")
	output := flag.String("out", "output/demo.pdf", "PDF 输出路径")
	debug := flag.String("debug", "", "布局调试 JSON 输出路径")
	trace := flag.Bool("trace", false, "在调试 JSON 的适配报告中记录每次量测")
	dataJSON := flag.String("data", "", "绑定到 DSL 的 JSON 数据")
	flag.Parse()

	var inputData any
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &inputData); err != nil {
			log.Fatalf("解析 data JSON 失败: %v", err)
		}
	}

	var r renderer.Renderer = canvasrenderer.NewRenderer(filepath.Dir(*input))
	if err := run(*input, *output, *debug, *trace, inputData, r); err != nil {
		log.Fatalf("生成 PDF 失败: %v", err)
	}
	fmt.Printf("已生成 PDF：%s\n", *output)
}

// run 串联解析、布局适配与渲染。
func run(inputPath, outputPath, debugPath string, trace bool, data any, r renderer.Renderer) error {
	if r == nil {
		return fmt.Errorf("renderer 不能为空")
	}
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("无法打开 DSL 文件 %s: %w", inputPath, err)
	}
	defer file.Close()

	doc, err := dsl.Parse(file)
	if err != nil {
		return fmt.Errorf("解析 DSL 失败: %w", err)
	}

	ts, ok := r.(layout.Typesetter)
	if !ok {
		return fmt.Errorf("renderer 未实现排版接口")
	}

	result, err := layout.Build(doc, data, layout.BuildOptions{
		Typesetter: ts,
		Debug:      layout.DebugOptions{FitTrace: trace},
	})
	if err != nil {
		return fmt.Errorf("布局计算失败: %w", err)
	}

	reportFitOutcomes(result)

	if debugPath != "" {
		if err := writeDebug(result, debugPath); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}

	pdfBytes, err := r.Render(result)
	if err != nil {
		return fmt.Errorf("渲染 PDF 失败: %w", err)
	}
	if err := os.WriteFile(outputPath, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("写入 PDF 文件失败: %w", err)
	}

	return nil
}

// reportFitOutcomes 在标准日志中逐条汇报 story 的适配结果。
func reportFitOutcomes(result *layout.Result) {
	for pi, page := range result.Pages {
		for _, tb := range page.Texts {
			if tb.Fit == nil {
				continue
			}
			fit := tb.Fit
			switch fit.Outcome {
			case layout.OutcomeFits:
				log.Printf("第 %d 页 story 自然排版即满足 %d 行预算", pi+1, fit.MaxLines)
			case layout.OutcomeCompressed:
				log.Printf("第 %d 页 story 压缩后从 %d 行收入 %d 行（tracking=%.3fmm scale=%.3f word-spacing=%.3f，量测 %d 次）",
					pi+1, fit.NaturalLines, fit.FinalLines,
					fit.Applied.Tracking, fit.Applied.Scale, fit.Applied.WordSpacing, fit.Evaluations)
			case layout.OutcomeOverset:
				log.Printf("第 %d 页 story 无法收入 %d 行预算（自然排版 %d 行），已保留自然排版",
					pi+1, fit.MaxLines, fit.NaturalLines)
			}
		}
	}
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
