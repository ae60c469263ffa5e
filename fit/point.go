package fit

import (
	"strconv"
	"strings"
)

// Point 表示参数空间中的一个坐标向量，维度在构造时固定，之后不可变。
type Point struct {
	values []float64
}

// NewPoint 复制给定坐标构造 Point。
func NewPoint(values ...float64) Point {
	vs := make([]float64, len(values))
	copy(vs, values)
	return Point{values: vs}
}

// Dim 返回坐标维度。
func (p Point) Dim() int { return len(p.values) }

// At 返回第 axis 个坐标。
func (p Point) At(axis int) float64 { return p.values[axis] }

// Values 返回坐标的副本，调用方无法借助返回值修改 Point。
func (p Point) Values() []float64 {
	out := make([]float64, len(p.values))
	copy(out, p.values)
	return out
}

// with 返回 axis 轴坐标替换为 v 的新 Point，原 Point 不受影响。
func (p Point) with(axis int, v float64) Point {
	vs := p.Values()
	vs[axis] = v
	return Point{values: vs}
}

// String 以确定性格式渲染坐标，仅用于诊断输出。
func (p Point) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range p.values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(')')
	return b.String()
}
