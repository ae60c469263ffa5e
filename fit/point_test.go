package fit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPointValuesIsolated 验证构造与读取均为复制语义：
// 调用方改写入参或返回值都不会影响 Point 本身。
func TestPointValuesIsolated(t *testing.T) {
	src := []float64{1, 2, 3}
	p := NewPoint(src...)
	src[0] = 99

	vs := p.Values()
	require.Equal(t, []float64{1, 2, 3}, vs)

	vs[1] = -1
	require.Equal(t, []float64{1, 2, 3}, p.Values())
	require.Equal(t, 3, p.Dim())
	require.Equal(t, 2.0, p.At(1))
}

// TestPointWithReplacesSingleAxis 验证 with 只替换目标轴且不改原点。
func TestPointWithReplacesSingleAxis(t *testing.T) {
	p := NewPoint(0, 10)
	q := p.with(1, 5)
	require.Equal(t, []float64{0, 10}, p.Values())
	require.Equal(t, []float64{0, 5}, q.Values())
}

// TestPointString 验证诊断输出是确定性的。
func TestPointString(t *testing.T) {
	require.Equal(t, "(0, 2.5, -1)", NewPoint(0, 2.5, -1).String())
	require.Equal(t, "()", NewPoint().String())
}
