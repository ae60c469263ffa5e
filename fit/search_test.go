package fit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// boundPredicate 构造一个符合谓词约定的单调谓词：
// measure 沿每条轴不减，feasible(p) ⇔ measure(p) ≤ bound。
// 返回谓词本身与一个求值计数器。
func boundPredicate(measure func(Point) float64, bound float64) (Predicate, *int) {
	calls := new(int)
	pred := func(min, max Point) (bool, *Point) {
		*calls++
		if measure(max) <= bound {
			return false, nil // max 角已满足目标：矩形内不含边界
		}
		if measure(min) <= bound {
			p := min
			return true, &p
		}
		return false, nil
	}
	return pred, calls
}

func sum(p Point) float64 {
	total := 0.0
	for _, v := range p.Values() {
		total += v
	}
	return total
}

// TestRun1DConvergesNearBoundary 对应一维示例：
// root=[0,10]，容差 0.5，feasible(x)=x≤4。期望收敛到 (3.5, 4.5] 区间内
// 最后一个可行的 min 角，而不是恰好 4（二分容差，非最优性）。
func TestRun1DConvergesNearBoundary(t *testing.T) {
	pred, _ := boundPredicate(func(p Point) float64 { return p.At(0) }, 4)
	space := NewSpaceWithTolerance(NewPoint(0), NewPoint(10), pred, []float64{0.5})

	best, found := NewSearch().Run(space)
	require.True(t, found)
	x := best.At(0)
	require.LessOrEqual(t, x, 4.0, "提交点必须可行")
	require.Greater(t, x, 3.5, "提交点应贴近边界")
}

// TestRunAlreadyFitsAtMax 验证 root 的 max 角本身已满足目标时：
// 谓词首次调用即返回否，不提交任何点——调用方应把这种情形当作
// "无需调整即满足"，与"无法满足"区分开。
func TestRunAlreadyFitsAtMax(t *testing.T) {
	pred, calls := boundPredicate(func(p Point) float64 { return p.At(0) }, 100)
	space := NewSpaceWithTolerance(NewPoint(0), NewPoint(10), pred, []float64{0.5})

	_, found := NewSearch().Run(space)
	require.False(t, found)
	require.Equal(t, 1, *calls)
}

// TestRunInfeasibleRegion 验证连 min 角都不可行时不提交任何点。
func TestRunInfeasibleRegion(t *testing.T) {
	pred, calls := boundPredicate(func(p Point) float64 { return p.At(0) }, -1)
	space := NewSpaceWithTolerance(NewPoint(0), NewPoint(10), pred, []float64{0.5})

	_, found := NewSearch().Run(space)
	require.False(t, found)
	require.Equal(t, 1, *calls)
}

// TestRunCommitsRootMinWithoutRefinement 对应三维示例：
// 谓词首次调用提交 root 的 min，之后一概无效——顶层调用应直接
// 返回 root 的 min，后续每轴两次子矩形尝试全部被剪枝。
func TestRunCommitsRootMinWithoutRefinement(t *testing.T) {
	calls := 0
	pred := func(min, max Point) (bool, *Point) {
		calls++
		if calls == 1 {
			p := min
			return true, &p
		}
		return false, nil
	}
	min := NewPoint(-0.2, 0.97, 0.8)
	space := NewSpace(min, NewPoint(0, 1, 1), pred)

	best, found := NewSearch().Run(space)
	require.True(t, found)
	require.Equal(t, min.Values(), best.Values())
	// root 一次 + 三条轴各两半
	require.Equal(t, 7, calls)
}

// TestRunTerminationBound 验证默认容差（5% 跨度）下，单轴最多
// 约 log2(20)≈5 次对半后即被容差剪枝，谓词求值次数是小常数。
func TestRunTerminationBound(t *testing.T) {
	pred, calls := boundPredicate(func(p Point) float64 { return p.At(0) }, 0)
	space := NewSpace(NewPoint(0), NewPoint(10), pred)

	best, found := NewSearch().Run(space)
	require.True(t, found)
	require.Equal(t, 0.0, best.At(0))
	require.LessOrEqual(t, *calls, 12)
}

// TestRun3DMonotone 验证三维单调谓词下搜索收敛到可行点，
// 且确实在 root 之下细分过（提交点不再是 root 的 min）。
func TestRun3DMonotone(t *testing.T) {
	pred, _ := boundPredicate(sum, 5)
	space := NewSpace(NewPoint(0, 0, 0), NewPoint(4, 4, 4), pred)

	best, found := NewSearch().Run(space)
	require.True(t, found)
	require.LessOrEqual(t, sum(best), 5.0)
	require.Greater(t, sum(best), 0.0)
}

// TestSearchSessionsIndependent 验证会话之间互不影响：
// 轮换计数属于单个 Search，两次独立搜索得到完全相同的结果。
func TestSearchSessionsIndependent(t *testing.T) {
	run := func() Point {
		pred, _ := boundPredicate(sum, 5)
		space := NewSpace(NewPoint(0, 0, 0), NewPoint(4, 4, 4), pred)
		best, found := NewSearch().Run(space)
		require.True(t, found)
		return best
	}
	first := run()
	second := run()
	require.Equal(t, first.Values(), second.Values())
}
