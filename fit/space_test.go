package fit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func neverValid(min, max Point) (bool, *Point) { return false, nil }

// TestDefaultTolerance 验证未指定容差时回填为跨度的 5%，
// 且显式给定的轴保持原值。
func TestDefaultTolerance(t *testing.T) {
	s := NewSpace(NewPoint(0, 0), NewPoint(10, 40), neverValid)
	require.Equal(t, []float64{0.5, 2}, s.tolerance)

	s2 := NewSpaceWithTolerance(NewPoint(0, 0), NewPoint(10, 40), neverValid, []float64{0, 3})
	require.Equal(t, []float64{0.5, 3}, s2.tolerance)
}

// TestSplitPartitionExact 验证切分精确分割父矩形：
// 左子 max 与右子 min 在切分轴上同为中点，其余轴边界与父矩形完全一致。
func TestSplitPartitionExact(t *testing.T) {
	s := NewSpace(NewPoint(-2, 0, 4), NewPoint(2, 8, 5), neverValid)
	left, right := s.Split(1)

	require.Equal(t, 4.0, left.max.At(1))
	require.Equal(t, 4.0, right.min.At(1))

	for _, axis := range []int{0, 2} {
		require.Equal(t, s.min.At(axis), left.min.At(axis))
		require.Equal(t, s.max.At(axis), left.max.At(axis))
		require.Equal(t, s.min.At(axis), right.min.At(axis))
		require.Equal(t, s.max.At(axis), right.max.At(axis))
	}
	require.Equal(t, s.min.Values(), left.min.Values())
	require.Equal(t, s.max.Values(), right.max.Values())
}

// TestSharedToleranceReference 验证容差数组在整棵搜索树上共享引用：
// 改写根矩形的容差能在子矩形上观察到，子矩形不会重算 5% 阈值。
func TestSharedToleranceReference(t *testing.T) {
	s := NewSpace(NewPoint(0, 0), NewPoint(10, 10), neverValid)
	left, right := s.Split(0)
	ll, _ := left.Split(1)

	require.Same(t, &s.tolerance[0], &left.tolerance[0])
	require.Same(t, &s.tolerance[0], &right.tolerance[0])
	require.Same(t, &s.tolerance[0], &ll.tolerance[0])

	s.tolerance[1] = 7
	require.Equal(t, 7.0, ll.tolerance[1])
}

// TestIsValidSkipsPredicateWhenTooSmall 验证矩形任一轴低于容差时
// 直接判无效，谓词完全不会被调用。
func TestIsValidSkipsPredicateWhenTooSmall(t *testing.T) {
	calls := 0
	pred := func(min, max Point) (bool, *Point) {
		calls++
		return true, nil
	}
	s := NewSpaceWithTolerance(NewPoint(0), NewPoint(1), pred, []float64{2})
	ok, p := s.isValid()
	require.False(t, ok)
	require.Nil(t, p)
	require.Zero(t, calls)
}
