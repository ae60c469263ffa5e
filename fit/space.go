package fit

// DefaultToleranceRatio 是未显式给定容差时，每轴容差占该轴跨度的比例。
// 容差在根矩形构造时一次性计算，之后被整棵搜索树共享，因此递归总会在
// 相对"原始跨度"的固定绝对精度处终止，而不是随子矩形缩小而无限细分。
const DefaultToleranceRatio = 0.05

// Predicate 判定矩形 [min, max] 是否跨越可行性边界。搜索依赖的单调性
// 约定（沿每条轴从 min 向 max 移动，量测值不减）：
//
//   - 若 max 角已满足目标上界，返回 (false, nil)——整个矩形都可行，
//     内部不含边界，继续细分得不到新的信息；
//   - 否则若 min 角满足上界，返回 (true, &min)——min 即本次提交的可行点；
//   - 否则返回 (false, nil)——矩形整体不可行。
//
// 谓词应是纯量测：可行点通过返回值显式上报，不要依赖外部共享状态。
type Predicate func(min, max Point) (ok bool, feasible *Point)

// Space 表示带可行性谓词与逐轴容差的轴对齐超矩形。
// min/max 为两个角点；tolerance 数组由根矩形与全部子矩形共享引用，
// 根构造之后只读。
type Space struct {
	min, max  Point
	size      []float64
	tolerance []float64
	pred      Predicate
}

// NewSpace 构造根矩形，每轴容差取跨度的 DefaultToleranceRatio。
// 调用方需保证 min 与 max 维度一致且每轴 min ≤ max，内部不做校验。
func NewSpace(min, max Point, pred Predicate) *Space {
	return NewSpaceWithTolerance(min, max, pred, nil)
}

// NewSpaceWithTolerance 构造根矩形并指定逐轴容差。tolerance 中为零
// （或缺省）的轴回填为该轴跨度的 DefaultToleranceRatio；非零轴保持原值。
func NewSpaceWithTolerance(min, max Point, pred Predicate, tolerance []float64) *Space {
	dims := min.Dim()
	size := make([]float64, dims)
	for i := 0; i < dims; i++ {
		size[i] = max.At(i) - min.At(i)
	}
	filled := make([]float64, dims)
	copy(filled, tolerance)
	for i := 0; i < dims; i++ {
		if filled[i] == 0 {
			filled[i] = size[i] * DefaultToleranceRatio
		}
	}
	return &Space{min: min, max: max, size: size, tolerance: filled, pred: pred}
}

// Dim 返回矩形维度。
func (s *Space) Dim() int { return s.min.Dim() }

// Min 返回最小角点。
func (s *Space) Min() Point { return s.min }

// Max 返回最大角点。
func (s *Space) Max() Point { return s.max }

// Split 沿 axis 轴在中点把矩形切分为两半。两个子矩形精确分割父矩形
// （无缝隙、无重叠），并共享父矩形的谓词与容差数组。
func (s *Space) Split(axis int) (*Space, *Space) {
	mid := s.min.At(axis) + (s.max.At(axis)-s.min.At(axis))/2
	return s.child(s.min, s.max.with(axis, mid)), s.child(s.min.with(axis, mid), s.max)
}

// child 构造子矩形：只重算 size，容差数组原样引用父矩形的。
func (s *Space) child(min, max Point) *Space {
	size := make([]float64, len(s.size))
	for i := range size {
		size[i] = max.At(i) - min.At(i)
	}
	return &Space{min: min, max: max, size: size, tolerance: s.tolerance, pred: s.pred}
}

// isValid 先按容差淘汰过小的矩形（不触发谓词，这是递归深度的硬界），
// 否则转交谓词判定。
func (s *Space) isValid() (bool, *Point) {
	for i, sz := range s.size {
		if sz < s.tolerance[i] {
			return false, nil
		}
	}
	return s.pred(s.min, s.max)
}
