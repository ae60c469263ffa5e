package fit

// Search 是一次边界搜索会话。rotation 记录会话内累计的切分尝试次数，
// 用于轮换每层递归首先尝试的轴；它只影响轴间的公平性，不影响收敛。
// 计数属于单个会话而非进程，因此重复搜索彼此独立、结果可复现。
type Search struct {
	rotation int
}

// NewSearch 构造一个独立的搜索会话。
func NewSearch() *Search { return &Search{} }

// Run 在 space 上执行递归边界搜索，返回下降路径上最后提交的可行点。
// 注意：若根矩形的 max 角本身已满足目标，谓词不会提交任何点
// （found=false）——"无需调整即满足"应由调用方在构造根矩形之前识别。
func (s *Search) Run(space *Space) (best Point, found bool) {
	_, p := s.descend(space)
	if p == nil {
		return Point{}, false
	}
	return *p, true
}

// descend 对应一层递归：
//
//  1. 矩形无效（过小或谓词为否）则直接剪枝；
//  2. 否则按轮换顺序逐轴对半切分，任一半有效即终止本层——不再尝试
//     另一半与剩余的轴，使搜索始终沿单一路径下降；
//  3. 更深层提交的可行点覆盖本层提交的点（它更贴近边界）。
//
// 轴序取 (rotation+i) mod 维度，rotation 每次切分尝试递增一次，
// 使轴的优先顺序在整个下降过程中持续漂移。
func (s *Search) descend(space *Space) (bool, *Point) {
	ok, best := space.isValid()
	if !ok {
		return false, nil
	}
	dims := space.Dim()
	for i := 0; i < dims; i++ {
		axis := (s.rotation + i) % dims
		s.rotation++
		left, right := space.Split(axis)
		if lok, deeper := s.descend(left); lok {
			if deeper != nil {
				best = deeper
			}
			break
		}
		if rok, deeper := s.descend(right); rok {
			if deeper != nil {
				best = deeper
			}
			break
		}
	}
	return true, best
}
