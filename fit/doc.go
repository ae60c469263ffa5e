// Package fit 实现通用的 N 维边界搜索：给定一个轴对齐的参数矩形与一个
// 沿每条轴单调的"满足 / 不满足"谓词，通过递归对半切分逼近可行性边界，
// 并返回搜索路径上最后提交的可行点。
//
// 搜索不追求全局最优（离原点最近的可行点），只保证收敛到一个贴近边界的
// 可行点；谓词不单调时行为未定义。每层递归只沿一条路径下降，谓词求值
// 次数为 O(维度 × log(跨度/容差))，不随维度指数增长。
package fit
