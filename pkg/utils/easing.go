package utils

// Easing Functions (缓动函数)
//
// 缓动函数用于控制过渡的速度曲线。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值，超出 [0, 1] 的进度被截断
func EaseLinear(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
