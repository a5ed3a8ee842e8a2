package utils

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 轮盘的悬停放大、淡入淡出都基于这里的函数，全部是纯函数，不读取时钟。
//
// 参考：https://easings.net/

// SmoothStep 平滑阶梯（Hermite 插值）
// 特点：两端速度为 0，用于悬停放大效果
// 公式：f(t) = t²(3 - 2t)，t 先被限制到 [0, 1]
func SmoothStep(t float64) float64 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将值限制在 [0, 1] 范围内
// NaN 视为 0，保证逐帧计算始终有定义
func Clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v > 0 {
		return v
	}
	return 0
}

// FadeProgress 计算从 start 开始的淡入进度
//
// 参数：
//   - elapsedMs: 距离动画起点经过的毫秒数（可以为负，表示尚未开始）
//   - speed: 每秒完成的过渡次数，6 表示约 167ms 完成一次完整过渡
//
// 返回：
//   - [0, 1] 区间内的进度值
func FadeProgress(elapsedMs, speed float64) float64 {
	return Clamp01(elapsedMs / 1000 * speed)
}
