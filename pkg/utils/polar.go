package utils

import "math"

// 轮盘使用的极坐标约定：
//   - 角度 0 指向正上方（12 点钟方向），顺时针增大
//   - 屏幕坐标 Y 轴向下（Ebiten 默认）
//   - 所有角度归一化到 [0, 2π)

// TwoPi 一整圈的弧度
const TwoPi = 2 * math.Pi

// WrapAngle 将任意角度归一化到 [0, 2π)
func WrapAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// math.Mod 对极小的负数可能得到 2π 本身
	if a >= TwoPi {
		a = 0
	}
	return a
}

// AngularDistance 返回两个角度之间最短的环绕距离，结果 ∈ [0, π]
func AngularDistance(a, b float64) float64 {
	d := math.Abs(WrapAngle(a) - WrapAngle(b))
	if d > math.Pi {
		d = TwoPi - d
	}
	return d
}

// ScreenToPolar 将屏幕坐标转换为相对于 (cx, cy) 的极坐标
//
// 参数：
//   - cx, cy: 轮盘中心（屏幕坐标）
//   - x, y: 指针位置（屏幕坐标）
//
// 返回：
//   - angle: 12 点钟方向为 0、顺时针增大的角度
//   - distance: 指针到中心的距离（像素）
func ScreenToPolar(cx, cy, x, y float64) (angle, distance float64) {
	dx := x - cx
	dy := y - cy
	distance = math.Hypot(dx, dy)
	if distance == 0 {
		return 0, 0
	}
	// atan2(dx, -dy)：向上为 0，向右为 π/2
	return WrapAngle(math.Atan2(dx, -dy)), distance
}

// PolarToScreen 是 ScreenToPolar 的逆运算
func PolarToScreen(cx, cy, angle, radius float64) (x, y float64) {
	return cx + radius*math.Cos(angle-math.Pi/2), cy + radius*math.Sin(angle-math.Pi/2)
}
