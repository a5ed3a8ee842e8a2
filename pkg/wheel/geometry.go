package wheel

import (
	"math"

	"github.com/decker502/radial/pkg/utils"
)

// Geometry 轮盘布局参数（像素）
type Geometry struct {
	CenterX, CenterY float64
	Radius           float64 // 元素中心所在圆的半径
	PackingFactor    float64 // 相邻元素之间留白的比例，1 表示刚好相切
}

// Slot 单个槽位的布局结果
type Slot struct {
	Angle    float64
	Diameter float64
	X, Y     float64
}

// 悬停时最多放大 10%
const hoverGrowth = 1.1

// smallCountScale 元素数量 1~4 时的固定缩放表
// 数量少时公式算出的直径过大，用查表压回合适的尺寸
var smallCountScale = [...]float64{1: 0.5, 2: 0.7, 3: 0.9, 4: 0.95}

// SlotAngle 第 index 个槽位的角度
// 只有一个元素时角度为 0（位于中心）
func SlotAngle(index, total int) float64 {
	if total <= 1 {
		return 0
	}
	return utils.TwoPi * float64(index) / float64(total)
}

// countScale 按元素数量返回直径缩放
func countScale(total int) float64 {
	if total >= 1 && total < len(smallCountScale) {
		return smallCountScale[total]
	}
	return 1
}

// baseDiameter 未放大时的元素直径
//
// 数量 ≥ 2 时直径取相邻槽位间弦长 sin(π/N)·2·R 再乘以 PackingFactor，
// 保证任意数量下元素互不重叠。
func baseDiameter(total int, g Geometry) float64 {
	if total <= 1 {
		return 2 * g.Radius * countScale(1)
	}
	return math.Sin(math.Pi/float64(total)) * 2 * g.Radius * g.PackingFactor * countScale(total)
}

// ComputeSlot 计算第 index 个可见元素的角度、直径和位置
//
// 参数：
//   - index: 在可见元素中的序号（0 在 12 点钟方向，顺时针递增）
//   - total: 可见元素总数
//   - hoverFade: 悬停动画进度 [0, 1]，经 SmoothStep 后驱动最多 10% 的放大
//   - g: 布局参数
//
// total == 1 时元素位于轮盘中心，不做悬停放大。
// total <= 0 时返回零值。
func ComputeSlot(index, total int, hoverFade float64, g Geometry) Slot {
	if total <= 0 {
		return Slot{}
	}

	angle := SlotAngle(index, total)
	diameter := baseDiameter(total, g)

	if total == 1 {
		return Slot{Angle: angle, Diameter: diameter, X: g.CenterX, Y: g.CenterY}
	}

	diameter *= utils.Lerp(1, hoverGrowth, utils.SmoothStep(hoverFade))
	x, y := utils.PolarToScreen(g.CenterX, g.CenterY, angle, g.Radius)
	return Slot{Angle: angle, Diameter: diameter, X: x, Y: y}
}
