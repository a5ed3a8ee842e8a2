package systems

import (
	"image/color"

	"github.com/decker502/radial/pkg/wheel"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// debugCharWidth ebitenutil 调试字体的字符宽度
const debugCharWidth = 6

// ImageSource 把贴图转换为可绘制的 GPU 图像
type ImageSource interface {
	EbitenImage(tex *wheel.Texture, premultiplied bool) *ebiten.Image
}

// WheelRenderSystem 轮盘渲染系统
//
// 按渲染列表绘制元素：先画阴影，再画着色后的图标。
// 悬停元素最后绘制，放大时压在相邻元素之上。
type WheelRenderSystem struct {
	wheel  *wheel.Wheel
	images ImageSource

	// ShowLabel 在轮盘中心显示悬停元素的名称
	ShowLabel bool
	// LabelFont 标签字体，为 nil 时使用调试字体
	LabelFont *text.GoTextFace
}

// NewWheelRenderSystem 创建轮盘渲染系统
func NewWheelRenderSystem(w *wheel.Wheel, images ImageSource) *WheelRenderSystem {
	return &WheelRenderSystem{wheel: w, images: images, ShowLabel: true}
}

// Draw 绘制一帧
func (s *WheelRenderSystem) Draw(screen *ebiten.Image, renderables []wheel.Renderable) {
	if len(renderables) == 0 {
		return
	}

	cx, cy := s.wheel.Center()
	settings := s.wheel.Settings()
	guide := color.NRGBA{R: 255, G: 255, B: 255, A: uint8(40 * renderables[0].Opacity)}
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(settings.DeadZone), 1, guide, true)

	for _, r := range DrawOrder(renderables) {
		e, ok := s.wheel.Element(r.ID)
		if !ok {
			continue
		}
		img := s.images.EbitenImage(e.Texture(), r.PremultiplyAlpha)
		if img == nil {
			continue
		}
		w, h := img.Bounds().Dx(), img.Bounds().Dy()

		if r.Shadow.Strength > 0 {
			op := &ebiten.DrawImageOptions{}
			op.GeoM = ShadowGeoM(r, w, h)
			op.ColorScale = ShadowColorScale(r)
			op.Filter = ebiten.FilterLinear
			screen.DrawImage(img, op)
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM = ElementGeoM(r, w, h)
		op.ColorScale = ElementColorScale(r)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}

	if s.ShowLabel {
		if e, ok := s.wheel.Hovered(); ok {
			label := e.DisplayName()
			if label == "" {
				label = e.Nickname()
			}
			s.drawLabel(screen, label, cx, cy)
		}
	}
}

// drawLabel 以 (cx, cy) 为中心绘制带阴影的标签
func (s *WheelRenderSystem) drawLabel(screen *ebiten.Image, label string, cx, cy float64) {
	if s.LabelFont == nil {
		ebitenutil.DebugPrintAt(screen, label, int(cx)-len(label)*debugCharWidth/2, int(cy)-8)
		return
	}

	shadowOp := &text.DrawOptions{}
	shadowOp.PrimaryAlign = text.AlignCenter
	shadowOp.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(cx+1, cy+1)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 180})
	text.Draw(screen, label, s.LabelFont, shadowOp)

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(cx, cy)
	text.Draw(screen, label, s.LabelFont, op)
}

// DrawOrder 返回绘制顺序：槽位顺序，悬停元素移到最后
func DrawOrder(renderables []wheel.Renderable) []wheel.Renderable {
	out := make([]wheel.Renderable, 0, len(renderables))
	var hovered []wheel.Renderable
	for _, r := range renderables {
		if r.Hovered {
			hovered = append(hovered, r)
			continue
		}
		out = append(out, r)
	}
	return append(out, hovered...)
}

// ElementGeoM 把 w×h 的贴图缩放到元素尺寸并居中于元素坐标
func ElementGeoM(r wheel.Renderable, w, h int) ebiten.GeoM {
	var g ebiten.GeoM
	if w <= 0 || h <= 0 {
		return g
	}
	dw, dh := r.Diameter, r.Height()
	g.Scale(dw/float64(w), dh/float64(h))
	g.Translate(r.X-dw/2, r.Y-dh/2)
	return g
}

// ShadowGeoM 阴影与元素同尺寸，按阴影偏移（相对直径）向右下错开
func ShadowGeoM(r wheel.Renderable, w, h int) ebiten.GeoM {
	g := ElementGeoM(r, w, h)
	g.Translate(-r.Shadow.OffsetX*r.Diameter, -r.Shadow.OffsetY*r.Diameter)
	return g
}

// ElementColorScale 着色与不透明度
// ColorScale 作用于预乘颜色，所以 RGB 乘色后再整体乘 alpha
func ElementColorScale(r wheel.Renderable) ebiten.ColorScale {
	var c ebiten.ColorScale
	c.Scale(float32(r.Tint.R), float32(r.Tint.G), float32(r.Tint.B), 1)
	c.ScaleAlpha(float32(r.Tint.A * r.Opacity))
	return c
}

// ShadowColorScale 纯黑剪影，alpha 为阴影强度乘元素不透明度
func ShadowColorScale(r wheel.Renderable) ebiten.ColorScale {
	var c ebiten.ColorScale
	c.Scale(0, 0, 0, 1)
	c.ScaleAlpha(float32(r.Shadow.Strength * r.Opacity))
	return c
}
