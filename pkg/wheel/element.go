package wheel

import (
	"math"

	"github.com/decker502/radial/pkg/utils"
)

// 阴影偏移系数，按贴图宽度缩放（1024 像素宽的贴图偏移 2%）
const shadowOffsetMultiplier = -0.02 / 1024

// ElementSpec 创建元素所需的参数
type ElementSpec struct {
	ID          ElementID
	Nickname    string
	DisplayName string
	Category    string

	// Texture 为 nil 时通过 AssetProvider 按 ID 加载
	Texture *Texture

	Color            Color
	ColorizeAmount   float64
	ShadowStrength   float64
	PremultiplyAlpha bool

	// Action 提交选择时调用，每次提交最多调用一次
	Action func()
}

// Element 轮盘上的单个可选元素
//
// 身份信息创建后不可变；可见性和优先级由用户配置修改；
// 悬停/退出时间戳只在 Wheel.Update 中修改。
type Element struct {
	id          ElementID
	nickname    string
	displayName string
	category    string

	visible         bool
	sortingPriority int
	insertion       int // 加入 Wheel 的顺序，用于优先级相同时的稳定排序

	hasKeybind bool
	action     func()

	texture     *Texture
	aspectRatio float64
	texWidth    float64

	color            Color
	colorizeAmount   float64
	shadowStrength   float64
	premultiplyAlpha bool

	currentHoverTime MsTime
	currentExitTime  MsTime
}

// NewElement 创建轮盘元素
//
// 如果 spec.Texture 为 nil，则通过 assets 按 ID 加载贴图。
// 无法得到有效贴图时返回 *AssetLoadError，绝不使用空贴图继续构造。
//
// 新元素默认可见，优先级等于 ID。
func NewElement(spec ElementSpec, assets AssetProvider) (*Element, error) {
	tex := spec.Texture
	if tex == nil {
		if assets == nil {
			return nil, &AssetLoadError{ID: spec.ID, Nickname: spec.Nickname}
		}
		loaded, err := assets.LoadTexture(spec.ID)
		if err != nil {
			return nil, &AssetLoadError{ID: spec.ID, Nickname: spec.Nickname, Err: err}
		}
		tex = loaded
	}
	if !tex.valid() {
		return nil, &AssetLoadError{ID: spec.ID, Nickname: spec.Nickname}
	}

	color := spec.Color
	if color == (Color{}) {
		color = White
	}

	return &Element{
		id:               spec.ID,
		nickname:         spec.Nickname,
		displayName:      spec.DisplayName,
		category:         spec.Category,
		visible:          true,
		sortingPriority:  int(spec.ID),
		action:           spec.Action,
		texture:          tex,
		aspectRatio:      float64(tex.Height) / float64(tex.Width),
		texWidth:         float64(tex.Width),
		color:            color,
		colorizeAmount:   spec.ColorizeAmount,
		shadowStrength:   spec.ShadowStrength,
		premultiplyAlpha: spec.PremultiplyAlpha,
	}, nil
}

func (e *Element) ID() ElementID { return e.id }
func (e *Element) Nickname() string { return e.nickname }
func (e *Element) DisplayName() string { return e.displayName }
func (e *Element) Category() string { return e.category }
func (e *Element) Visible() bool { return e.visible }
func (e *Element) SortingPriority() int { return e.sortingPriority }
func (e *Element) HasKeybind() bool { return e.hasKeybind }
func (e *Element) Texture() *Texture { return e.texture }
func (e *Element) AspectRatio() float64 { return e.aspectRatio }
func (e *Element) ColorizeAmount() float64 { return e.colorizeAmount }
func (e *Element) ShadowStrength() float64 { return e.shadowStrength }

// CurrentHoverTime 最近一次进入悬停的时间
func (e *Element) CurrentHoverTime() MsTime { return e.currentHoverTime }

// CurrentExitTime 最近一次离开悬停的时间
func (e *Element) CurrentExitTime() MsTime { return e.currentExitTime }

// IsActive 元素是否可被选中
// 需要绑定快捷键且有可调用的动作；不活跃的可见元素仍占用槽位，但会被淡化且不可悬停
func (e *Element) IsActive() bool {
	return e.hasKeybind && e.action != nil
}

// settings 当前需要持久化的设置
func (e *Element) settings() ElementSettings {
	return ElementSettings{
		Visible:        e.visible,
		Priority:       e.sortingPriority,
		ColorizeAmount: e.colorizeAmount,
		ShadowStrength: e.shadowStrength,
	}
}

// applySettings 应用从配置存储读取的设置
func (e *Element) applySettings(s ElementSettings) {
	e.visible = s.Visible
	e.sortingPriority = s.Priority
	e.colorizeAmount = s.ColorizeAmount
	e.shadowStrength = s.ShadowStrength
}

// HoverFadeIn 计算悬停动画进度 [0, 1]
//
// 两个时间戳都先与轮盘的 触发时间+显示延迟 取较大值，
// 所以重新触发轮盘总会让所有元素的动画从头开始；
// 非悬停元素取 min(hoverIn, hoverOut)，刚离开的元素从当前亮度开始衰减而不会跳变。
func (e *Element) HoverFadeIn(now MsTime, w *Wheel) float64 {
	origin := w.triggerTime + w.settings.DisplayDelay
	speed := w.settings.FadeSpeed

	hoverIn := utils.FadeProgress(float64(now-max(e.currentHoverTime, origin)), speed)
	if w.isHovered(e.id) {
		return hoverIn
	}
	hoverOut := 1 - utils.FadeProgress(float64(now-max(e.currentExitTime, origin)), speed)
	return math.Min(hoverIn, hoverOut)
}

// Tint 按 colorizeAmount 在白色和元素颜色之间插值
func (e *Element) Tint() Color {
	return Color{
		R: utils.Lerp(1, e.color.R, e.colorizeAmount),
		G: utils.Lerp(1, e.color.G, e.colorizeAmount),
		B: utils.Lerp(1, e.color.B, e.colorizeAmount),
		A: e.color.A,
	}
}

// Shadow 阴影强度和偏移（偏移相对于元素尺寸）
func (e *Element) Shadow() Shadow {
	offset := shadowOffsetMultiplier * e.texWidth
	return Shadow{
		Strength: e.shadowStrength,
		OffsetX:  offset,
		OffsetY:  offset * e.aspectRatio,
	}
}

// activate 调用元素动作
func (e *Element) activate() {
	if e.action != nil {
		e.action()
	}
}
