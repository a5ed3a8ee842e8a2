// Package wheel 实现径向轮盘（饼状菜单）的布局与激活引擎
//
// 本包只负责逻辑：元素的角度布局、悬停/退出的时间动画、轮盘状态机、
// 以及优先级排序和可见性模型。绘制、输入采集、贴图解码、配置持久化
// 都通过本文件中声明的接口注入，方便用假实现做单元测试。
//
// 时间统一使用外部传入的单调毫秒时间（MsTime），包内从不读取系统时钟，
// 所有逐帧计算都是确定性的。
package wheel

import "image"

// MsTime 单调时钟的毫秒时间戳
type MsTime int64

// ElementID 轮盘元素的唯一标识，创建后不可变
type ElementID uint32

// Color RGBA 颜色，各通道取值 [0, 1]
type Color struct {
	R, G, B, A float64
}

// White 不做任何着色
var White = Color{R: 1, G: 1, B: 1, A: 1}

// Texture 元素的图标贴图
// 轮盘只使用 Width/Height 计算宽高比，像素数据原样交给渲染器
type Texture struct {
	Image  image.Image
	Width  int
	Height int
}

// valid 贴图是否可用于布局计算
func (t *Texture) valid() bool {
	return t != nil && t.Width > 0 && t.Height > 0
}

// Pointer 当前帧的指针状态（相对轮盘中心的极坐标）
//
// Angle 以 12 点钟方向为 0，顺时针增大；Distance 为到中心的像素距离。
// 没有指针输入的帧传 nil。
type Pointer struct {
	Angle    float64
	Distance float64
}

// Shadow 元素阴影参数
type Shadow struct {
	Strength float64
	OffsetX  float64
	OffsetY  float64
}

// Renderable 渲染器消费的单个元素绘制数据
//
// 列表顺序即 sortingPriority 升序，也就是顺时针的槽位顺序。
type Renderable struct {
	ID       ElementID
	Nickname string

	Slot  int     // 在可见元素中的槽位序号
	Angle float64 // 槽位角度

	X, Y        float64 // 元素中心的屏幕坐标
	Diameter    float64 // 宽度（像素）
	AspectRatio float64 // 高/宽

	Opacity   float64 // [0, 1]
	HoverFade float64 // [0, 1]，悬停动画进度
	Tint      Color
	Shadow    Shadow

	PremultiplyAlpha bool
	Hovered          bool
	Active           bool
}

// Height 元素绘制高度（像素）
func (r Renderable) Height() float64 {
	return r.Diameter * r.AspectRatio
}

// AssetProvider 贴图提供者
// 按元素 ID 加载贴图，无法解析时返回错误
type AssetProvider interface {
	LoadTexture(id ElementID) (*Texture, error)
}

// ElementSettings 单个元素的持久化设置
type ElementSettings struct {
	Visible        bool    `yaml:"visible"`
	Priority       int     `yaml:"priority"`
	ColorizeAmount float64 `yaml:"colorizeAmount"`
	ShadowStrength float64 `yaml:"shadowStrength"`
}

// ConfigStore 配置存储
//
// 启动时读取元素设置；用户修改可见性或优先级时写入。
// 写入是"发出即忘"的，不要求事务保证，失败由实现自行记录日志。
type ConfigStore interface {
	LoadElement(category, nickname string) (ElementSettings, bool)
	SaveElement(category, nickname string, settings ElementSettings)
}

// KeybindRegistry 快捷键注册表
// 只关心某个元素是否绑定了快捷键
type KeybindRegistry interface {
	HasKeybind(nickname string) bool
}
