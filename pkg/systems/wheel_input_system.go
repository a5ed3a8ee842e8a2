package systems

import (
	"errors"
	"log"
	"time"

	"github.com/decker502/radial/pkg/utils"
	"github.com/decker502/radial/pkg/wheel"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WheelInput 轮盘输入接口
// 用于依赖注入，支持测试时 mock
type WheelInput interface {
	// Pointer 返回指针位置；本帧没有指针输入时 ok 为 false
	Pointer() (x, y int, ok bool)
	IsKeyJustPressed(key ebiten.Key) bool
	IsKeyJustReleased(key ebiten.Key) bool
	IsPointerJustPressed() bool
}

// ebitenWheelInput Ebitengine 默认实现
type ebitenWheelInput struct{}

func (e *ebitenWheelInput) Pointer() (int, int, bool) {
	p := utils.GetPointerState()
	return p.X, p.Y, p.Present
}

func (e *ebitenWheelInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (e *ebitenWheelInput) IsKeyJustReleased(key ebiten.Key) bool {
	return inpututil.IsKeyJustReleased(key)
}

func (e *ebitenWheelInput) IsPointerJustPressed() bool {
	pressed, _, _ := utils.IsPointerJustPressed()
	return pressed
}

// Clock 单调毫秒时钟
type Clock func() wheel.MsTime

// MonotonicClock 返回以创建时刻为零点的单调时钟
func MonotonicClock() Clock {
	start := time.Now()
	return func() wheel.MsTime {
		return wheel.MsTime(time.Since(start).Milliseconds())
	}
}

// WheelInputOptions 轮盘输入系统参数
type WheelInputOptions struct {
	ActivationKey  ebiten.Key
	CenterOnCursor bool // 激活时以指针位置为中心，否则使用屏幕中心
	CommitOnClick  bool // 打开时点击也可提交
	ScreenWidth    int
	ScreenHeight   int
}

// WheelInputSystem 轮盘输入系统
//
// 职责：
//   - 按下激活键时触发轮盘，松开时提交
//   - 把屏幕指针转换为相对轮盘中心的极坐标
//   - 每帧驱动 Wheel.Update，保存渲染列表供渲染系统使用
type WheelInputSystem struct {
	wheel *wheel.Wheel
	input WheelInput
	clock Clock
	opts  WheelInputOptions

	blocked     bool
	renderables []wheel.Renderable
	lastCommit  *wheel.Element
}

// NewWheelInputSystem 创建轮盘输入系统
func NewWheelInputSystem(w *wheel.Wheel, opts WheelInputOptions) *WheelInputSystem {
	return NewWheelInputSystemWithInput(w, opts, &ebitenWheelInput{}, MonotonicClock())
}

// NewWheelInputSystemWithInput 创建带自定义输入和时钟的轮盘输入系统（用于测试）
func NewWheelInputSystemWithInput(w *wheel.Wheel, opts WheelInputOptions, input WheelInput, clock Clock) *WheelInputSystem {
	s := &WheelInputSystem{
		wheel: w,
		input: input,
		clock: clock,
		opts:  opts,
	}
	w.SetCenter(float64(opts.ScreenWidth)/2, float64(opts.ScreenHeight)/2)
	return s
}

// SetBlocked 设置是否屏蔽轮盘输入（设置菜单打开时）
// 屏蔽时打开的轮盘会直接关闭，不触发任何动作
func (s *WheelInputSystem) SetBlocked(blocked bool) {
	if blocked && !s.blocked && s.wheel.State() != wheel.StateIdle {
		s.wheel.Close()
	}
	s.blocked = blocked
}

// Blocked 是否屏蔽轮盘输入
func (s *WheelInputSystem) Blocked() bool {
	return s.blocked
}

// Update 处理一帧输入
func (s *WheelInputSystem) Update() {
	now := s.clock()
	x, y, hasPointer := s.input.Pointer()

	if !s.blocked && s.input.IsKeyJustPressed(s.opts.ActivationKey) {
		if s.opts.CenterOnCursor && hasPointer {
			s.wheel.SetCenter(float64(x), float64(y))
		} else {
			s.wheel.SetCenter(float64(s.opts.ScreenWidth)/2, float64(s.opts.ScreenHeight)/2)
		}
		s.wheel.Trigger(now)
	}

	var pointer *wheel.Pointer
	if hasPointer && !s.blocked {
		cx, cy := s.wheel.Center()
		angle, dist := utils.ScreenToPolar(cx, cy, float64(x), float64(y))
		pointer = &wheel.Pointer{Angle: angle, Distance: dist}
	}

	// Idle 时也要调用，排队的优先级调整在这里生效
	s.renderables = s.wheel.Update(now, pointer)

	if s.blocked || s.wheel.State() == wheel.StateIdle {
		return
	}

	commit := s.input.IsKeyJustReleased(s.opts.ActivationKey) ||
		(s.opts.CommitOnClick && s.input.IsPointerJustPressed())
	if !commit {
		return
	}

	e, err := s.wheel.Commit()
	s.renderables = nil
	switch {
	case err == nil:
		s.lastCommit = e
	case errors.Is(err, wheel.ErrEmptySelection):
		log.Printf("[WheelInput] %s released without a selection", s.wheel.Name())
	default:
		log.Printf("[WheelInput] commit failed: %v", err)
	}
}

// Renderables 最近一帧的渲染列表，轮盘关闭时为空
func (s *WheelInputSystem) Renderables() []wheel.Renderable {
	return s.renderables
}

// LastCommit 最近一次提交的元素
func (s *WheelInputSystem) LastCommit() (*wheel.Element, bool) {
	return s.lastCommit, s.lastCommit != nil
}
