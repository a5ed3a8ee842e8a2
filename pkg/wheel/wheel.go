package wheel

import (
	"log"
	"math"
	"sort"

	"github.com/decker502/radial/pkg/utils"
)

// State 轮盘整体状态
type State int

const (
	// StateIdle 不可见
	StateIdle State = iota
	// StateTriggered 刚收到激活信号，下一次 Update 进入 Open
	StateTriggered
	// StateOpen 可见，逐帧跟踪指针和悬停
	StateOpen
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTriggered:
		return "triggered"
	case StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Settings 轮盘行为参数
type Settings struct {
	// DisplayDelay 触发后多久才允许悬停动画开始（防止误触的快速甩动）
	DisplayDelay MsTime
	// FadeSpeed 每秒完成的过渡次数，默认 6（约 167ms）
	FadeSpeed float64
	// Radius 元素中心所在圆的半径（像素）
	Radius float64
	// PackingFactor 元素直径相对相邻弦长的比例
	PackingFactor float64
	// DeadZone 中心死区半径（像素），指针在死区内时没有悬停元素
	DeadZone float64
	// InputHoldTolerance 没有指针输入时保持上次悬停的时长
	InputHoldTolerance MsTime
	// IdleOpacity 活跃但未悬停元素的不透明度
	IdleOpacity float64
	// InactiveOpacity 不活跃元素的不透明度
	InactiveOpacity float64
}

// DefaultSettings 返回默认轮盘参数
func DefaultSettings() Settings {
	return Settings{
		DisplayDelay:       0,
		FadeSpeed:          6,
		Radius:             120,
		PackingFactor:      0.66,
		DeadZone:           20,
		InputHoldTolerance: 100,
		IdleOpacity:        0.7,
		InactiveOpacity:    0.35,
	}
}

type pendingShift struct {
	id    ElementID
	shift Shift
}

// Wheel 径向轮盘
//
// 拥有全部元素，按 sortingPriority 升序保存（加入顺序决定并列时的先后）。
// 当前悬停元素以 ID 记录，从不持有元素指针的别名。
// 所有状态只在单线程的逐帧调用中修改，不做并发保护。
type Wheel struct {
	name     string
	settings Settings
	store    ConfigStore

	elements []*Element
	byID     map[ElementID]*Element
	inserted int

	state       State
	triggerTime MsTime
	centerX     float64
	centerY     float64

	hovered         ElementID
	hasHovered      bool
	lastPointerTime MsTime

	pending []pendingShift
}

// NewWheel 创建轮盘
//
// 参数：
//   - name: 轮盘名称，仅用于日志
//   - settings: 行为参数
//   - store: 配置存储，可为 nil（仅内存，不持久化）
func NewWheel(name string, settings Settings, store ConfigStore) *Wheel {
	return &Wheel{
		name:     name,
		settings: settings,
		store:    store,
		byID:     make(map[ElementID]*Element),
	}
}

// Name 轮盘名称
func (w *Wheel) Name() string { return w.name }

// Settings 当前行为参数
func (w *Wheel) Settings() Settings { return w.settings }

// State 当前状态
func (w *Wheel) State() State { return w.state }

// TriggerTime 最近一次触发时间
func (w *Wheel) TriggerTime() MsTime { return w.triggerTime }

// SetCenter 设置轮盘中心（屏幕坐标）
func (w *Wheel) SetCenter(x, y float64) {
	w.centerX, w.centerY = x, y
}

// Center 轮盘中心（屏幕坐标）
func (w *Wheel) Center() (float64, float64) {
	return w.centerX, w.centerY
}

// Geometry 当前布局参数
func (w *Wheel) Geometry() Geometry {
	return Geometry{
		CenterX:       w.centerX,
		CenterY:       w.centerY,
		Radius:        w.settings.Radius,
		PackingFactor: w.settings.PackingFactor,
	}
}

// AddElement 将元素加入轮盘
//
// 如果配置存储中有该元素的设置，先应用设置再按优先级插入。
// 返回的错误都是 *ConfigurationInconsistency，不致命：
//   - DuplicateID: 元素未加入
//   - PriorityCollision: 元素已加入，冲突的优先级已按加入顺序重新编号
func (w *Wheel) AddElement(e *Element) error {
	if _, exists := w.byID[e.id]; exists {
		return &ConfigurationInconsistency{Kind: DuplicateID, ID: e.id, Nickname: e.nickname, Priority: e.sortingPriority}
	}

	if w.store != nil {
		if s, ok := w.store.LoadElement(e.category, e.nickname); ok {
			e.applySettings(s)
		}
	}

	e.insertion = w.inserted
	w.inserted++
	w.byID[e.id] = e

	collided := false
	for _, other := range w.elements {
		if other.sortingPriority == e.sortingPriority {
			collided = true
			break
		}
	}
	colliding := e.sortingPriority

	w.elements = append(w.elements, e)
	sort.SliceStable(w.elements, func(i, j int) bool {
		a, b := w.elements[i], w.elements[j]
		if a.sortingPriority != b.sortingPriority {
			return a.sortingPriority < b.sortingPriority
		}
		return a.insertion < b.insertion
	})

	if collided {
		w.renumberPriorities()
		return &ConfigurationInconsistency{Kind: PriorityCollision, ID: e.id, Nickname: e.nickname, Priority: colliding}
	}
	return nil
}

// renumberPriorities 消除重复优先级：保持当前顺序，必要时把后面的优先级顺延
func (w *Wheel) renumberPriorities() {
	for i := 1; i < len(w.elements); i++ {
		prev := w.elements[i-1].sortingPriority
		if w.elements[i].sortingPriority <= prev {
			w.elements[i].sortingPriority = prev + 1
		}
	}
}

// Elements 返回按优先级排序的全部元素（包括不可见的）
// 返回的切片是副本，元素指针只应用于读取
func (w *Wheel) Elements() []*Element {
	out := make([]*Element, len(w.elements))
	copy(out, w.elements)
	return out
}

// Element 按 ID 查找元素
func (w *Wheel) Element(id ElementID) (*Element, bool) {
	e, ok := w.byID[id]
	return e, ok
}

// Hovered 当前悬停的元素
func (w *Wheel) Hovered() (*Element, bool) {
	if !w.hasHovered {
		return nil, false
	}
	e, ok := w.byID[w.hovered]
	return e, ok
}

func (w *Wheel) isHovered(id ElementID) bool {
	return w.hasHovered && w.hovered == id
}

// VisibleCount 可见元素数量
func (w *Wheel) VisibleCount() int {
	n := 0
	for _, e := range w.elements {
		if e.visible {
			n++
		}
	}
	return n
}

// visibleElements 按槽位顺序返回可见元素
func (w *Wheel) visibleElements() []*Element {
	out := make([]*Element, 0, len(w.elements))
	for _, e := range w.elements {
		if e.visible {
			out = append(out, e)
		}
	}
	return out
}

// SyncKeybinds 从快捷键注册表刷新每个元素的 hasKeybind
// 失去快捷键的悬停元素会被清除悬停状态
func (w *Wheel) SyncKeybinds(reg KeybindRegistry) {
	for _, e := range w.elements {
		e.hasKeybind = reg != nil && reg.HasKeybind(e.nickname)
	}
	if h, ok := w.Hovered(); ok && !h.IsActive() {
		w.hasHovered = false
	}
}

// SetElementVisible 修改元素可见性并持久化
// 隐藏当前悬停的元素会清除悬停状态
func (w *Wheel) SetElementVisible(id ElementID, visible bool) error {
	e, ok := w.byID[id]
	if !ok {
		return ErrUnknownElement
	}
	if e.visible == visible {
		return nil
	}
	e.visible = visible
	if !visible && w.isHovered(id) {
		w.hasHovered = false
	}
	w.persist(e)
	return nil
}

// Extremum 元素在全部元素排序中的位置
func (w *Wheel) Extremum(id ElementID) Extremum {
	for i, e := range w.elements {
		if e.id == id {
			return ExtremumOf(i, len(w.elements))
		}
	}
	return ExtremumNeither
}

// RequestPriorityShift 记录一次优先级调整请求
//
// 请求先经元素按当前位置过滤，然后排队，在下一次 Update 时应用。
// 返回实际排队的方向（ShiftNone 表示请求被忽略）。
func (w *Wheel) RequestPriorityShift(id ElementID, requested Shift) Shift {
	e, ok := w.byID[id]
	if !ok {
		return ShiftNone
	}
	shift := e.RequestPriorityShift(w.Extremum(id), requested)
	if shift != ShiftNone {
		w.pending = append(w.pending, pendingShift{id: id, shift: shift})
	}
	return shift
}

// applyPendingShifts 依次应用排队的调整：与相邻元素交换优先级和位置
func (w *Wheel) applyPendingShifts() {
	if len(w.pending) == 0 {
		return
	}
	for _, p := range w.pending {
		w.swapAdjacent(p.id, p.shift)
	}
	w.pending = w.pending[:0]
}

// swapAdjacent 相邻交换，O(1)，其余元素相对顺序不变
func (w *Wheel) swapAdjacent(id ElementID, shift Shift) {
	i := -1
	for idx, e := range w.elements {
		if e.id == id {
			i = idx
			break
		}
	}
	if i < 0 {
		return
	}

	j := i
	switch shift {
	case ShiftUp:
		j = i - 1
	case ShiftDown:
		j = i + 1
	}
	if j == i || j < 0 || j >= len(w.elements) {
		return
	}

	a, b := w.elements[i], w.elements[j]
	a.sortingPriority, b.sortingPriority = b.sortingPriority, a.sortingPriority
	w.elements[i], w.elements[j] = b, a

	w.persist(a)
	w.persist(b)
}

// persist 发出即忘地写入配置存储
func (w *Wheel) persist(e *Element) {
	if w.store != nil {
		w.store.SaveElement(e.category, e.nickname, e.settings())
	}
}

// Trigger 激活轮盘
//
// 记录触发时间作为所有元素入场动画的时间原点，并清除悬停状态。
// 任何状态下都可以调用，重新触发会让所有元素的动画从头开始。
func (w *Wheel) Trigger(now MsTime) {
	w.state = StateTriggered
	w.triggerTime = now
	w.hasHovered = false
	w.lastPointerTime = now

	active := 0
	visible := w.visibleElements()
	for _, e := range visible {
		if e.IsActive() {
			active++
		}
	}
	log.Printf("[Wheel] %s triggered at %d (%d visible, %d active)", w.name, now, len(visible), active)
}

// Close 关闭轮盘，不触发任何动作
func (w *Wheel) Close() {
	if w.state == StateIdle {
		return
	}
	w.state = StateIdle
	w.hasHovered = false
	log.Printf("[Wheel] %s closed", w.name)
}

// Commit 提交当前选择
//
// 轮盘打开时调用悬停元素的动作恰好一次，然后回到 Idle。
// 没有悬停元素时返回 ErrEmptySelection（轮盘同样关闭）；
// 轮盘未打开时返回 ErrWheelIdle。两者都是无操作。
func (w *Wheel) Commit() (*Element, error) {
	if w.state == StateIdle {
		return nil, ErrWheelIdle
	}

	e, ok := w.Hovered()
	w.Close()
	if !ok {
		return nil, ErrEmptySelection
	}

	log.Printf("[Wheel] %s committed %s", w.name, e.nickname)
	e.activate()
	return e, nil
}

// Update 逐帧更新，返回按槽位排序的渲染列表
//
// 步骤：
//  1. Idle 时只应用排队的优先级调整，返回空列表
//  2. 根据指针确定悬停目标
//  3. 悬停目标变化时记录新元素的 hoverTime 和旧元素的 exitTime
//  4. 为每个可见元素计算几何和动画
//  5. 应用上一帧 UI 交互排队的优先级调整（下一帧生效）
func (w *Wheel) Update(now MsTime, pointer *Pointer) []Renderable {
	if w.state == StateIdle {
		w.applyPendingShifts()
		return nil
	}
	if w.state == StateTriggered {
		w.state = StateOpen
	}

	visible := w.visibleElements()
	w.updateHover(now, pointer, visible)

	out := make([]Renderable, 0, len(visible))
	entry := utils.FadeProgress(float64(now-w.triggerTime), w.settings.FadeSpeed)
	geometry := w.Geometry()
	for slot, e := range visible {
		fade := e.HoverFadeIn(now, w)
		s := ComputeSlot(slot, len(visible), fade, geometry)

		opacity := w.settings.InactiveOpacity
		if e.IsActive() {
			opacity = utils.Lerp(w.settings.IdleOpacity, 1, fade)
		}

		out = append(out, Renderable{
			ID:               e.id,
			Nickname:         e.nickname,
			Slot:             slot,
			Angle:            s.Angle,
			X:                s.X,
			Y:                s.Y,
			Diameter:         s.Diameter,
			AspectRatio:      e.aspectRatio,
			Opacity:          entry * opacity,
			HoverFade:        fade,
			Tint:             e.Tint(),
			Shadow:           e.Shadow(),
			PremultiplyAlpha: e.premultiplyAlpha,
			Hovered:          w.isHovered(e.id),
			Active:           e.IsActive(),
		})
	}

	w.applyPendingShifts()
	w.assertInvariants()
	return out
}

// updateHover 确定悬停目标并在变化时记录时间戳
// 这是 currentHoverTime / currentExitTime 唯一的修改点
func (w *Wheel) updateHover(now MsTime, pointer *Pointer, visible []*Element) {
	target, found := w.pickTarget(now, pointer, visible)

	if found == w.hasHovered && (!found || target == w.hovered) {
		return
	}

	if prev, ok := w.Hovered(); ok {
		prev.currentExitTime = now
	}
	if found {
		w.byID[target].currentHoverTime = now
	}
	w.hovered, w.hasHovered = target, found
}

// pickTarget 把指针角度映射到最近的可见且活跃的槽位
func (w *Wheel) pickTarget(now MsTime, pointer *Pointer, visible []*Element) (ElementID, bool) {
	if pointer == nil {
		// 输入短暂中断时保持上一次悬停，避免闪烁
		if w.hasHovered && now-w.lastPointerTime <= w.settings.InputHoldTolerance {
			if e, ok := w.byID[w.hovered]; ok && e.visible && e.IsActive() {
				return w.hovered, true
			}
		}
		return 0, false
	}

	w.lastPointerTime = now
	if pointer.Distance < w.settings.DeadZone {
		return 0, false
	}

	var best ElementID
	found := false
	bestDist := math.Inf(1)
	for slot, e := range visible {
		if !e.IsActive() {
			continue
		}
		d := utils.AngularDistance(pointer.Angle, SlotAngle(slot, len(visible)))
		if d < bestDist {
			best, bestDist, found = e.id, d, true
		}
	}
	return best, found
}
