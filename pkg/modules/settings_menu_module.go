package modules

import (
	"image/color"
	"log"

	"github.com/decker502/radial/pkg/utils"
	"github.com/decker502/radial/pkg/wheel"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// NoKeybindSuffix 未绑定快捷键的元素在设置菜单中的标签后缀
const NoKeybindSuffix = " [No keybind]"

// 设置菜单布局（像素）
const (
	menuRowHeight   = 24
	menuWidth       = 360
	menuPadding     = 8
	menuTitleHeight = 24
	menuBoxSize     = 12
	menuButtonSize  = 16
)

// MenuInput 设置菜单输入接口
// 用于依赖注入，支持测试时 mock
type MenuInput interface {
	CursorPosition() (int, int)
	IsPointerJustPressed() bool
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
}

// ebitenMenuInput Ebitengine 默认实现
type ebitenMenuInput struct{}

func (e *ebitenMenuInput) CursorPosition() (int, int) {
	return utils.GetPointerPosition()
}

func (e *ebitenMenuInput) IsPointerJustPressed() bool {
	pressed, _, _ := utils.IsPointerJustPressed()
	return pressed
}

func (e *ebitenMenuInput) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (e *ebitenMenuInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// SettingsRow 设置菜单中的一行，对应一个元素
type SettingsRow struct {
	ID      wheel.ElementID
	Label   string
	Visible bool
	Dimmed  bool // 隐藏或不活跃
	CanUp   bool // 不是第一个
	CanDown bool // 不是最后一个
}

// MenuAction 一次点击产生的操作
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionToggleVisible
	MenuActionMoveUp
	MenuActionMoveDown
)

// SettingsMenuModule 轮盘设置菜单模块
//
// 职责：
//   - 组合键显示/隐藏菜单，菜单可见期间屏蔽轮盘输入
//   - 每个元素一行：可见性复选框、名称、上移/下移按钮
//   - 点击通过 Wheel 的公开接口修改可见性和排序，由 Wheel 负责持久化
type SettingsMenuModule struct {
	wheel *wheel.Wheel
	input MenuInput

	toggleKey ebiten.Key
	modifiers []ebiten.Key

	x, y      int
	active    bool
	rows      []SettingsRow
	labelFont *text.GoTextFace // 为 nil 时使用调试字体

	// onVisibilityChange 可见性变化回调（可选）
	onVisibilityChange func(active bool)
}

// NewSettingsMenuModule 创建设置菜单模块
//
// 参数：
//   - w: 轮盘
//   - toggleKey: 显示/隐藏菜单的按键
//   - modifiers: 需同时按下的修饰键
//   - x, y: 菜单左上角坐标
func NewSettingsMenuModule(w *wheel.Wheel, toggleKey ebiten.Key, modifiers []ebiten.Key, x, y int) *SettingsMenuModule {
	return NewSettingsMenuModuleWithInput(w, toggleKey, modifiers, x, y, &ebitenMenuInput{})
}

// NewSettingsMenuModuleWithInput 创建带自定义输入的设置菜单模块（用于测试）
func NewSettingsMenuModuleWithInput(w *wheel.Wheel, toggleKey ebiten.Key, modifiers []ebiten.Key, x, y int, input MenuInput) *SettingsMenuModule {
	m := &SettingsMenuModule{
		wheel:     w,
		input:     input,
		toggleKey: toggleKey,
		modifiers: modifiers,
		x:         x,
		y:         y,
	}
	m.rows = BuildSettingsRows(w)
	return m
}

// SetOnVisibilityChange 设置菜单显示/隐藏回调
func (m *SettingsMenuModule) SetOnVisibilityChange(fn func(active bool)) {
	m.onVisibilityChange = fn
}

// SetLabelFont 设置标题和行标签字体
func (m *SettingsMenuModule) SetLabelFont(face *text.GoTextFace) {
	m.labelFont = face
}

// BuildSettingsRows 按当前排序构建菜单行
func BuildSettingsRows(w *wheel.Wheel) []SettingsRow {
	elements := w.Elements()
	rows := make([]SettingsRow, 0, len(elements))
	for i, e := range elements {
		label := e.DisplayName()
		if label == "" {
			label = e.Nickname()
		}
		if !e.HasKeybind() {
			label += NoKeybindSuffix
		}
		x := wheel.ExtremumOf(i, len(elements))
		rows = append(rows, SettingsRow{
			ID:      e.ID(),
			Label:   label,
			Visible: e.Visible(),
			Dimmed:  !e.Visible() || !e.IsActive(),
			CanUp:   x.CanShiftUp(),
			CanDown: x.CanShiftDown(),
		})
	}
	return rows
}

// Update 处理组合键与点击
func (m *SettingsMenuModule) Update() MenuAction {
	if m.toggleRequested() {
		m.Toggle()
		return MenuActionNone
	}
	if !m.active {
		return MenuActionNone
	}
	if m.input.IsKeyJustPressed(ebiten.KeyEscape) {
		m.Hide()
		return MenuActionNone
	}

	m.rows = BuildSettingsRows(m.wheel)
	if !m.input.IsPointerJustPressed() {
		return MenuActionNone
	}

	mx, my := m.input.CursorPosition()
	row, action := m.hitTest(mx, my)
	if action == MenuActionNone {
		return MenuActionNone
	}

	r := m.rows[row]
	switch action {
	case MenuActionToggleVisible:
		if err := m.wheel.SetElementVisible(r.ID, !r.Visible); err != nil {
			log.Printf("[SettingsMenu] toggle %d: %v", r.ID, err)
			return MenuActionNone
		}
	case MenuActionMoveUp:
		if m.wheel.RequestPriorityShift(r.ID, wheel.ShiftUp) == wheel.ShiftNone {
			return MenuActionNone
		}
	case MenuActionMoveDown:
		if m.wheel.RequestPriorityShift(r.ID, wheel.ShiftDown) == wheel.ShiftNone {
			return MenuActionNone
		}
	}
	return action
}

// toggleRequested 菜单按键刚按下且所有修饰键都处于按下状态
func (m *SettingsMenuModule) toggleRequested() bool {
	if !m.input.IsKeyJustPressed(m.toggleKey) {
		return false
	}
	for _, k := range m.modifiers {
		if !m.input.IsKeyPressed(k) {
			return false
		}
	}
	return true
}

// hitTest 返回点击所在行和对应操作
func (m *SettingsMenuModule) hitTest(mx, my int) (int, MenuAction) {
	top := m.y + menuTitleHeight
	if mx < m.x || mx >= m.x+menuWidth || my < top {
		return -1, MenuActionNone
	}
	row := (my - top) / menuRowHeight
	if row >= len(m.rows) {
		return -1, MenuActionNone
	}

	r := m.rows[row]
	rowY := top + row*menuRowHeight
	switch {
	case inRect(mx, my, m.x+menuPadding, rowY, menuBoxSize+4, menuRowHeight):
		return row, MenuActionToggleVisible
	case r.CanUp && inRect(mx, my, m.upButtonX(), rowY, menuButtonSize, menuRowHeight):
		return row, MenuActionMoveUp
	case r.CanDown && inRect(mx, my, m.downButtonX(), rowY, menuButtonSize, menuRowHeight):
		return row, MenuActionMoveDown
	}
	return row, MenuActionNone
}

func (m *SettingsMenuModule) upButtonX() int {
	return m.x + menuWidth - menuPadding - 2*menuButtonSize - 4
}

func (m *SettingsMenuModule) downButtonX() int {
	return m.x + menuWidth - menuPadding - menuButtonSize
}

func inRect(px, py, x, y, w, h int) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}

// Rows 当前菜单行
func (m *SettingsMenuModule) Rows() []SettingsRow {
	return m.rows
}

// RowCenter 返回某行某操作区域的中心坐标
func (m *SettingsMenuModule) RowCenter(row int, action MenuAction) (int, int) {
	y := m.y + menuTitleHeight + row*menuRowHeight + menuRowHeight/2
	switch action {
	case MenuActionMoveUp:
		return m.upButtonX() + menuButtonSize/2, y
	case MenuActionMoveDown:
		return m.downButtonX() + menuButtonSize/2, y
	default:
		return m.x + menuPadding + menuBoxSize/2, y
	}
}

// Draw 绘制菜单
func (m *SettingsMenuModule) Draw(screen *ebiten.Image) {
	if !m.active {
		return
	}

	height := menuTitleHeight + len(m.rows)*menuRowHeight + menuPadding
	vector.DrawFilledRect(screen, float32(m.x), float32(m.y), menuWidth, float32(height), color.RGBA{R: 20, G: 25, B: 35, A: 220}, false)
	vector.StrokeRect(screen, float32(m.x), float32(m.y), menuWidth, float32(height), 1, color.RGBA{R: 120, G: 130, B: 150, A: 255}, false)
	m.drawText(screen, m.wheel.Name()+" settings (Esc to close)", m.x+menuPadding, m.y+menuTitleHeight/2, color.White)

	normal := color.RGBA{R: 230, G: 230, B: 230, A: 255}
	dim := color.RGBA{R: 110, G: 110, B: 110, A: 255}

	for i, r := range m.rows {
		rowY := m.y + menuTitleHeight + i*menuRowHeight
		midY := float32(rowY + menuRowHeight/2)
		clr := normal
		if r.Dimmed {
			clr = dim
		}

		bx := float32(m.x + menuPadding)
		by := midY - menuBoxSize/2
		vector.StrokeRect(screen, bx, by, menuBoxSize, menuBoxSize, 1, clr, false)
		if r.Visible {
			vector.DrawFilledRect(screen, bx+3, by+3, menuBoxSize-6, menuBoxSize-6, clr, false)
		}

		label := r.Label
		if r.Dimmed {
			label = "(" + label + ")"
		}
		m.drawText(screen, label, m.x+menuPadding+menuBoxSize+8, rowY+menuRowHeight/2, clr)

		if r.CanUp {
			drawArrow(screen, float32(m.upButtonX()+menuButtonSize/2), midY, true, normal)
		}
		if r.CanDown {
			drawArrow(screen, float32(m.downButtonX()+menuButtonSize/2), midY, false, normal)
		}
	}
}

// drawText 在 x 处左对齐、以 midY 为垂直中心绘制文字
func (m *SettingsMenuModule) drawText(screen *ebiten.Image, s string, x, midY int, clr color.Color) {
	if m.labelFont == nil {
		ebitenutil.DebugPrintAt(screen, s, x, midY-8)
		return
	}
	op := &text.DrawOptions{}
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(float64(x), float64(midY))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, m.labelFont, op)
}

// drawArrow 绘制上/下箭头
func drawArrow(screen *ebiten.Image, cx, cy float32, up bool, clr color.Color) {
	const half = 5
	tip, base := cy-half, cy+half
	if !up {
		tip, base = base, tip
	}
	vector.StrokeLine(screen, cx, base, cx, tip, 2, clr, true)
	vector.StrokeLine(screen, cx-half, (tip+cy)/2, cx, tip, 2, clr, true)
	vector.StrokeLine(screen, cx+half, (tip+cy)/2, cx, tip, 2, clr, true)
}

// Show 显示菜单
func (m *SettingsMenuModule) Show() {
	if m.active {
		return
	}
	m.active = true
	m.rows = BuildSettingsRows(m.wheel)
	log.Printf("[SettingsMenu] shown (%d elements)", len(m.rows))
	if m.onVisibilityChange != nil {
		m.onVisibilityChange(true)
	}
}

// Hide 隐藏菜单
func (m *SettingsMenuModule) Hide() {
	if !m.active {
		return
	}
	m.active = false
	log.Printf("[SettingsMenu] hidden")
	if m.onVisibilityChange != nil {
		m.onVisibilityChange(false)
	}
}

// Toggle 切换菜单显示状态
func (m *SettingsMenuModule) Toggle() {
	if m.active {
		m.Hide()
	} else {
		m.Show()
	}
}

// IsActive 菜单是否可见
func (m *SettingsMenuModule) IsActive() bool {
	return m.active
}
