// Package utils 提供通用工具函数
package utils

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 当前帧的指针状态
// 统一处理鼠标和触摸输入
type PointerState struct {
	X, Y int
	// Present 本帧是否有可用的指针输入
	// 桌面端窗口失焦、移动端没有触摸时为 false
	Present bool
	// IsTouching 指针来自触摸
	IsTouching bool
}

// GetPointerState 获取当前帧的指针状态，优先检测触摸
func GetPointerState() PointerState {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerState{X: x, Y: y, Present: true, IsTouching: true}
	}

	x, y := ebiten.CursorPosition()
	return PointerState{X: x, Y: y, Present: ebiten.IsFocused() && !IsMobile()}
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// IsPointerJustPressed 检查是否刚刚按下指针（触摸或鼠标左键）
// 返回是否按下以及按下位置
func IsPointerJustPressed() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}
	return false, 0, 0
}

// ParseKey 解析按键名称（与 ebiten.Key.String() 相同的写法，如 "Q"、"Digit1"、"F5"）
func ParseKey(name string) (ebiten.Key, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("empty key name")
	}
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown key %q: %w", name, err)
	}
	return k, nil
}

// ParseModifier 解析修饰键名称：shift / alt / control(ctrl) / meta
func ParseModifier(name string) (ebiten.Key, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "shift":
		return ebiten.KeyShift, nil
	case "alt":
		return ebiten.KeyAlt, nil
	case "control", "ctrl":
		return ebiten.KeyControl, nil
	case "meta":
		return ebiten.KeyMeta, nil
	}
	return 0, fmt.Errorf("unknown modifier %q", name)
}

// ParseModifiers 解析一组修饰键
func ParseModifiers(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, n := range names {
		k, err := ParseModifier(n)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
