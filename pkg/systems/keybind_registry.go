package systems

import (
	"fmt"
	"log"

	"github.com/decker502/radial/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeybindHandler 元素快捷键被触发时的回调
type KeybindHandler func(nickname string, key ebiten.Key)

// KeybindRegistry 元素昵称到快捷键的映射
//
// 轮盘只通过 HasKeybind 判断元素是否活跃；选中元素时由 Dispatch 发出快捷键。
// 实现 wheel.KeybindRegistry 接口。
type KeybindRegistry struct {
	keys    map[string]ebiten.Key
	handler KeybindHandler
}

// NewKeybindRegistry 创建空的快捷键注册表
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{keys: make(map[string]ebiten.Key)}
}

// Bind 为元素绑定快捷键，空名称表示解除绑定
//
// 参数：
//   - nickname: 元素昵称
//   - keyName: 按键名称，与 ebiten.Key.String() 写法相同
//
// 返回：
//   - error: 按键名称无法解析时返回错误，原有绑定保持不变
func (r *KeybindRegistry) Bind(nickname, keyName string) error {
	if keyName == "" {
		delete(r.keys, nickname)
		return nil
	}
	key, err := utils.ParseKey(keyName)
	if err != nil {
		return fmt.Errorf("keybind for %s: %w", nickname, err)
	}
	r.keys[nickname] = key
	return nil
}

// HasKeybind 元素是否绑定了快捷键
func (r *KeybindRegistry) HasKeybind(nickname string) bool {
	_, ok := r.keys[nickname]
	return ok
}

// Key 返回元素绑定的快捷键
func (r *KeybindRegistry) Key(nickname string) (ebiten.Key, bool) {
	k, ok := r.keys[nickname]
	return k, ok
}

// OnDispatch 设置快捷键触发回调
func (r *KeybindRegistry) OnDispatch(h KeybindHandler) {
	r.handler = h
}

// Dispatch 发出元素的快捷键
// 未绑定时返回 false
func (r *KeybindRegistry) Dispatch(nickname string) bool {
	key, ok := r.keys[nickname]
	if !ok {
		return false
	}
	log.Printf("[Keybind] %s -> %s", nickname, key)
	if r.handler != nil {
		r.handler(nickname, key)
	}
	return true
}
