package wheel

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySelection 提交时没有悬停元素（或没有可见元素）
	// 这不是真正的错误，调用方应视为无操作
	ErrEmptySelection = errors.New("wheel: nothing selected")

	// ErrWheelIdle 轮盘未打开时提交
	ErrWheelIdle = errors.New("wheel: not open")

	// ErrUnknownElement 按 ID 找不到元素
	ErrUnknownElement = errors.New("wheel: unknown element")
)

// AssetLoadError 元素贴图无法解析
//
// 构造元素时返回，受影响的元素不会加入轮盘。
// 由调用方决定中止启动还是记录警告后跳过。
type AssetLoadError struct {
	ID       ElementID
	Nickname string
	Err      error
}

func (e *AssetLoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("wheel: no valid texture for element %d (%s)", e.ID, e.Nickname)
	}
	return fmt.Sprintf("wheel: failed to load texture for element %d (%s): %v", e.ID, e.Nickname, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}

// InconsistencyKind 配置不一致的类型
type InconsistencyKind int

const (
	// DuplicateID 重复的元素 ID，后加入的元素被丢弃
	DuplicateID InconsistencyKind = iota
	// PriorityCollision 优先级冲突，按加入顺序重新编号
	PriorityCollision
)

func (k InconsistencyKind) String() string {
	switch k {
	case DuplicateID:
		return "duplicate id"
	case PriorityCollision:
		return "priority collision"
	default:
		return "unknown"
	}
}

// ConfigurationInconsistency 加载配置时发现的不一致
// 总是按加入顺序确定性地解决，从不致命
type ConfigurationInconsistency struct {
	Kind     InconsistencyKind
	ID       ElementID
	Nickname string
	Priority int
}

func (e *ConfigurationInconsistency) Error() string {
	switch e.Kind {
	case DuplicateID:
		return fmt.Sprintf("wheel: duplicate element id %d (%s), element dropped", e.ID, e.Nickname)
	case PriorityCollision:
		return fmt.Sprintf("wheel: element %d (%s) collides at priority %d, renumbered by insertion order", e.ID, e.Nickname, e.Priority)
	default:
		return fmt.Sprintf("wheel: %s for element %d (%s)", e.Kind, e.ID, e.Nickname)
	}
}
