package wheel

// Extremum 元素在当前排序中的位置
type Extremum int

const (
	ExtremumNeither Extremum = iota
	ExtremumFirst
	ExtremumLast
	ExtremumOnly // 既是第一个也是最后一个
)

// ExtremumOf 返回排序中第 index 个（共 count 个）元素的位置标记
func ExtremumOf(index, count int) Extremum {
	first := index == 0
	last := index == count-1
	switch {
	case first && last:
		return ExtremumOnly
	case first:
		return ExtremumFirst
	case last:
		return ExtremumLast
	default:
		return ExtremumNeither
	}
}

// Shift 优先级调整方向
type Shift int

const (
	ShiftNone Shift = iota
	ShiftUp         // 与前一个元素交换
	ShiftDown       // 与后一个元素交换
)

func (s Shift) String() string {
	switch s {
	case ShiftUp:
		return "up"
	case ShiftDown:
		return "down"
	default:
		return "none"
	}
}

// CanShiftUp 不是第一个时才提供"上移"
func (x Extremum) CanShiftUp() bool {
	return x != ExtremumFirst && x != ExtremumOnly
}

// CanShiftDown 不是最后一个时才提供"下移"
func (x Extremum) CanShiftDown() bool {
	return x != ExtremumLast && x != ExtremumOnly
}

// RequestPriorityShift 根据元素在排序中的位置过滤用户请求的调整方向
//
// 元素本身从不修改排序；返回值交给所属 Wheel 统一应用。
func (e *Element) RequestPriorityShift(extremum Extremum, requested Shift) Shift {
	switch requested {
	case ShiftUp:
		if extremum.CanShiftUp() {
			return ShiftUp
		}
	case ShiftDown:
		if extremum.CanShiftDown() {
			return ShiftDown
		}
	}
	return ShiftNone
}
