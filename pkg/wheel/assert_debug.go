//go:build radialdebug

package wheel

import "fmt"

// assertInvariants 调试构建下检查轮盘不变量，违反时 panic
//
// 使用 go build -tags radialdebug 启用。
func (w *Wheel) assertInvariants() {
	if w.hasHovered {
		e, ok := w.byID[w.hovered]
		if !ok {
			panic(fmt.Sprintf("wheel %s: hovered element %d not owned by wheel", w.name, w.hovered))
		}
		if !e.visible {
			panic(fmt.Sprintf("wheel %s: hovered element %d is not visible", w.name, w.hovered))
		}
	}

	seen := make(map[ElementID]struct{}, len(w.elements))
	for i, e := range w.elements {
		if _, dup := seen[e.id]; dup {
			panic(fmt.Sprintf("wheel %s: duplicate element id %d", w.name, e.id))
		}
		seen[e.id] = struct{}{}
		if i > 0 && w.elements[i-1].sortingPriority > e.sortingPriority {
			panic(fmt.Sprintf("wheel %s: elements out of priority order at %d", w.name, i))
		}
	}
}
