//go:build !radialdebug

package wheel

// assertInvariants 发布构建下为空操作，保持逐帧耗时可预测
func (w *Wheel) assertInvariants() {}
