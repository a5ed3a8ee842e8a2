//go:build !mobile

// Package mobile 在普通构建下只提供空的导出符号，真正的入口在 -tags mobile 下编译
package mobile

// Dummy 保证包在桌面构建时也能被引用
func Dummy() {}
