//go:build !android

package utils

// EnsureStorageDir 桌面平台由 gdata 自行创建目录
func EnsureStorageDir(appName string) error {
	return nil
}

// StorageDir 桌面平台不暴露存储路径
func StorageDir(appName string) string {
	return ""
}
