//go:build android

package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const androidDataRoot = "/data/data"

// EnsureStorageDir 在 gdata 打开之前创建应用私有目录下的存储子目录
//
// gdata 在 Android 上写入 /data/data/{package}/，但不会创建子目录。
//
// 参数：
//   - appName: gdata 使用的应用名，同时作为子目录名
func EnsureStorageDir(appName string) error {
	dir := StorageDir(appName)
	if dir == "" {
		return errors.New("failed to detect Android package name")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create storage dir %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".probe")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("storage dir %s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}

// StorageDir 返回 /data/data/{package}/{appName}，无法识别包名时返回空串
func StorageDir(appName string) string {
	pkg, err := androidPackage()
	if err != nil {
		return ""
	}
	return filepath.Join(androidDataRoot, pkg, appName)
}

// androidPackage 从 /proc/self/cmdline 读取进程名，即应用包名
func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	// cmdline 以 NUL 分隔参数，第一个参数就是包名
	name, _, _ := strings.Cut(string(data), "\x00")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("empty /proc/self/cmdline")
	}
	return name, nil
}
