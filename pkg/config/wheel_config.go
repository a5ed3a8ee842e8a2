package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/radial/pkg/embedded"
	"github.com/decker502/radial/pkg/wheel"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 内嵌的默认配置文件
const DefaultConfigPath = "data/config/wheel.yaml"

// Config 应用配置根结构
type Config struct {
	Window       WindowConfig       `yaml:"window"`
	Wheel        WheelConfig        `yaml:"wheel"`
	SettingsMenu SettingsMenuConfig `yaml:"settingsMenu"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width    int     `yaml:"width"`    // 逻辑屏幕宽度（像素）
	Height   int     `yaml:"height"`   // 逻辑屏幕高度（像素）
	Title    string  `yaml:"title"`    // 窗口标题
	Font     string  `yaml:"font"`     // 标签字体文件，为空使用内置字体
	FontSize float64 `yaml:"fontSize"` // 标签字号
}

// WheelConfig 轮盘配置
type WheelConfig struct {
	Name                 string  `yaml:"name"`                 // 轮盘名称，用于日志和存储分类
	DisplayDelayMs       int64   `yaml:"displayDelayMs"`       // 触发后多久允许悬停动画开始
	FadeSpeed            float64 `yaml:"fadeSpeed"`            // 每秒过渡次数，6 ≈ 167ms
	Radius               float64 `yaml:"radius"`               // 元素中心所在圆的半径（像素）
	PackingFactor        float64 `yaml:"packingFactor"`        // 元素直径相对相邻弦长的比例 (0, 1]
	DeadZone             float64 `yaml:"deadZone"`             // 中心死区半径（像素）
	InputHoldToleranceMs int64   `yaml:"inputHoldToleranceMs"` // 输入中断时保持悬停的时长
	IdleOpacity          float64 `yaml:"idleOpacity"`          // 未悬停元素不透明度
	InactiveOpacity      float64 `yaml:"inactiveOpacity"`      // 不活跃元素不透明度
	CenterOnCursor       bool    `yaml:"centerOnCursor"`       // 激活时以指针位置为中心
	ActivationKey        string  `yaml:"activationKey"`        // 按住打开、松开提交的按键，如 "Q"
	CommitOnClick        bool    `yaml:"commitOnClick"`        // 打开时左键点击也可提交

	Elements []ElementConfig `yaml:"elements"`
}

// ElementConfig 单个轮盘元素的配置
type ElementConfig struct {
	ID               uint32  `yaml:"id"`
	Nickname         string  `yaml:"nickname"`
	DisplayName      string  `yaml:"displayName"`
	Category         string  `yaml:"category"`         // 为空时使用轮盘名称
	Icon             string  `yaml:"icon"`             // 图标路径，为空时按 ID 查找
	Color            string  `yaml:"color"`            // 着色颜色 "#rrggbb" 或 "#rrggbbaa"
	ColorizeAmount   float64 `yaml:"colorizeAmount"`   // 着色程度 [0, 1]
	ShadowStrength   float64 `yaml:"shadowStrength"`   // 阴影强度 [0, 1]
	PremultiplyAlpha bool    `yaml:"premultiplyAlpha"` // 图标是否为预乘 alpha
	Keybind          string  `yaml:"keybind"`          // 选中后发送的按键，为空表示未绑定
}

// SettingsMenuConfig 设置菜单配置
type SettingsMenuConfig struct {
	Key       string   `yaml:"key"`       // 显示/隐藏设置菜单的按键
	Modifiers []string `yaml:"modifiers"` // 需要同时按下的修饰键：shift / alt / control
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:    1280,
			Height:   720,
			Title:    "Radial",
			FontSize: 14,
		},
		Wheel: WheelConfig{
			Name:                 "mounts",
			DisplayDelayMs:       0,
			FadeSpeed:            6,
			Radius:               120,
			PackingFactor:        0.66,
			DeadZone:             20,
			InputHoldToleranceMs: 100,
			IdleOpacity:          0.7,
			InactiveOpacity:      0.35,
			CenterOnCursor:       true,
			ActivationKey:        "Q",
			CommitOnClick:        true,
		},
		SettingsMenu: SettingsMenuConfig{
			Key:       "M",
			Modifiers: []string{"shift", "alt"},
		},
	}
}

// ParseConfig 解析 YAML 配置，缺失的字段保留默认值
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse wheel config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig 从文件系统加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wheel config file %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadEmbeddedConfig 从内嵌资源加载配置
func LoadEmbeddedConfig(path string) (*Config, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded wheel config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate 检查数值范围
// 重复的元素 ID 不在这里拒绝，由轮盘按加入顺序处理
func (c *Config) Validate() error {
	w := c.Wheel
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	case c.Window.FontSize <= 0:
		return fmt.Errorf("fontSize must be positive, got %v", c.Window.FontSize)
	case w.FadeSpeed <= 0:
		return fmt.Errorf("fadeSpeed must be positive, got %v", w.FadeSpeed)
	case w.Radius <= 0:
		return fmt.Errorf("radius must be positive, got %v", w.Radius)
	case w.PackingFactor <= 0 || w.PackingFactor > 1:
		return fmt.Errorf("packingFactor must be in (0, 1], got %v", w.PackingFactor)
	case w.DeadZone < 0 || w.DeadZone >= w.Radius:
		return fmt.Errorf("deadZone must be in [0, radius), got %v", w.DeadZone)
	case w.DisplayDelayMs < 0:
		return fmt.Errorf("displayDelayMs must not be negative, got %d", w.DisplayDelayMs)
	case w.InputHoldToleranceMs < 0:
		return fmt.Errorf("inputHoldToleranceMs must not be negative, got %d", w.InputHoldToleranceMs)
	case !unitRange(w.IdleOpacity) || !unitRange(w.InactiveOpacity):
		return fmt.Errorf("opacities must be in [0, 1]")
	}

	for i, e := range w.Elements {
		if e.Nickname == "" {
			return fmt.Errorf("element #%d (id %d) has no nickname", i, e.ID)
		}
		if !unitRange(e.ColorizeAmount) || !unitRange(e.ShadowStrength) {
			return fmt.Errorf("element %s: colorizeAmount and shadowStrength must be in [0, 1]", e.Nickname)
		}
		if _, err := ParseColor(e.Color); err != nil {
			return fmt.Errorf("element %s: %w", e.Nickname, err)
		}
	}
	return nil
}

func unitRange(v float64) bool {
	return v >= 0 && v <= 1
}

// Settings 转换为轮盘行为参数
func (w WheelConfig) Settings() wheel.Settings {
	return wheel.Settings{
		DisplayDelay:       wheel.MsTime(w.DisplayDelayMs),
		FadeSpeed:          w.FadeSpeed,
		Radius:             w.Radius,
		PackingFactor:      w.PackingFactor,
		DeadZone:           w.DeadZone,
		InputHoldTolerance: wheel.MsTime(w.InputHoldToleranceMs),
		IdleOpacity:        w.IdleOpacity,
		InactiveOpacity:    w.InactiveOpacity,
	}
}

// CategoryOf 元素的存储分类，未配置时使用轮盘名称
func (w WheelConfig) CategoryOf(e ElementConfig) string {
	if e.Category != "" {
		return e.Category
	}
	return w.Name
}

// DisplayNameOf 元素的显示名称，未配置时使用昵称
func (e ElementConfig) DisplayNameOf() string {
	if e.DisplayName != "" {
		return e.DisplayName
	}
	return e.Nickname
}

// ParseColor 解析 "#rrggbb" / "#rrggbbaa" 颜色，空字符串返回白色
func ParseColor(s string) (wheel.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return wheel.White, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return wheel.Color{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return wheel.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return wheel.Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
