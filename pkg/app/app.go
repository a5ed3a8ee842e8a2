// Package app 提供轮盘应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 cmd/radial 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/radial/pkg/config"
	"github.com/decker502/radial/pkg/game"
	"github.com/decker502/radial/pkg/modules"
	"github.com/decker502/radial/pkg/systems"
	"github.com/decker502/radial/pkg/utils"
	"github.com/decker502/radial/pkg/wheel"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultAppName gdata 存储使用的应用名
const DefaultAppName = "radial"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 轮盘配置文件路径，为空则使用内嵌的默认配置
	ConfigPath string
	// AppName gdata 存储使用的应用名，为空则使用 DefaultAppName
	AppName string
	// Memory 不落盘，元素设置只保存在内存中
	Memory bool
}

// App 是轮盘应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg *config.Config

	wheel        *wheel.Wheel
	inputSystem  *systems.WheelInputSystem
	renderSystem *systems.WheelRenderSystem
	settingsMenu *modules.SettingsMenuModule

	status string // 最近一次发出的快捷键

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// LoadConfig 按启动配置加载轮盘配置
func LoadConfig(cfg Config) (*config.Config, error) {
	if cfg.ConfigPath != "" {
		return config.LoadConfig(cfg.ConfigPath)
	}
	return config.LoadEmbeddedConfig(config.DefaultConfigPath)
}

// NewApp 创建并初始化轮盘应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化内嵌资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	wheelCfg, err := LoadConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("轮盘配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载轮盘配置: %d 个元素", len(wheelCfg.Wheel.Elements))

	appName := cfg.AppName
	if appName == "" {
		appName = DefaultAppName
	}
	store := game.NewElementStore(nil)
	if !cfg.Memory {
		store = game.OpenElementStore(appName)
	}
	log.Printf("[App] Element settings persisted: %v", store.IsPersistent())

	resourceManager := game.NewResourceManager()
	keybinds := systems.NewKeybindRegistry()

	built, err := BuildWheel(wheelCfg.Wheel, store, resourceManager, keybinds)
	if err != nil {
		return nil, fmt.Errorf("轮盘创建失败: %w", err)
	}
	if len(built.Skipped) > 0 {
		log.Printf("[App] %d elements skipped because their icons could not be loaded", len(built.Skipped))
	}

	activation, err := utils.ParseKey(wheelCfg.Wheel.ActivationKey)
	if err != nil {
		return nil, fmt.Errorf("activationKey: %w", err)
	}
	menuKey, err := utils.ParseKey(wheelCfg.SettingsMenu.Key)
	if err != nil {
		return nil, fmt.Errorf("settingsMenu.key: %w", err)
	}
	modifiers, err := utils.ParseModifiers(wheelCfg.SettingsMenu.Modifiers)
	if err != nil {
		return nil, fmt.Errorf("settingsMenu.modifiers: %w", err)
	}

	a := &App{
		cfg:   wheelCfg,
		wheel: built.Wheel,
	}

	keybinds.OnDispatch(func(nickname string, key ebiten.Key) {
		a.status = fmt.Sprintf("%s -> %s", nickname, key)
	})

	a.inputSystem = systems.NewWheelInputSystem(built.Wheel, systems.WheelInputOptions{
		ActivationKey:  activation,
		CenterOnCursor: wheelCfg.Wheel.CenterOnCursor,
		CommitOnClick:  wheelCfg.Wheel.CommitOnClick,
		ScreenWidth:    wheelCfg.Window.Width,
		ScreenHeight:   wheelCfg.Window.Height,
	})
	a.renderSystem = systems.NewWheelRenderSystem(built.Wheel, resourceManager)
	a.settingsMenu = modules.NewSettingsMenuModule(built.Wheel, menuKey, modifiers, 20, 20)
	a.settingsMenu.SetOnVisibilityChange(a.inputSystem.SetBlocked)

	// 字体加载失败时退回调试字体
	if face, err := resourceManager.LoadFont(wheelCfg.Window.Font, wheelCfg.Window.FontSize); err != nil {
		log.Printf("[App] Warning: %v (using debug font)", err)
	} else {
		a.renderSystem.LabelFont = face
		a.settingsMenu.SetLabelFont(face)
	}

	log.Printf("[App] Ready: hold %s to open the wheel, %v+%s for settings",
		wheelCfg.Wheel.ActivationKey, wheelCfg.SettingsMenu.Modifiers, wheelCfg.SettingsMenu.Key)
	return a, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// 菜单先处理：它排队的优先级调整由本帧的轮盘更新应用
	a.settingsMenu.Update()
	a.inputSystem.Update()
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 30, G: 34, B: 44, A: 255})

	a.renderSystem.Draw(screen, a.inputSystem.Renderables())
	a.settingsMenu.Draw(screen)

	if a.status != "" {
		ebitenutil.DebugPrintAt(screen, "Last keybind: "+a.status, 8, a.cfg.Window.Height-20)
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// WindowConfig 返回窗口配置
func (a *App) WindowConfig() config.WindowConfig {
	return a.cfg.Window
}

// Wheel 返回轮盘
func (a *App) Wheel() *wheel.Wheel {
	return a.wheel
}
