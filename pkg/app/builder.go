package app

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/radial/pkg/config"
	"github.com/decker502/radial/pkg/systems"
	"github.com/decker502/radial/pkg/wheel"
)

// BuildResult 轮盘构建结果
type BuildResult struct {
	Wheel *wheel.Wheel
	// Skipped 因贴图无法加载而跳过的元素
	Skipped []*wheel.AssetLoadError
	// Inconsistencies 加入时发现的配置不一致（重复 ID 被丢弃，优先级冲突已重新编号）
	Inconsistencies []*wheel.ConfigurationInconsistency
}

// IconRegistrar 可按元素登记图标路径的贴图提供者
type IconRegistrar interface {
	wheel.AssetProvider
	RegisterIcon(id wheel.ElementID, path string)
}

// BuildWheel 根据配置创建轮盘及其元素
//
// 参数：
//   - cfg: 轮盘配置
//   - store: 元素设置存储，可为 nil
//   - assets: 贴图提供者
//   - keybinds: 快捷键注册表，元素动作通过它发出快捷键
//
// 返回：
//   - *BuildResult: 轮盘和逐元素的问题列表
//   - error: 只有配置本身无效（如快捷键名称无法解析）时返回
func BuildWheel(cfg config.WheelConfig, store wheel.ConfigStore, assets IconRegistrar, keybinds *systems.KeybindRegistry) (*BuildResult, error) {
	w := wheel.NewWheel(cfg.Name, cfg.Settings(), store)
	result := &BuildResult{Wheel: w}

	for _, ec := range cfg.Elements {
		if err := keybinds.Bind(ec.Nickname, ec.Keybind); err != nil {
			return nil, err
		}

		color, err := config.ParseColor(ec.Color)
		if err != nil {
			return nil, fmt.Errorf("element %s: %w", ec.Nickname, err)
		}

		assets.RegisterIcon(wheel.ElementID(ec.ID), ec.Icon)
		nickname := ec.Nickname
		e, err := wheel.NewElement(wheel.ElementSpec{
			ID:               wheel.ElementID(ec.ID),
			Nickname:         nickname,
			DisplayName:      ec.DisplayNameOf(),
			Category:         cfg.CategoryOf(ec),
			Color:            color,
			ColorizeAmount:   ec.ColorizeAmount,
			ShadowStrength:   ec.ShadowStrength,
			PremultiplyAlpha: ec.PremultiplyAlpha,
			Action:           func() { keybinds.Dispatch(nickname) },
		}, assets)
		if err != nil {
			var loadErr *wheel.AssetLoadError
			if errors.As(err, &loadErr) {
				log.Printf("[App] Warning: skipping element %s: %v", nickname, err)
				result.Skipped = append(result.Skipped, loadErr)
				continue
			}
			return nil, err
		}

		if err := w.AddElement(e); err != nil {
			var inc *wheel.ConfigurationInconsistency
			if !errors.As(err, &inc) {
				return nil, err
			}
			log.Printf("[App] Warning: %v", inc)
			result.Inconsistencies = append(result.Inconsistencies, inc)
		}
	}

	w.SyncKeybinds(keybinds)
	log.Printf("[App] Wheel %s built: %d elements, %d visible", cfg.Name, len(w.Elements()), w.VisibleCount())
	return result, nil
}
