package game

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/decker502/radial/pkg/utils"
	"github.com/decker502/radial/pkg/wheel"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ElementStore 轮盘元素设置的持久化存储
//
// 每个元素的设置单独保存为一个 gdata 属性：对象为元素分类，属性为元素昵称，
// 内容为 YAML。gdata 不可用时退化为纯内存存储，行为与正常模式一致，只是不落盘。
//
// 实现 wheel.ConfigStore 接口。
type ElementStore struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式）

	mu    sync.Mutex
	cache map[string]wheel.ElementSettings
}

// NewElementStore 创建元素设置存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
//
// 返回：
//   - *ElementStore: 存储实例
func NewElementStore(gdataManager *gdata.Manager) *ElementStore {
	return &ElementStore{
		gdataManager: gdataManager,
		cache:        make(map[string]wheel.ElementSettings),
	}
}

// OpenElementStore 打开指定应用名的 gdata 存储
// 打开失败时记录警告并返回降级模式的存储
func OpenElementStore(appName string) *ElementStore {
	if err := utils.EnsureStorageDir(appName); err != nil {
		log.Printf("[ElementStore] Warning: %v", err)
	} else if dir := utils.StorageDir(appName); dir != "" {
		log.Printf("[ElementStore] Storage dir: %s", dir)
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[ElementStore] Warning: gdata unavailable: %v (settings kept in memory)", err)
		return NewElementStore(nil)
	}
	return NewElementStore(m)
}

// IsPersistent 是否能够落盘
func (s *ElementStore) IsPersistent() bool {
	return s.gdataManager != nil
}

// LoadElement 读取元素设置
//
// 返回：
//   - wheel.ElementSettings: 已保存的设置
//   - bool: 是否存在已保存的设置；读取或解析失败视为不存在
func (s *ElementStore) LoadElement(category, nickname string) (wheel.ElementSettings, bool) {
	object, prop := storageKey(category), storageKey(nickname)
	key := object + "/" + prop

	s.mu.Lock()
	defer s.mu.Unlock()

	if settings, ok := s.cache[key]; ok {
		return settings, true
	}
	if s.gdataManager == nil || !s.gdataManager.ObjectPropExists(object, prop) {
		return wheel.ElementSettings{}, false
	}

	settings, err := s.read(object, prop)
	if err != nil {
		log.Printf("[ElementStore] Warning: %v (using defaults)", err)
		return wheel.ElementSettings{}, false
	}
	s.cache[key] = settings
	return settings, true
}

func (s *ElementStore) read(object, prop string) (wheel.ElementSettings, error) {
	data, err := s.gdataManager.LoadObjectProp(object, prop)
	if err != nil {
		return wheel.ElementSettings{}, fmt.Errorf("failed to load element settings %s/%s: %w", object, prop, err)
	}
	var settings wheel.ElementSettings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return wheel.ElementSettings{}, fmt.Errorf("failed to unmarshal element settings %s/%s: %w", object, prop, err)
	}
	return settings, nil
}

// SaveElement 保存元素设置
// 内存缓存总会更新；落盘失败只记录日志
func (s *ElementStore) SaveElement(category, nickname string, settings wheel.ElementSettings) {
	object, prop := storageKey(category), storageKey(nickname)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[object+"/"+prop] = settings
	if s.gdataManager == nil {
		return
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		log.Printf("[ElementStore] Warning: failed to marshal %s/%s: %v", object, prop, err)
		return
	}
	if err := s.gdataManager.SaveObjectProp(object, prop, data); err != nil {
		log.Printf("[ElementStore] Warning: failed to save %s/%s: %v", object, prop, err)
		return
	}
	log.Printf("[ElementStore] Saved %s/%s (visible=%v, priority=%d)", object, prop, settings.Visible, settings.Priority)
}

// storageKey 把任意名称转换为 gdata 可用的键（小写字母、数字、下划线）
func storageKey(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "_"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
