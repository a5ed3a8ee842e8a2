package wheel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeAssets 按 ID 返回固定尺寸的贴图，missing 中的 ID 返回错误
type fakeAssets struct {
	width, height int
	missing       map[ElementID]bool
	calls         int
}

var errNoSuchAsset = errors.New("no such asset")

func (f *fakeAssets) LoadTexture(id ElementID) (*Texture, error) {
	f.calls++
	if f.missing[id] {
		return nil, errNoSuchAsset
	}
	return &Texture{Width: f.width, Height: f.height}, nil
}

// memStore 内存配置存储
type memStore struct {
	data  map[string]ElementSettings
	saves int
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]ElementSettings)}
}

func (m *memStore) LoadElement(category, nickname string) (ElementSettings, bool) {
	s, ok := m.data[category+"/"+nickname]
	return s, ok
}

func (m *memStore) SaveElement(category, nickname string, s ElementSettings) {
	m.saves++
	m.data[category+"/"+nickname] = s
}

// keybinds 快捷键注册表，nil 表示全部已绑定
type keybinds map[string]bool

func (k keybinds) HasKeybind(nickname string) bool {
	if k == nil {
		return true
	}
	return k[nickname]
}

var nickNames = []string{"raptor", "springer", "skimmer", "jackal", "griffon", "beetle", "warclaw", "skyscale"}

func nicknameFor(id ElementID) string {
	if int(id) < len(nickNames) {
		return nickNames[id]
	}
	return "element"
}

// newTestElement 创建一个 64x32 贴图、带计数动作的元素
func newTestElement(t *testing.T, id ElementID, fired *int) *Element {
	t.Helper()
	e, err := NewElement(ElementSpec{
		ID:          id,
		Nickname:    nicknameFor(id),
		DisplayName: "Mount " + nicknameFor(id),
		Category:    "mounts",
		Texture:     &Texture{Width: 64, Height: 32},
		Action: func() {
			if fired != nil {
				*fired++
			}
		},
	}, nil)
	require.NoError(t, err)
	return e
}

// testSettings 便于手算的参数：无显示延迟、无死区外的特殊处理
func testSettings() Settings {
	s := DefaultSettings()
	s.DisplayDelay = 0
	return s
}

// newTestWheel 创建包含 n 个元素（ID 0..n-1，全部已绑定快捷键）的轮盘
func newTestWheel(t *testing.T, n int, store ConfigStore) (*Wheel, *int) {
	t.Helper()
	fired := new(int)
	w := NewWheel("test", testSettings(), store)
	w.SetCenter(400, 300)
	for i := 0; i < n; i++ {
		require.NoError(t, w.AddElement(newTestElement(t, ElementID(i), fired)))
	}
	w.SyncKeybinds(keybinds(nil))
	return w, fired
}

func ids(elements []*Element) []ElementID {
	out := make([]ElementID, len(elements))
	for i, e := range elements {
		out[i] = e.ID()
	}
	return out
}

func pointerAt(angle float64) *Pointer {
	return &Pointer{Angle: angle, Distance: 100}
}
