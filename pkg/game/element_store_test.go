package game

import (
	"testing"

	"github.com/decker502/radial/pkg/wheel"
	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestGdata 在临时 HOME 下打开 gdata
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	m, err := gdata.Open(gdata.Config{AppName: appName})
	require.NoError(t, err, "failed to create gdata manager")
	return m
}

func TestElementStoreMemoryMode(t *testing.T) {
	store := NewElementStore(nil)
	assert.False(t, store.IsPersistent())

	_, ok := store.LoadElement("mounts", "raptor")
	assert.False(t, ok, "nothing saved yet")

	want := wheel.ElementSettings{Visible: false, Priority: 3, ColorizeAmount: 0.5}
	store.SaveElement("mounts", "raptor", want)

	got, ok := store.LoadElement("mounts", "raptor")
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestElementStorePersistsAcrossInstances(t *testing.T) {
	m := openTestGdata(t, "radial_store_test")

	first := NewElementStore(m)
	require.True(t, first.IsPersistent())
	want := wheel.ElementSettings{Visible: true, Priority: 7, ShadowStrength: 0.25}
	first.SaveElement("mounts", "Sky Scale", want)

	// 新实例没有缓存，必须从 gdata 读取
	second := NewElementStore(m)
	got, ok := second.LoadElement("mounts", "Sky Scale")
	require.True(t, ok)
	assert.Equal(t, want, got)

	_, ok = second.LoadElement("mounts", "griffon")
	assert.False(t, ok)
}

func TestElementStoreCorruptData(t *testing.T) {
	m := openTestGdata(t, "radial_store_corrupt")
	require.NoError(t, m.SaveObjectProp("mounts", "raptor", []byte("visible: [not a bool")))

	store := NewElementStore(m)
	_, ok := store.LoadElement("mounts", "raptor")
	assert.False(t, ok, "unparsable settings fall back to defaults")
}

func TestStorageKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"raptor", "raptor"},
		{"Sky Scale", "sky_scale"},
		{"  Roller-Beetle ", "roller_beetle"},
		{"mounts/special", "mounts_special"},
		{"", "_"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, storageKey(tt.input), tt.input)
	}
}
