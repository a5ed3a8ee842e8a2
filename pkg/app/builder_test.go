package app

import (
	"errors"
	"testing"

	"github.com/decker502/radial/pkg/config"
	"github.com/decker502/radial/pkg/game"
	"github.com/decker502/radial/pkg/systems"
	"github.com/decker502/radial/pkg/wheel"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errMissingIcon = errors.New("missing icon")

// fakeIcons 内存贴图，missing 中的 ID 加载失败
type fakeIcons struct {
	paths   map[wheel.ElementID]string
	missing map[wheel.ElementID]bool
}

func newFakeIcons() *fakeIcons {
	return &fakeIcons{paths: make(map[wheel.ElementID]string), missing: make(map[wheel.ElementID]bool)}
}

func (f *fakeIcons) RegisterIcon(id wheel.ElementID, path string) { f.paths[id] = path }

func (f *fakeIcons) LoadTexture(id wheel.ElementID) (*wheel.Texture, error) {
	if f.missing[id] {
		return nil, errMissingIcon
	}
	return &wheel.Texture{Width: 64, Height: 64}, nil
}

func testWheelConfig() config.WheelConfig {
	cfg := config.DefaultConfig().Wheel
	cfg.Elements = []config.ElementConfig{
		{ID: 0, Nickname: "raptor", DisplayName: "Raptor", Keybind: "Digit1", Icon: "assets/icons/raptor.png"},
		{ID: 1, Nickname: "springer", Keybind: "Digit2", Category: "special"},
		{ID: 2, Nickname: "skimmer", Color: "#3388ff", ColorizeAmount: 0.5},
	}
	return cfg
}

func TestBuildWheel(t *testing.T) {
	icons := newFakeIcons()
	keybinds := systems.NewKeybindRegistry()

	res, err := BuildWheel(testWheelConfig(), nil, icons, keybinds)
	require.NoError(t, err)
	assert.Empty(t, res.Skipped)
	assert.Empty(t, res.Inconsistencies)

	w := res.Wheel
	assert.Equal(t, "mounts", w.Name())
	require.Len(t, w.Elements(), 3)
	assert.Equal(t, "assets/icons/raptor.png", icons.paths[0])

	raptor, _ := w.Element(0)
	assert.Equal(t, "Raptor", raptor.DisplayName())
	assert.Equal(t, "mounts", raptor.Category())
	assert.True(t, raptor.IsActive())

	springer, _ := w.Element(1)
	assert.Equal(t, "special", springer.Category())
	assert.Equal(t, "springer", springer.DisplayName())

	skimmer, _ := w.Element(2)
	assert.False(t, skimmer.IsActive(), "no keybind configured")
	assert.InDelta(t, 0.6, skimmer.Tint().R, 1e-9)
}

func TestBuildWheelActionDispatchesKeybind(t *testing.T) {
	keybinds := systems.NewKeybindRegistry()
	var fired []string
	keybinds.OnDispatch(func(nickname string, key ebiten.Key) {
		fired = append(fired, nickname+":"+key.String())
	})

	res, err := BuildWheel(testWheelConfig(), nil, newFakeIcons(), keybinds)
	require.NoError(t, err)
	w := res.Wheel

	w.SetCenter(0, 0)
	w.Trigger(0)
	w.Update(0, &wheel.Pointer{Angle: 0, Distance: 100})
	e, err := w.Commit()
	require.NoError(t, err)
	assert.Equal(t, wheel.ElementID(0), e.ID())
	assert.Equal(t, []string{"raptor:Digit1"}, fired)
}

func TestBuildWheelSkipsMissingIcons(t *testing.T) {
	icons := newFakeIcons()
	icons.missing[1] = true

	res, err := BuildWheel(testWheelConfig(), nil, icons, systems.NewKeybindRegistry())
	require.NoError(t, err)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, wheel.ElementID(1), res.Skipped[0].ID)
	assert.ErrorIs(t, res.Skipped[0], errMissingIcon)
	assert.Len(t, res.Wheel.Elements(), 2)
}

func TestBuildWheelReportsDuplicates(t *testing.T) {
	cfg := testWheelConfig()
	cfg.Elements = append(cfg.Elements, config.ElementConfig{ID: 0, Nickname: "copycat"})

	res, err := BuildWheel(cfg, nil, newFakeIcons(), systems.NewKeybindRegistry())
	require.NoError(t, err)
	require.Len(t, res.Inconsistencies, 1)
	assert.Equal(t, wheel.DuplicateID, res.Inconsistencies[0].Kind)
	assert.Len(t, res.Wheel.Elements(), 3)

	e, _ := res.Wheel.Element(0)
	assert.Equal(t, "raptor", e.Nickname(), "first insertion wins")
}

func TestBuildWheelAppliesStoredSettings(t *testing.T) {
	store := game.NewElementStore(nil)
	store.SaveElement("mounts", "raptor", wheel.ElementSettings{Visible: false, Priority: 10})

	res, err := BuildWheel(testWheelConfig(), store, newFakeIcons(), systems.NewKeybindRegistry())
	require.NoError(t, err)

	var order []wheel.ElementID
	for _, e := range res.Wheel.Elements() {
		order = append(order, e.ID())
	}
	assert.Equal(t, []wheel.ElementID{1, 2, 0}, order)
	assert.Equal(t, 2, res.Wheel.VisibleCount())
}

func TestBuildWheelRejectsBadKeybind(t *testing.T) {
	cfg := testWheelConfig()
	cfg.Elements[1].Keybind = "NotAKey"

	_, err := BuildWheel(cfg, nil, newFakeIcons(), systems.NewKeybindRegistry())
	assert.ErrorContains(t, err, "springer")
}
