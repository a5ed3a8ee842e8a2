package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// TestParseKey 测试按键名称解析
func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		want    ebiten.Key
		wantErr bool
	}{
		{"Q", ebiten.KeyQ, false},
		{"M", ebiten.KeyM, false},
		{"Digit1", ebiten.KeyDigit1, false},
		{" F5 ", ebiten.KeyF5, false},
		{"", 0, true},
		{"NotAKey", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseKey(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseKey(%q): expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseKey(%q): unexpected error %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKey(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// TestParseModifiers 测试修饰键解析
func TestParseModifiers(t *testing.T) {
	keys, err := ParseModifiers([]string{"Shift", "alt", "ctrl", "control", "meta"})
	if err != nil {
		t.Fatalf("ParseModifiers: %v", err)
	}
	want := []ebiten.Key{ebiten.KeyShift, ebiten.KeyAlt, ebiten.KeyControl, ebiten.KeyControl, ebiten.KeyMeta}
	if len(keys) != len(want) {
		t.Fatalf("got %d keys, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("modifier %d = %v, want %v", i, keys[i], want[i])
		}
	}

	if _, err := ParseModifiers([]string{"shift", "hyper"}); err == nil {
		t.Error("expected error for unknown modifier")
	}
}
