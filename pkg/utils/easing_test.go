package utils

import (
	"math"
	"testing"
)

// TestSmoothStep 测试平滑阶梯函数
func TestSmoothStep(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.5},
		{"四分之一", 0.25, 0.15625}, // 0.0625 * 2.5
		{"低于下限", -1.0, 0.0},
		{"高于上限", 2.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SmoothStep(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("SmoothStep(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}

	t.Run("单调不减", func(t *testing.T) {
		prev := SmoothStep(0)
		for p := 0.05; p <= 1.0; p += 0.05 {
			cur := SmoothStep(p)
			if cur < prev {
				t.Errorf("SmoothStep(%v) = %v 小于前一个值 %v", p, cur, prev)
			}
			prev = cur
		}
	})
}

// TestLerp 测试线性插值函数
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		b        float64
		t        float64
		expected float64
	}{
		{"起点", 0.0, 100.0, 0.0, 0.0},
		{"中点", 0.0, 100.0, 0.5, 50.0},
		{"终点", 0.0, 100.0, 1.0, 100.0},
		{"悬停放大上限", 1.0, 1.1, 1.0, 1.1},
		{"负数范围", -50.0, 50.0, 0.5, 0.0},
		{"逆向范围", 100.0, 0.0, 0.5, 50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, result, tt.expected)
			}
		})
	}
}

// TestClamp01 测试区间限制
func TestClamp01(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.3, 0.3},
		{1, 1},
		{7, 1},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		if got := Clamp01(tt.input); got != tt.expected {
			t.Errorf("Clamp01(%v) = %v, 期望 %v", tt.input, got, tt.expected)
		}
	}
}

// TestFadeProgress 测试淡入进度计算
func TestFadeProgress(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  float64
		speed    float64
		expected float64
	}{
		{"尚未开始", -100, 6, 0},
		{"刚开始", 0, 6, 0},
		{"50ms", 50, 6, 0.3},
		{"完整过渡约 167ms", 167, 6, 1.0},
		{"超过终点", 1000, 6, 1},
		{"速度为 1", 500, 1, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FadeProgress(tt.elapsed, tt.speed)
			if math.Abs(result-tt.expected) > 0.005 {
				t.Errorf("FadeProgress(%v, %v) = %v, 期望 %v", tt.elapsed, tt.speed, result, tt.expected)
			}
		})
	}
}
