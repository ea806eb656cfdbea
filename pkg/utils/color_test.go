package utils

import (
	"image/color"
	"testing"
)

// TestNormalizeHue 测试色相折回
func TestNormalizeHue(t *testing.T) {
	tests := []struct {
		input, expected float64
	}{
		{0, 0},
		{120, 120},
		{360, 0},
		{480, 120},
		{-20, 340},
		{725.5, 5.5},
	}
	for _, tt := range tests {
		if got := NormalizeHue(tt.input); got != tt.expected {
			t.Errorf("NormalizeHue(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

// TestHSLPrimaries 测试基本色转换
func TestHSLPrimaries(t *testing.T) {
	tests := []struct {
		name     string
		hue      float64
		expected color.NRGBA
	}{
		{"红", 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255}},
		{"绿", 120, color.NRGBA{R: 0, G: 255, B: 0, A: 255}},
		{"蓝", 240, color.NRGBA{R: 0, G: 0, B: 255, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSL(tt.hue, 100, 50); got != tt.expected {
				t.Errorf("HSL(%v, 100, 50) = %v, want %v", tt.hue, got, tt.expected)
			}
		})
	}
}

// TestHSLAWrapsHue 超过 360 的色相与折回后的色相颜色一致
func TestHSLAWrapsHue(t *testing.T) {
	if HSLA(480, 100, 60, 0.5) != HSLA(120, 100, 60, 0.5) {
		t.Error("hue 480 should render like hue 120")
	}
}

// TestHSLAAlpha 测试透明度换算与截断
func TestHSLAAlpha(t *testing.T) {
	if got := HSLA(0, 100, 50, 0.5).A; got != 128 {
		t.Errorf("alpha 0.5: got %d, want 128", got)
	}
	if got := HSLA(0, 100, 50, -0.2).A; got != 0 {
		t.Errorf("negative alpha: got %d, want 0", got)
	}
	if got := HSLA(0, 100, 50, 1.5).A; got != 255 {
		t.Errorf("alpha > 1: got %d, want 255", got)
	}
}
