package imageinfo

import "testing"

func TestDisplaySize_NoExplicitDimensionsUsesIntrinsicAtDPI(t *testing.T) {
	info := Info{WidthPx: 192, HeightPx: 96}
	w, h := DisplaySize(info, 0, 0, 96, true)
	if w != 144 || h != 72 {
		t.Errorf("got w=%v h=%v, want w=144 h=72", w, h)
	}
}

func TestDisplaySize_UniformScalingPreservesAspectRatio(t *testing.T) {
	info := Info{WidthPx: 200, HeightPx: 100}
	w, h := DisplaySize(info, 50, 50, 72, true)
	if w > 50+0.01 || h > 50+0.01 {
		t.Errorf("expected scaled image to fit within 50x50 box, got %vx%v", w, h)
	}
	ratio := w / h
	if ratio < 1.9 || ratio > 2.1 {
		t.Errorf("expected aspect ratio ~2.0, got %v", ratio)
	}
}

func TestDisplaySize_NonUniformUsesExactBox(t *testing.T) {
	info := Info{WidthPx: 200, HeightPx: 100}
	w, h := DisplaySize(info, 50, 80, 72, false)
	if w != 50 || h != 80 {
		t.Errorf("got w=%v h=%v, want exact box 50x80", w, h)
	}
}
