package raster

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/chainscope/chainscope/pkg/layout"
	"github.com/chainscope/chainscope/pkg/render"
	"github.com/chainscope/chainscope/pkg/trace"
)

func TestLogicalSize(t *testing.T) {
	s := New(320, 240, 2)
	w, h := s.LogicalSize()
	if w != 320 || h != 240 {
		t.Errorf("LogicalSize() = (%v, %v), want (320, 240)", w, h)
	}
}

func TestScaleBacksHighDensityImage(t *testing.T) {
	s := New(100, 50, 2)
	bounds := s.Image().Bounds()
	if bounds.Dx() != 200 || bounds.Dy() != 100 {
		t.Errorf("backing image = %dx%d, want 200x100", bounds.Dx(), bounds.Dy())
	}
}

func TestScaleBelowOneClamped(t *testing.T) {
	s := New(100, 50, 0)
	bounds := s.Image().Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 50 {
		t.Errorf("backing image = %dx%d, want 100x50", bounds.Dx(), bounds.Dy())
	}
}

func TestPNGEncodesValidImage(t *testing.T) {
	s := New(120, 80, 1)
	l := layout.Compute("0xfocal", []trace.Transaction{
		{TxID: "tx-1", From: "0xfocal", To: "0xpeer"},
	}, 120, 80)
	render.Render(s, &l)

	data, err := s.PNG()
	if err != nil {
		t.Fatalf("PNG() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 120 || img.Bounds().Dy() != 80 {
		t.Errorf("decoded size = %dx%d, want 120x80", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestClearOverwritesPreviousFrame(t *testing.T) {
	s := New(20, 20, 1)
	s.Clear("#ff0000")
	s.Clear("#000000")

	img := s.Image()
	r, g, b, _ := img.At(10, 10).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("pixel after second clear = (%d, %d, %d), want black", r, g, b)
	}
}

func TestHexRGB(t *testing.T) {
	tests := []struct {
		color   string
		r, g, b float64
	}{
		{"#ffffff", 1, 1, 1},
		{"#000000", 0, 0, 0},
		{"#ff0000", 1, 0, 0},
		{"not-a-color", 0, 0, 0},
		{"", 0, 0, 0},
	}

	for _, tt := range tests {
		r, g, b := hexRGB(tt.color)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("hexRGB(%q) = (%v, %v, %v), want (%v, %v, %v)",
				tt.color, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
