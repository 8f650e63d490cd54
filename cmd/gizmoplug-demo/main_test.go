package main

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Maurichilean3d/Gizmoplug/internal/engine/selection"
)

func TestClickOp(t *testing.T) {
	tests := []struct {
		name string
		mod  sdl.Keymod
		want selection.Op
	}{
		{"no modifiers", sdl.KMOD_NONE, selection.OpReplace},
		{"shift", sdl.KMOD_LSHIFT, selection.OpAdd},
		{"ctrl", sdl.KMOD_RCTRL, selection.OpSubtract},
		{"shift and ctrl", sdl.KMOD_LSHIFT | sdl.KMOD_LCTRL, selection.OpToggle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clickOp(tt.mod); got != tt.want {
				t.Errorf("clickOp(%v) = %v, want %v", tt.mod, got, tt.want)
			}
		})
	}
}

func TestDragOp(t *testing.T) {
	tests := []struct {
		name string
		mod  sdl.Keymod
		want selection.Op
	}{
		{"no modifiers", sdl.KMOD_NONE, selection.OpReplace},
		{"shift", sdl.KMOD_LSHIFT, selection.OpAdd},
		{"ctrl", sdl.KMOD_RCTRL, selection.OpSubtract},
		// A marquee never toggles; ctrl wins when both are held.
		{"shift and ctrl", sdl.KMOD_LSHIFT | sdl.KMOD_LCTRL, selection.OpSubtract},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dragOp(tt.mod); got != tt.want {
				t.Errorf("dragOp(%v) = %v, want %v", tt.mod, got, tt.want)
			}
		})
	}
}
