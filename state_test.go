package pin

import (
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	type tc struct {
		geometry Geometry
		cfg      Config
		scroll   float64
		want     LifecycleState
	}

	free := Geometry{Offset: Point{Y: 500}, Size: Size{Width: 100, Height: 100}}
	contained := Geometry{
		Offset:    Point{Y: 0},
		Size:      Size{Width: 100, Height: 100},
		Container: &Rect{Y: 0, Height: 1000},
	}
	spaced := Config{TopSpacing: 10}
	containCfg := Config{Contain: true, BottomSpacing: 20}

	tests := map[string]tc{
		"above threshold stays unpinned": {
			geometry: free, cfg: spaced, scroll: 489, want: Unpinned,
		},
		"exact threshold pins": {
			geometry: free, cfg: spaced, scroll: 490, want: Pinned,
		},
		"far below pins without contain": {
			geometry: free, cfg: spaced, scroll: 1e6, want: Pinned,
		},
		"contain ignored without container": {
			geometry: free, cfg: Config{Contain: true}, scroll: 1e6, want: Pinned,
		},
		"before contain threshold": {
			geometry: contained, cfg: containCfg, scroll: 879, want: Pinned,
		},
		"exact contain threshold parks": {
			geometry: contained, cfg: containCfg, scroll: 880, want: PinnedAtContainerBottom,
		},
		"past container parks": {
			geometry: contained, cfg: containCfg, scroll: 5000, want: PinnedAtContainerBottom,
		},
		"unpin wins over contain": {
			geometry: Geometry{
				Offset:    Point{Y: 500},
				Size:      Size{Height: 400},
				Container: &Rect{Y: 0, Height: 600},
			},
			cfg:    containCfg,
			scroll: 300,
			want:   Unpinned,
		},
		"short container parks at pin threshold": {
			geometry: Geometry{
				Offset:    Point{Y: 500},
				Size:      Size{Height: 400},
				Container: &Rect{Y: 0, Height: 600},
			},
			cfg:    containCfg,
			scroll: 500,
			want:   PinnedAtContainerBottom,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Evaluate(tt.geometry, tt.cfg, tt.scroll); got != tt.want {
				t.Errorf("Evaluate(scroll=%v) = %v, want %v", tt.scroll, got, tt.want)
			}
		})
	}
}

func TestGeometry_ContainedTop(t *testing.T) {
	cfg := Config{Contain: true, BottomSpacing: 20}

	type tc struct {
		geometry Geometry
		want     float64
	}

	tests := map[string]tc{
		"container is document": {
			geometry: Geometry{
				Size:      Size{Height: 100},
				Container: &Rect{Y: 0, Height: 1000},
			},
			want: 880,
		},
		"container is offset parent": {
			geometry: Geometry{
				Offset:    Point{Y: 250},
				Position:  Point{Y: 50},
				Size:      Size{Height: 100},
				Container: &Rect{Y: 200, Height: 1000},
			},
			want: 1080 - 200,
		},
		"no container keeps position": {
			geometry: Geometry{Position: Point{Y: 42}},
			want:     42,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.geometry.ContainedTop(cfg); got != tt.want {
				t.Errorf("ContainedTop() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGeometry_Finite(t *testing.T) {
	if !(Geometry{}).finite() {
		t.Error("zero geometry should be finite")
	}
	if (Geometry{Offset: Point{Y: math.NaN()}}).finite() {
		t.Error("NaN offset should not be finite")
	}
	if (Geometry{Container: &Rect{Height: math.Inf(1)}}).finite() {
		t.Error("infinite container should not be finite")
	}
}

func TestLifecycleState_String(t *testing.T) {
	tests := map[LifecycleState]string{
		Unpinned:                "unpinned",
		Pinned:                  "pinned",
		PinnedAtContainerBottom: "pinned-at-container-bottom",
		LifecycleState(9):       "LifecycleState(9)",
	}
	for state, want := range tests {
		if got := state.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
