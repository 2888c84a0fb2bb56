package dom

import (
	"testing"

	"github.com/grindlemire/go-pin/internal/event"
)

func TestWindow_ScrollClampsAndFires(t *testing.T) {
	doc := NewDocument(800, 600)
	doc.Body().AppendChild(New(WithHeight(1000)))
	w := doc.Window()

	fired := 0
	w.On(event.Scroll, "test", func() { fired++ })

	w.ScrollTo(5000)
	if got, _ := w.ScrollTop(); got != 400 {
		t.Errorf("ScrollTop() = %v, want 400", got)
	}
	w.ScrollTo(400)
	w.ScrollTo(-10)
	if got, _ := w.ScrollTop(); got != 0 {
		t.Errorf("ScrollTop() = %v, want 0", got)
	}
	if fired != 2 {
		t.Errorf("scroll fired %d times, want 2", fired)
	}

	w.DispatchScroll()
	if fired != 3 {
		t.Errorf("DispatchScroll fired %d total, want 3", fired)
	}
}

func TestWindow_Resize(t *testing.T) {
	doc := NewDocument(800, 600)
	doc.Body().AppendChild(New(WithHeight(1000)))
	w := doc.Window()
	w.ScrollTo(400)

	resized := 0
	w.On(event.Resize, "test", func() { resized++ })
	w.Resize(400, 900)

	if resized != 1 {
		t.Errorf("resize fired %d times, want 1", resized)
	}
	if got, _ := w.ScrollTop(); got != 100 {
		t.Errorf("ScrollTop() after resize = %v, want 100", got)
	}
	width, _ := w.Size()
	if width != 400 {
		t.Errorf("width = %v, want 400", width)
	}
}
