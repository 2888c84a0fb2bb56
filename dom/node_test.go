package dom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/grindlemire/go-pin/internal/layout"
)

func TestSetCSS_PreservesOrder(t *testing.T) {
	n := New(WithStyle("color: red; top: 4px;"))
	_ = n.SetCSS(
		layout.Declaration{Property: "top", Value: "0px"},
		layout.Declaration{Property: "position", Value: "fixed"},
	)

	style, ok, _ := n.StyleAttribute()
	if !ok {
		t.Fatal("style attribute should be present")
	}
	if want := "color: red; top: 0px; position: fixed;"; style != want {
		t.Errorf("style = %q, want %q", style, want)
	}
}

func TestSetStyleAttribute_Absent(t *testing.T) {
	n := New()
	_ = n.SetCSS(layout.Declaration{Property: "top", Value: "1px"})
	_ = n.SetStyleAttribute("ignored", false)

	style, ok, _ := n.StyleAttribute()
	if ok || style != "" {
		t.Errorf("StyleAttribute() = %q, %v, want empty and absent", style, ok)
	}
}

func TestClasses(t *testing.T) {
	n := New(WithClass("a", "b", "a"))
	_ = n.AddClass("c")
	_ = n.RemoveClass("a")

	if diff := cmp.Diff([]string{"b", "c"}, n.Classes()); diff != "" {
		t.Errorf("Classes() mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertShadow(t *testing.T) {
	doc := NewDocument(800, 600)
	target := New(WithID("target"), WithClass("nav"), WithHeight(40))
	after := New(WithID("after"), WithHeight(10))
	doc.Body().AppendChild(target, after)

	remove, err := target.InsertShadow("pin-clone")
	if err != nil {
		t.Fatalf("InsertShadow() error = %v", err)
	}

	shadow := target.NextSibling()
	if shadow == after || shadow == nil {
		t.Fatal("shadow should be inserted right after the target")
	}
	if !shadow.HasClass("pin-clone") || !shadow.HasClass("nav") {
		t.Errorf("shadow classes = %v", shadow.Classes())
	}
	if shadow.CSS("visibility") != "hidden" {
		t.Errorf("shadow visibility = %q, want hidden", shadow.CSS("visibility"))
	}
	if shadow.ID() != "" {
		t.Errorf("shadow id = %q, want empty", shadow.ID())
	}
	if got := len(doc.GetElementsByClassName("pin-clone")); got != 1 {
		t.Errorf("found %d shadows, want 1", got)
	}

	// The shadow keeps the space the target would take in flow.
	_ = target.SetCSS(layout.Declaration{Property: "position", Value: "fixed"})
	off, _ := after.Offset()
	if off.Y != 40 {
		t.Errorf("after Offset().Y = %v, want 40", off.Y)
	}

	if err := remove(); err != nil {
		t.Fatalf("remove() error = %v", err)
	}
	if target.NextSibling() != after {
		t.Error("shadow should be gone after remove()")
	}
	if err := remove(); err != nil {
		t.Errorf("second remove() error = %v", err)
	}
}

func TestGetElementByID(t *testing.T) {
	doc := NewDocument(100, 100)
	inner := New(WithID("inner"))
	doc.Body().AppendChild(New(WithChildren(inner)))

	if got := doc.GetElementByID("inner"); got != inner {
		t.Errorf("GetElementByID() = %v, want inner", got)
	}
	if got := doc.GetElementByID("missing"); got != nil {
		t.Errorf("GetElementByID(missing) = %v, want nil", got)
	}
}
