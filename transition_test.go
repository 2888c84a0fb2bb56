package pin

import (
	"errors"
	"testing"

	"go.uber.org/zap"
)

// fakeNode records mutations and can be told to fail them.
type fakeNode struct {
	geometry Geometry
	style    string
	present  bool
	classes  map[string]bool
	shadows  int

	failCSS     error
	failShadow  error
	failRestore error
}

func newFakeNode(g Geometry) *fakeNode {
	return &fakeNode{geometry: g, classes: map[string]bool{}}
}

func (f *fakeNode) Offset() (Point, error) { return f.geometry.Offset, nil }
func (f *fakeNode) Position() (Point, error) { return f.geometry.Position, nil }
func (f *fakeNode) OuterSize() (Size, error) { return f.geometry.Size, nil }
func (f *fakeNode) Margin() (Edges, error) { return Edges{}, nil }
func (f *fakeNode) Container() (Rect, error) {
	if f.geometry.Container == nil {
		return Rect{}, errors.New("no parent")
	}
	return *f.geometry.Container, nil
}

func (f *fakeNode) StyleAttribute() (string, bool, error) { return f.style, f.present, nil }

func (f *fakeNode) SetStyleAttribute(value string, present bool) error {
	if f.failRestore != nil {
		return f.failRestore
	}
	f.style, f.present = value, present
	return nil
}

func (f *fakeNode) SetCSS(decls ...Declaration) error {
	if f.failCSS != nil {
		return f.failCSS
	}
	f.present = true
	for _, d := range decls {
		f.style += d.Property + ": " + d.Value + "; "
	}
	return nil
}

func (f *fakeNode) AddClass(class string) error { f.classes[class] = true; return nil }
func (f *fakeNode) RemoveClass(class string) error { delete(f.classes, class); return nil }

func (f *fakeNode) InsertShadow(string) (func() error, error) {
	if f.failShadow != nil {
		return nil, f.failShadow
	}
	f.shadows++
	return func() error { f.shadows--; return nil }, nil
}

func newTestManager(cfg Config, nodes ...Node) *Manager {
	m := &Manager{id: "test", cfg: cfg, logger: zap.NewNop()}
	for i, n := range nodes {
		m.states = append(m.states, &ElementPinState{index: i, node: n})
	}
	return m
}

func TestTransition_SnapshotLifecycle(t *testing.T) {
	node := newFakeNode(Geometry{Offset: Point{Y: 100}, Size: Size{Width: 50, Height: 20}})
	node.style, node.present = "color: red;", true
	m := newTestManager(DefaultConfig(), node)
	st := m.states[0]
	st.geometry = node.geometry

	if err := m.transition(st, Pinned); err != nil {
		t.Fatalf("transition(Pinned) error = %v", err)
	}
	if st.snapshot == nil || st.snapshot.value != "color: red;" {
		t.Fatalf("snapshot = %+v, want original style", st.snapshot)
	}

	// Parking must not overwrite the snapshot taken on pin.
	first := st.snapshot
	if err := m.transition(st, PinnedAtContainerBottom); err != nil {
		t.Fatalf("transition(Parked) error = %v", err)
	}
	if st.snapshot != first {
		t.Error("snapshot replaced while already pinned")
	}
	if node.shadows != 1 {
		t.Errorf("shadows = %d, want 1", node.shadows)
	}

	if err := m.transition(st, Unpinned); err != nil {
		t.Fatalf("transition(Unpinned) error = %v", err)
	}
	if st.snapshot != nil {
		t.Error("snapshot should be consumed on unpin")
	}
	if node.style != "color: red;" || !node.present {
		t.Errorf("style = %q, want original", node.style)
	}
	if node.shadows != 0 || len(node.classes) != 0 {
		t.Errorf("shadows=%d classes=%v after unpin, want none", node.shadows, node.classes)
	}
}

func TestTransition_SameStateIsNoop(t *testing.T) {
	node := newFakeNode(Geometry{})
	m := newTestManager(DefaultConfig(), node)

	if err := m.transition(m.states[0], Unpinned); err != nil {
		t.Fatalf("transition() error = %v", err)
	}
	if node.present || node.shadows != 0 {
		t.Error("no-op transition mutated the node")
	}
}

func TestTransition_FailedStyleStillRestorable(t *testing.T) {
	node := newFakeNode(Geometry{})
	m := newTestManager(DefaultConfig(), node)
	st := m.states[0]
	boom := errors.New("css failed")
	node.failCSS = boom

	if err := m.transition(st, Pinned); !errors.Is(err, boom) {
		t.Fatalf("transition() error = %v, want %v", err, boom)
	}
	if st.state != Pinned || st.snapshot == nil {
		t.Fatalf("state=%v snapshot=%v, want pinned with snapshot", st.state, st.snapshot)
	}

	node.failCSS = nil
	if err := m.transition(st, Unpinned); err != nil {
		t.Fatalf("transition(Unpinned) error = %v", err)
	}
	if node.present {
		t.Error("absent style attribute should be restored as absent")
	}
}

func TestRestore_AttemptsEveryStep(t *testing.T) {
	node := newFakeNode(Geometry{})
	m := newTestManager(DefaultConfig(), node)
	st := m.states[0]
	if err := m.transition(st, Pinned); err != nil {
		t.Fatalf("transition() error = %v", err)
	}

	node.failRestore = errors.New("readonly")
	err := m.restore(st)
	if err == nil {
		t.Fatal("restore() should report the failed style restore")
	}
	if node.shadows != 0 {
		t.Error("shadow should be removed even though the style restore failed")
	}
	if node.classes[DefaultClassName] {
		t.Error("pin class should be removed even though the style restore failed")
	}
	if st.snapshot != nil || st.state != Unpinned {
		t.Errorf("snapshot=%v state=%v, want consumed and unpinned", st.snapshot, st.state)
	}
}

func TestTransition_ShadowFailure(t *testing.T) {
	node := newFakeNode(Geometry{})
	node.failShadow = errors.New("no parent")
	m := newTestManager(DefaultConfig(), node)

	if err := m.transition(m.states[0], Pinned); err == nil {
		t.Fatal("transition() should fail when the shadow cannot be inserted")
	}
	if m.states[0].state != Unpinned {
		t.Errorf("state = %v, want unpinned", m.states[0].state)
	}
}
