package pin

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

// transition moves st to target, mutating the element's style and firing
// callbacks. Style changes are applied before callbacks run.
func (m *Manager) transition(st *ElementPinState, target LifecycleState) error {
	from := st.state
	if from == target {
		return nil
	}

	if target == Unpinned {
		if err := m.restore(st); err != nil {
			return err
		}
		m.logger.Debug("unpinned", m.fields(st, zap.Stringer("from", from))...)
		return m.notifyUnpin(st)
	}

	if from == Unpinned {
		if err := m.detach(st); err != nil {
			return err
		}
	}

	var err error
	switch target {
	case Pinned:
		err = m.applyFixed(st)
	case PinnedAtContainerBottom:
		err = m.applyContained(st)
	}
	// The element left normal flow even if a declaration failed; record it
	// so that the next unpin restores the snapshot.
	st.state = target
	if err != nil {
		return fmt.Errorf("element %d: apply %s: %w", st.index, target, err)
	}
	m.logger.Debug("transition", m.fields(st, zap.Stringer("from", from), zap.Stringer("to", target))...)

	if from == Unpinned {
		return m.notifyPin(st)
	}
	return nil
}

// detach snapshots the original style, reserves the element's space and
// adds the pin class. An existing snapshot is never overwritten.
func (m *Manager) detach(st *ElementPinState) error {
	snap := st.snapshot
	if snap == nil {
		value, present, err := st.node.StyleAttribute()
		if err != nil {
			return fmt.Errorf("element %d: read style: %w", st.index, err)
		}
		snap = &styleSnapshot{value: value, present: present}
	}
	if m.cfg.ReserveSpace && st.removeShadow == nil {
		remove, err := st.node.InsertShadow(m.cfg.ShadowClass())
		if err != nil {
			return fmt.Errorf("element %d: insert shadow: %w", st.index, err)
		}
		st.removeShadow = remove
	}
	if err := st.node.AddClass(m.cfg.ClassName); err != nil {
		return fmt.Errorf("element %d: add class: %w", st.index, err)
	}
	st.snapshot = snap
	return nil
}

func (m *Manager) applyFixed(st *ElementPinState) error {
	g := st.geometry
	if err := st.node.RemoveClass(m.cfg.ContainedClass()); err != nil {
		return err
	}
	return st.node.SetCSS(
		Declaration{Property: "position", Value: "fixed"},
		Declaration{Property: "left", Value: Px(g.Offset.X)},
		Declaration{Property: "top", Value: Px(m.cfg.TopSpacing)},
		Declaration{Property: "width", Value: Px(g.Size.Width)},
		Declaration{Property: "z-index", Value: strconv.Itoa(m.cfg.ZIndex)},
	)
}

func (m *Manager) applyContained(st *ElementPinState) error {
	g := st.geometry
	if err := st.node.SetCSS(
		Declaration{Property: "position", Value: "absolute"},
		Declaration{Property: "left", Value: Px(g.Position.X)},
		Declaration{Property: "top", Value: Px(g.ContainedTop(m.cfg))},
		Declaration{Property: "width", Value: Px(g.Size.Width)},
		Declaration{Property: "z-index", Value: strconv.Itoa(m.cfg.ZIndex)},
	); err != nil {
		return err
	}
	return st.node.AddClass(m.cfg.ContainedClass())
}

// applyHard pins the element where it stands, without scroll tracking.
func (m *Manager) applyHard(st *ElementPinState) error {
	if err := m.detach(st); err != nil {
		return err
	}
	g := st.geometry
	if err := st.node.SetCSS(
		Declaration{Property: "position", Value: "fixed"},
		Declaration{Property: "left", Value: Px(g.Offset.X)},
		Declaration{Property: "top", Value: Px(g.Offset.Y)},
		Declaration{Property: "width", Value: Px(g.Size.Width)},
		Declaration{Property: "z-index", Value: strconv.Itoa(m.cfg.ZIndex)},
	); err != nil {
		return fmt.Errorf("element %d: apply hard pin: %w", st.index, err)
	}
	st.state = Pinned
	return nil
}

// restore returns the element to normal flow: the shadow is removed, the
// style attribute is put back verbatim and the snapshot is consumed. Every
// step is attempted even if an earlier one fails.
func (m *Manager) restore(st *ElementPinState) error {
	var errs []error
	if st.removeShadow != nil {
		if err := st.removeShadow(); err != nil {
			errs = append(errs, fmt.Errorf("remove shadow: %w", err))
		}
		st.removeShadow = nil
	}
	if st.snapshot != nil {
		if err := st.node.SetStyleAttribute(st.snapshot.value, st.snapshot.present); err != nil {
			errs = append(errs, fmt.Errorf("restore style: %w", err))
		}
		st.snapshot = nil
	}
	for _, class := range []string{m.cfg.ClassName, m.cfg.ContainedClass()} {
		if err := st.node.RemoveClass(class); err != nil {
			errs = append(errs, fmt.Errorf("remove class %q: %w", class, err))
		}
	}
	st.state = Unpinned

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("element %d: %w", st.index, err)
	}
	return nil
}

func (m *Manager) notifyPin(st *ElementPinState) error {
	if st.notified {
		return nil
	}
	st.notified = true
	if m.cfg.OnPin == nil {
		return nil
	}
	if err := m.cfg.OnPin(st.node); err != nil {
		return &CallbackError{Index: st.index, Element: st.node, Event: "pin", Err: err}
	}
	return nil
}

func (m *Manager) notifyUnpin(st *ElementPinState) error {
	if !st.notified {
		return nil
	}
	st.notified = false
	if m.cfg.OnUnpin == nil {
		return nil
	}
	if err := m.cfg.OnUnpin(st.node); err != nil {
		return &CallbackError{Index: st.index, Element: st.node, Event: "unpin", Err: err}
	}
	return nil
}
