// Package dom is a small in-memory document used as a layout host for the
// pin manager.
//
// It models a single window over a tree of block boxes. Boxes stack
// top-to-bottom in normal flow; each has a margin, border and padding and an
// optional fixed content size. Inline style attributes are honoured for
// position (static, relative, absolute, fixed), top, left, width, height and
// visibility. A width set through the style attribute is the border-box
// width; top and left place the margin edge, as in CSS.
//
// Layout is lazy: mutations mark the document dirty and the next geometry
// read recomputes it.
package dom
