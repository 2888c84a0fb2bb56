// Package pin keeps page elements stuck at a fixed viewport position while
// the user scrolls, and returns them to normal flow when the scroll position
// no longer warrants it.
//
// A [Manager] owns a set of elements and a [Config]. On every scroll event it
// decides, per element, whether the element is unpinned, pinned with fixed
// positioning, or (with Contain) parked with absolute positioning at the
// bottom of its parent. The layout engine itself is external: the manager
// reads geometry from and writes styles to the [Node] and [Viewport]
// interfaces. Package dom provides an in-memory implementation and package
// chromehost drives a real browser page.
//
// Users import this single package for the public API; geometry types are
// re-exported from internal/layout.
package pin
