// Package chromehost implements the pin host interfaces against a live
// browser page over the Chrome DevTools Protocol.
//
// Elements are resolved by CSS selector and referenced by handle from then
// on. Geometry reads and style writes are JavaScript evaluations in the page.
// Scroll and resize events are forwarded from the page through a runtime
// binding into a queue that Run drains on a single goroutine; every
// manager operation must happen on that goroutine, either from an event
// handler or through Do.
package chromehost
