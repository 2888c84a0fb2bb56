package chromehost

import (
	"encoding/json"
	"fmt"
	"strings"
)

// bindingName is the runtime binding the page calls with "scroll" or
// "resize".
const bindingName = "__pinNotify"

// bootstrapScript installs the handle table and the event forwarders. It is
// idempotent so it can run both as a new-document script and on the
// current page.
const bootstrapScript = `(() => {
	if (window.__pinHost) { return true; }
	const host = { nodes: [] };
	host.node = (i) => {
		const el = host.nodes[i];
		return el && el.isConnected ? el : null;
	};
	host.register = (el) => {
		host.nodes.push(el);
		return host.nodes.length - 1;
	};
	const notify = (type) => () => {
		if (typeof window.` + bindingName + ` === 'function') {
			window.` + bindingName + `(type);
		}
	};
	window.addEventListener('scroll', notify('scroll'), { passive: true });
	window.addEventListener('resize', notify('resize'));
	window.__pinHost = host;
	return true;
})()`

const queryScript = `(selector) => {
	return Array.from(document.querySelectorAll(selector)).map((el) => window.__pinHost.register(el));
}`

const geometryScript = `(i) => {
	const el = window.__pinHost.node(i);
	if (!el) { return null; }
	const cs = getComputedStyle(el);
	const px = (v) => parseFloat(v) || 0;
	const r = el.getBoundingClientRect();
	const margin = { top: px(cs.marginTop), right: px(cs.marginRight), bottom: px(cs.marginBottom), left: px(cs.marginLeft) };
	return {
		offset: { x: r.left + window.scrollX, y: r.top + window.scrollY },
		position: { x: el.offsetLeft - margin.left, y: el.offsetTop - margin.top },
		size: { width: el.offsetWidth, height: el.offsetHeight },
		margin: margin,
	};
}`

const containerScript = `(i) => {
	const el = window.__pinHost.node(i);
	if (!el) { return { detached: true }; }
	const p = el.parentElement;
	if (!p) { return { noParent: true }; }
	const cs = getComputedStyle(p);
	const r = p.getBoundingClientRect();
	return {
		x: r.left + window.scrollX,
		y: r.top + window.scrollY,
		width: p.clientWidth - (parseFloat(cs.paddingLeft) || 0) - (parseFloat(cs.paddingRight) || 0),
		height: p.clientHeight - (parseFloat(cs.paddingTop) || 0) - (parseFloat(cs.paddingBottom) || 0),
	};
}`

const getStyleScript = `(i) => {
	const el = window.__pinHost.node(i);
	if (!el) { return null; }
	const v = el.getAttribute('style');
	return { value: v === null ? '' : v, present: v !== null };
}`

const setStyleScript = `(i, value, present) => {
	const el = window.__pinHost.node(i);
	if (!el) { return false; }
	if (present) { el.setAttribute('style', value); } else { el.removeAttribute('style'); }
	return true;
}`

const setCSSScript = `(i, decls) => {
	const el = window.__pinHost.node(i);
	if (!el) { return false; }
	for (const d of decls) {
		if (d.value === '') { el.style.removeProperty(d.property); } else { el.style.setProperty(d.property, d.value); }
	}
	return true;
}`

const classScript = `(i, cls, add) => {
	const el = window.__pinHost.node(i);
	if (!el) { return false; }
	if (add) { el.classList.add(cls); } else { el.classList.remove(cls); }
	return true;
}`

const shadowScript = `(i, cls) => {
	const el = window.__pinHost.node(i);
	if (!el || !el.parentNode) { return -1; }
	const clone = el.cloneNode(true);
	clone.removeAttribute('id');
	clone.classList.add(cls);
	clone.style.visibility = 'hidden';
	el.after(clone);
	return window.__pinHost.register(clone);
}`

const removeScript = `(i) => {
	const el = window.__pinHost.node(i);
	if (el) { el.remove(); }
	return true;
}`

const scrollTopScript = `window.scrollY`

const scrollToScript = `(y) => { window.scrollTo(window.scrollX, y); return window.scrollY; }`

// call renders fn applied to JSON-encoded arguments.
func call(fn string, args ...any) (string, error) {
	encoded := make([]string, len(args))
	for i, a := range args {
		b, err := json.Marshal(a)
		if err != nil {
			return "", fmt.Errorf("encode argument %d: %w", i, err)
		}
		encoded[i] = string(b)
	}
	return "(" + fn + ")(" + strings.Join(encoded, ", ") + ")", nil
}
