// Package dom mounts the widgets on a rendered page when running as
// WebAssembly in the browser. Elements opt in with a data-widget
// attribute; everything they need is read from data-* attributes written
// by the site renderer.
package dom
