// Package template defines the renderer-agnostic template contract used to
// expand report shells before their markers are spliced.
package template
