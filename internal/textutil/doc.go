// Package textutil provides small text helpers shared across the pipeline:
// filename-safe slugs, chapter and caption timestamp formatting, and caption
// text truncation.
package textutil
