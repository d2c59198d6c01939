// Package script turns raw script text into an ordered list of titled
// segments ready for synthesis.
//
// Markdown scripts split on second-level headings; unstructured text falls
// back to sentence-boundary chunking so a headingless document never becomes
// one oversized segment. Each finalized segment carries a stable 1-based
// index, a filesystem-safe slug, and a content fingerprint covering the text,
// voice, and language that would be synthesized.
package script
