// Package render orchestrates per-segment synthesis with content-addressed
// caching.
//
// Segments are processed strictly sequentially. A segment is reused from the
// cache only when nothing about it changed: the manifest entry's hash and
// file name must match the segment's current values and the audio file must
// still exist on disk. Anything else re-synthesizes. The cache manifest is
// persisted exactly once, after the whole pass succeeds; a failed pass keeps
// already-written audio files on disk but persists nothing.
package render
