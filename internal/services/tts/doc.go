// Package tts wraps the speech synthesis provider's HTTP API.
//
// The client distinguishes the provider failure modes callers need to act on
// (bad key, exhausted credit, throttling) via typed errors, and exposes a
// deterministic no-network mock used for --mock builds and tests. A small
// TTL-based catalog cache avoids refetching the voice list on every command.
package tts
