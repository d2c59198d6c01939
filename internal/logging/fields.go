package logging

// Standardized attribute keys shared across components.
const (
	// FieldComponent identifies the subsystem emitting the record.
	FieldComponent = "component"
	// FieldEventType is a stable machine-readable event identifier.
	FieldEventType = "event_type"
	// FieldErrorHint suggests the next step for a failure or warning.
	FieldErrorHint = "error_hint"
	// FieldImpact describes the user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldSegment carries a segment's canonical key.
	FieldSegment = "segment"
	// FieldBuildID carries the build identifier.
	FieldBuildID = "build_id"
)
