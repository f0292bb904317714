package logging

// Standardized attribute keys shared across components.
const (
	// FieldComponent names the subsystem emitting the record.
	FieldComponent = "component"
	// FieldRequestID correlates all records from one HTTP request.
	FieldRequestID = "request_id"
)
