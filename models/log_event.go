package models

// LogEvent is the canonical structured payload submitted by the client demo.
// Any JSON-marshalable value is accepted by the pipeline; this type only
// documents the shape the collection endpoint conventionally receives.
type LogEvent struct {
	Event     string `json:"event"`
	UserID    int64  `json:"user_id"`
	Timestamp string `json:"timestamp,omitempty"`
	IPAddress string `json:"ip_address,omitempty"`
	Browser   string `json:"browser,omitempty"`
}
