package constants

import "time"

// Activity feed limits
const (
	DefaultActivityLimit = 20
	MinActivityLimit     = 1
	MaxActivityLimit     = 200
)

// StatsWindow is how far back "this week" reaches.
const StatsWindow = 7 * 24 * time.Hour

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// ExternalActivitySource is used when a posted activity names no source.
const ExternalActivitySource = "system"

// Context keys
const (
	ContextKeyTaskID    = "task_id"
	ContextKeyRequestID = "request_id"
)
