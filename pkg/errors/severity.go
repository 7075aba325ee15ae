// Package errors provides severity-aware error types for the API layer.
// The resolver core itself never errors; absence travels as absent values.
package errors

import "fmt"

// Severity indicates error impact level.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// BoardError is a structured error with context.
type BoardError struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Severity    Severity `json:"severity"`
	ResourceID  string   `json:"resource_id,omitempty"`
	Recoverable bool     `json:"recoverable"`
}

func (e *BoardError) Error() string {
	if e.ResourceID != "" {
		return fmt.Sprintf("[%s] %s: %s (resource: %s)", e.Severity, e.Code, e.Message, e.ResourceID)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Code, e.Message)
}

// Error codes
const (
	ErrCodeUnknownResourceType = "UNKNOWN_RESOURCE_TYPE"
	ErrCodeResourceNotFound    = "RESOURCE_NOT_FOUND"
	ErrCodeSnapshotUnavailable = "SNAPSHOT_UNAVAILABLE"
	ErrCodeArchiveFailed       = "ARCHIVE_FAILED"
	ErrCodeTaskLookupFailed    = "TASK_LOOKUP_FAILED"
)

// NewUnknownResourceTypeError marks a resource type with no handler. This is
// an expected state for stale links, not a fault.
func NewUnknownResourceTypeError(resourceType string) *BoardError {
	return &BoardError{
		Code:        ErrCodeUnknownResourceType,
		Message:     fmt.Sprintf("No handler registered for resource type: %s", resourceType),
		Severity:    SeverityWarning,
		Recoverable: true,
	}
}

// NewResourceNotFoundError marks an identifier absent from the snapshot,
// distinct from an unknown resource type.
func NewResourceNotFoundError(resourceType, id string) *BoardError {
	return &BoardError{
		Code:        ErrCodeResourceNotFound,
		Message:     fmt.Sprintf("No %s record in the current snapshot", resourceType),
		Severity:    SeverityInfo,
		ResourceID:  id,
		Recoverable: true,
	}
}

// NewSnapshotUnavailableError marks a request arriving before any snapshot
// has been loaded.
func NewSnapshotUnavailableError() *BoardError {
	return &BoardError{
		Code:        ErrCodeSnapshotUnavailable,
		Message:     "No infrastructure snapshot is available yet",
		Severity:    SeverityWarning,
		Recoverable: true,
	}
}

// NewTaskLookupFailedError wraps a failed ECS collaborator call.
func NewTaskLookupFailedError(id string, cause error) *BoardError {
	return &BoardError{
		Code:        ErrCodeTaskLookupFailed,
		Message:     fmt.Sprintf("Task lookup failed: %v", cause),
		Severity:    SeverityError,
		ResourceID:  id,
		Recoverable: true,
	}
}
