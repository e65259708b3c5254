package models

import (
	"encoding/json"
	"time"
)

// JobType identifies which background job a status record belongs to.
type JobType string

// Known job types. Each maps to exactly one backend endpoint the job handler
// calls.
const (
	JobTypeCleanup   JobType = "cleanup"
	JobTypeUpload    JobType = "upload"
	JobTypeSave      JobType = "save"
	JobTypeReminders JobType = "reminders"
)

// JobStatus is the lifecycle state of a job invocation.
// There is no state machine beyond pending → completed/failed; the record is
// overwritten wholesale on every transition (last-write-wins per job id).
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// Job is a job-status record kept in the job-status store. It is written once
// per invocation for post-hoc inspection; nothing in the system reads it back
// except the status endpoint.
type Job struct {
	// JobID is the generated identifier in the form <type>-<timestamp>-<random>.
	JobID string `json:"job_id"`

	// Type names the job this record belongs to.
	Type JobType `json:"type"`

	// Status is the recorded outcome of the invocation.
	Status JobStatus `json:"status"`

	// Result holds the JSON-encoded result returned by the backend endpoint.
	// Empty for pending and failed records.
	Result json.RawMessage `json:"result,omitempty"`

	// Error holds the failure message for failed records.
	Error string `json:"error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the job-status store table
// associated with the Job model.
func (j Job) TableName() string {
	return "job_status"
}
