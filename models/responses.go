package models

import "time"

// JobAccepted is the response body of every job-trigger endpoint.
// CleanupType is echoed back for cleanup triggers only.
type JobAccepted struct {
	Message     string      `json:"message"`
	JobID       string      `json:"jobId"`
	CleanupType CleanupType `json:"cleanupType,omitempty"`
}

// ErrorResponse is the generic error body returned by the trigger endpoints
// on validation failure. There is no structured taxonomy beyond the message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CleanupResult reports how much a single cleanup run removed. Counts are
// reported but never resumed; a partially failed batch just surfaces smaller
// numbers on the next run.
type CleanupResult struct {
	CleanupType CleanupType `json:"cleanupType"`

	// Scanned is how many candidate images the run considered.
	Scanned int `json:"scanned"`

	// Deleted is how many images were removed from the object store and the
	// database.
	Deleted int `json:"deleted"`
}

// UploadResult is returned by the backend after an async image upload.
type UploadResult struct {
	// Key is the object storage key assigned to the uploaded image.
	Key string `json:"key"`

	// URL is a presigned read URL for the stored object.
	URL string `json:"url,omitempty"`
}

// SaveResult is returned by the backend after an async page save.
type SaveResult struct {
	PageID    int64     `json:"pageId"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReminderResult reports a reminder dispatch run.
type ReminderResult struct {
	// Dispatched is the number of reminder emails successfully sent.
	Dispatched int `json:"dispatched"`

	// Failed counts per-task send failures. Failures are logged and counted,
	// never retried.
	Failed int `json:"failed"`
}
