package models

// CleanupType selects which image cleanup pass a cleanup job runs.
type CleanupType string

const (
	// CleanupMarked removes images explicitly flagged for deletion.
	CleanupMarked CleanupType = "marked"

	// CleanupOrphaned removes images no page content references any more.
	CleanupOrphaned CleanupType = "orphaned"
)

// CleanupRequest is the payload of the image-cleanup job trigger and of the
// backend /internal/images/cleanup endpoint. Field names follow the public
// trigger contract.
type CleanupRequest struct {
	// CleanupType is either "marked" or "orphaned". Required.
	CleanupType CleanupType `json:"cleanupType"`

	// BatchSize caps how many images a single run removes. Required, positive.
	BatchSize int `json:"batchSize"`
}

// UploadImageRequest is the payload of the async image upload job and of the
// backend /internal/images/upload endpoint.
type UploadImageRequest struct {
	// PageID is the page the image belongs to. Required.
	PageID int64 `json:"pageId"`

	// OwnerID is the uploading user. Required.
	OwnerID int64 `json:"ownerId"`

	// Data is the raw image payload, base64-encoded on the wire.
	// Required, non-empty.
	Data []byte `json:"data"`

	// ContentType is the MIME type recorded with the stored object.
	ContentType string `json:"contentType,omitempty"`
}

// SavePageRequest is the payload of the async page save job and of the
// backend /internal/pages/save endpoint. The save is an upsert keyed by
// PageID; re-running it overwrites with the same data.
type SavePageRequest struct {
	// PageID identifies the page to save. Required.
	PageID int64 `json:"pageId"`

	// OwnerID is the user the save is performed for. Required.
	OwnerID int64 `json:"ownerId"`

	// Name is the page title to store.
	Name string `json:"name"`

	// Content is the markdown body to store.
	Content string `json:"content"`
}

// ReminderRequest is the payload of the task-reminder job and of the backend
// /internal/reminders/dispatch endpoint.
type ReminderRequest struct {
	// WindowMinutes widens or narrows the lookahead window for due tasks.
	// Zero means the server-side default.
	WindowMinutes int `json:"windowMinutes,omitempty"`
}

// SharePageRequest adds a user to a page's shared list.
type SharePageRequest struct {
	// UserID is the user to share the page with. Required.
	UserID int64 `json:"user_id"`
}

// PublicShareRequest enables a public share link for a page.
type PublicShareRequest struct {
	// DownloadAllowed controls whether the public viewer may download the
	// raw markdown.
	DownloadAllowed bool `json:"download_allowed"`
}
