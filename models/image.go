package models

import "time"

// Image is a record of an uploaded page image stored in the object store.
// The Key doubles as the object-store key and the public identifier.
type Image struct {
	// Key is the object storage key of the image, generated at upload time.
	Key string `json:"key"`

	// PageID references the page the image is embedded in. Zero means the
	// image was uploaded but never attached — an orphan candidate.
	PageID int64 `json:"page_id,omitempty"`

	// OwnerID is the user who uploaded the image.
	OwnerID int64 `json:"-"`

	// Marked flags the image for deletion. The cleanup job removes marked
	// images from the object store and drops their records.
	Marked bool `json:"-"`

	// UploadedAt is the timestamp of the original upload.
	UploadedAt time.Time `json:"uploaded_at"`
}

// TableName returns the name of the database table
// associated with the Image model.
func (i Image) TableName() string {
	return "images"
}
