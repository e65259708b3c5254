package models

import "time"

// Page is a markdown note owned by a single user and optionally shared with
// other users or published under a public share id.
type Page struct {
	// PageID is the unique identifier of the page.
	PageID int64 `json:"page_id"`

	// OwnerID is the user who created the page. Only the owner may rename,
	// share, or delete it.
	OwnerID int64 `json:"-"`

	// Name is the page title shown in navigation.
	Name string `json:"name"`

	// Content is the raw markdown body. Rendering happens on the client;
	// the server stores and serves it verbatim.
	Content string `json:"content"`

	// SharedUserIDs lists users the page has been shared with. Shared users
	// can read and save the page but cannot re-share or delete it.
	SharedUserIDs []int64 `json:"shared_user_ids,omitempty"`

	// PublicShareID, when non-nil, makes the page readable without
	// authentication under /api/shared/{shareID}.
	PublicShareID *string `json:"public_share_id,omitempty"`

	// DownloadAllowed controls whether viewers of a public share may download
	// the raw markdown.
	DownloadAllowed bool `json:"download_allowed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PageUpdate describes a partial update of a single page.
// Only non-nil fields are written (partial update support).
type PageUpdate struct {
	// PageID is the unique identifier of the page to update. Required.
	PageID int64 `json:"page_id"`

	// OwnerID scopes the update to pages owned by this user. Required.
	OwnerID int64 `json:"-"`

	// Name, if non-nil, renames the page.
	Name *string `json:"name,omitempty"`

	// Content, if non-nil, replaces the markdown body.
	Content *string `json:"content,omitempty"`

	// DownloadAllowed, if non-nil, toggles the download permission flag.
	DownloadAllowed *bool `json:"download_allowed,omitempty"`

	// PublicShareID, if non-nil, sets or clears the public share id.
	// An empty string clears it.
	PublicShareID *string `json:"public_share_id,omitempty"`
}

// TableName returns the name of the database table
// associated with the Page model.
func (p Page) TableName() string {
	return "pages"
}
