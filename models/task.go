package models

import "time"

// Task is a user-owned reminder item with a deadline. The reminder job scans
// tasks whose deadline falls inside the reminder window and emails the owner.
type Task struct {
	// TaskID is the unique identifier of the task.
	TaskID int64 `json:"task_id"`

	// OwnerID is the user the task belongs to.
	OwnerID int64 `json:"-"`

	// Title is the short task summary used as the email subject.
	Title string `json:"title"`

	// Description is an optional longer task body.
	Description string `json:"description,omitempty"`

	// Deadline is when the task is due. Tasks without a reminder sent whose
	// deadline is inside the reminder window get a reminder email.
	Deadline time.Time `json:"deadline"`

	// Done marks completed tasks. Completed tasks never trigger reminders.
	Done bool `json:"done"`

	// ReminderSent records that a reminder email has already been dispatched,
	// so repeated reminder runs do not email the owner twice.
	ReminderSent bool `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// DueTask is a task joined with its owner's contact details, produced by the
// reminder scan so the dispatcher can address the email without a second
// lookup.
type DueTask struct {
	Task

	// OwnerEmail is the address the reminder is sent to.
	OwnerEmail string `json:"owner_email"`

	// OwnerName is used in the email greeting.
	OwnerName string `json:"owner_name"`
}
