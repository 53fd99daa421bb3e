package domain

import "time"

// StatusIdea is the status every work unit starts in. Beyond the initial
// value the status is free text: only the owner may change it, and any
// non-empty string is accepted.
const StatusIdea = "idea"

// WorkUnit is a trackable task belonging to a project with a single
// responsible owner. Status is the only mutable field.
type WorkUnit struct {
	ID          int64  `json:"id" bson:"id"`
	ProjectID   int64  `json:"project_id" bson:"project_id"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Owner       string `json:"owner" bson:"owner"`
	Status      string `json:"status" bson:"status"`
}

// Update is a progress note attached to a work unit. The collection is
// part of the storage contract but no operation writes to it yet.
type Update struct {
	ID         int64     `json:"id" bson:"id"`
	WorkUnitID int64     `json:"work_unit_id" bson:"work_unit_id"`
	User       string    `json:"user" bson:"user"`
	Text       string    `json:"text" bson:"text"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}
