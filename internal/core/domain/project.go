package domain

// Project groups related work units. Projects are created by admins and
// are never updated or deleted.
type Project struct {
	ID          int64  `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
}
