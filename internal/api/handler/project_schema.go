package handler

type createProjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// projectResponse is the transport view of a project, kept separate
// from the domain type so the JSON contract is not coupled to internal
// service changes.
type projectResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
