package handler

// createWorkUnitRequest deliberately has no status field: work units
// always start as "idea", and any status key in the payload is dropped
// during binding.
type createWorkUnitRequest struct {
	ProjectID   int64  `json:"project_id" validate:"required,gt=0"`
	Title       string `json:"title"      validate:"required"`
	Description string `json:"description"`
	Owner       string `json:"owner"      validate:"required"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type updateStatusResponse struct {
	Success bool `json:"success"`
}

type workUnitResponse struct {
	ID          int64  `json:"id"`
	ProjectID   int64  `json:"project_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Owner       string `json:"owner"`
	Status      string `json:"status"`
}
