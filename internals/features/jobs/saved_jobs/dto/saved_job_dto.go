package dto

// SavedJobRequest is the body of POST/DELETE /api/saved-jobs and /toggle.
type SavedJobRequest struct {
	UserID string `json:"userId" query:"userId" validate:"required,uuid"`
	JobID  string `json:"jobId" query:"jobId" validate:"required,uuid"`
}

type ToggleResponse struct {
	Saved bool `json:"saved"`
}

type CheckResponse struct {
	Saved bool `json:"saved"`
}
