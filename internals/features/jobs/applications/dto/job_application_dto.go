package dto

type ApplyRequest struct {
	UserID      string  `json:"userId" validate:"required,uuid"`
	JobID       string  `json:"jobId" validate:"required,uuid"`
	CoverLetter *string `json:"cover_letter"`
	ResumePath  *string `json:"resume_path"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=received under_review resolved"`
}
