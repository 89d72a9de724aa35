package dtos

// JobRequest carries the mutable fields of a job posting. Used for both
// create and full-replace update.
type JobRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description" binding:"required"`
	Department     string `json:"department"`
	Location       string `json:"location"`
	EmploymentType string `json:"employmentType"`
	SalaryRange    string `json:"salaryRange"`
	Requirements   string `json:"requirements"`
	Notes          string `json:"notes"`

	// Defaults to true on create when omitted
	IsActive *bool `json:"isActive"`
}

type JobStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
