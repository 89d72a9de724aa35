package dtos

// ApplicationSubmission is the multipart form posted from the careers page.
// CGPA and experience arrive as form strings and are parsed server-side so a
// bad value maps to a validation error rather than a bind failure.
type ApplicationSubmission struct {
	FullName        string `form:"fullName" binding:"required"`
	Email           string `form:"email" binding:"required,email"`
	Phone           string `form:"phone"`
	CGPA            string `form:"cgpa"`
	University      string `form:"university"`
	ExperienceYears string `form:"experienceYears"`

	JobID    string `form:"jobId"`
	JobTitle string `form:"jobTitle"`

	// Optional: the client may pre-generate an id to correlate the
	// application with an already-uploaded resume.
	ApplicationID string `form:"applicationId"`
}

type ApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ApplicationFilter holds the query parameters of GET /api/applications/filter.
// All provided filters are combined with AND.
type ApplicationFilter struct {
	JobID  string `form:"jobId"`
	Status string `form:"status"`
	Search string `form:"search"`
}
