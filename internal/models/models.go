package models

import (
	"time"
)

// Application review statuses. An application starts Pending and is moved to
// Approved or Rejected by HR.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

type Job struct {
	JobID       string `gorm:"size:100;primaryKey" json:"jobId"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`

	// Optional posting details
	Department     string `gorm:"size:100" json:"department"`
	Location       string `gorm:"size:100" json:"location"`
	EmploymentType string `gorm:"size:50" json:"employmentType"`
	SalaryRange    string `gorm:"size:100" json:"salaryRange"`
	Requirements   string `gorm:"type:text" json:"requirements"`
	Notes          string `gorm:"type:text" json:"notes"`

	// Controls visibility on the public careers page only
	IsActive bool `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy string    `gorm:"size:100" json:"createdBy"`
}

type Application struct {
	ApplicationID  string `gorm:"size:100;primaryKey" json:"applicationId"`
	CandidateName  string `gorm:"size:200;not null" json:"candidateName"`
	CandidateEmail string `gorm:"size:256;not null" json:"candidateEmail"`
	CandidatePhone string `gorm:"size:50" json:"candidatePhone"`

	// Nullable candidate details; pointers so absent values stay NULL
	CGPA            *float64 `gorm:"type:decimal(3,2)" json:"cgpa"`
	University      string   `gorm:"size:200" json:"university"`
	ExperienceYears *int     `json:"experienceYears"`

	// Object store key of the uploaded resume; empty when no file was attached
	ResumeBlobPath string `gorm:"size:500" json:"resumeBlobPath"`

	// JobTitle is a snapshot taken at submission time. It is not kept in
	// sync with later renames of the Job.
	JobID    string `gorm:"size:100;index" json:"jobId"`
	JobTitle string `gorm:"size:200" json:"jobTitle"`

	Status      string    `gorm:"size:50;default:'Pending'" json:"status"`
	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submittedAt"`
	Notes       string    `gorm:"type:text" json:"notes"`
}
