package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/hirehive-labs/careers-portal/internal/dtos"
	"github.com/hirehive-labs/careers-portal/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var log = logrus.New()

// ApplicationService persists candidate submissions and handles HR review:
// listing, filtering, status decisions and dashboard statistics.
type ApplicationService struct {
	DB      *gorm.DB
	Uploads *UploadService
}

func NewApplicationService(db *gorm.DB, uploads *UploadService) *ApplicationService {
	return &ApplicationService{DB: db, Uploads: uploads}
}

// Submit stores the resume first (when one is attached) and then inserts the
// application row with status Pending. If the insert fails after the upload
// succeeded the stored object stays behind; there is no rollback and no
// reconciliation job. A failed upload aborts the submission before any row is
// written.
func (s *ApplicationService) Submit(ctx context.Context, req *dtos.ApplicationSubmission, file *ResumeFile) (*models.Application, error) {
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, validationErrorf("full name and email are required")
	}

	cgpa, err := parseCGPA(req.CGPA)
	if err != nil {
		return nil, err
	}
	expYears, err := parseExperienceYears(req.ExperienceYears)
	if err != nil {
		return nil, err
	}

	// Fail fast on a bad file before touching the object store.
	if file != nil {
		if err := ValidateResume(int64(len(file.Data)), file.ContentType); err != nil {
			return nil, err
		}
	}

	// A client-supplied id is trusted; it correlates with a resume the
	// client may already have uploaded under that id.
	applicationID := req.ApplicationID
	if applicationID == "" {
		applicationID = uuid.NewString()
	}

	var resumeBlobPath string
	if file != nil {
		resumeBlobPath, err = s.Uploads.Store(ctx, *file, ResumeOwner{
			JobID:         req.JobID,
			ApplicationID: applicationID,
			Name:          req.FullName,
			Email:         req.Email,
			JobTitle:      req.JobTitle,
		})
		if err != nil {
			return nil, err
		}
		log.WithField("blobPath", resumeBlobPath).Info("Resume uploaded to object store")
	}

	app := &models.Application{
		ApplicationID:   applicationID,
		CandidateName:   req.FullName,
		CandidateEmail:  req.Email,
		CandidatePhone:  req.Phone,
		CGPA:            cgpa,
		University:      req.University,
		ExperienceYears: expYears,
		ResumeBlobPath:  resumeBlobPath,
		JobID:           req.JobID,
		JobTitle:        req.JobTitle,
		Status:          models.StatusPending,
	}

	if err := s.DB.WithContext(ctx).Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) List(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	err := s.DB.WithContext(ctx).Order("submitted_at DESC").Find(&apps).Error
	return apps, err
}

func (s *ApplicationService) ListByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	var apps []models.Application
	err := s.DB.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("submitted_at DESC").
		Find(&apps).Error
	return apps, err
}

func (s *ApplicationService) Get(ctx context.Context, applicationID string) (*models.Application, error) {
	var app models.Application
	err := s.DB.WithContext(ctx).First(&app, "application_id = ?", applicationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Filter applies the provided criteria conjunctively. Search is a
// case-insensitive substring match over candidate name, email, job title and
// university. The full matching set is returned; there is no pagination.
func (s *ApplicationService) Filter(ctx context.Context, f *dtos.ApplicationFilter) ([]models.Application, error) {
	q := s.DB.WithContext(ctx).Model(&models.Application{})

	if f.JobID != "" {
		q = q.Where("job_id = ?", f.JobID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where(
			"LOWER(candidate_name) LIKE ? OR LOWER(candidate_email) LIKE ? OR LOWER(job_title) LIKE ? OR LOWER(university) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var apps []models.Application
	err := q.Order("submitted_at DESC").Find(&apps).Error
	return apps, err
}

// UpdateStatus records an HR decision. Only Approved and Rejected are valid
// targets; Pending is not reachable through this operation. The write is an
// unconditional overwrite: re-deciding an already decided application
// succeeds, matching the portal's historical behavior.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID, status string) (*models.Application, error) {
	if status != models.StatusApproved && status != models.StatusRejected {
		return nil, validationErrorf("invalid status, must be either: %s or %s", models.StatusApproved, models.StatusRejected)
	}

	app, err := s.Get(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	app.Status = status
	if err := s.DB.WithContext(ctx).Model(app).Update("status", status).Error; err != nil {
		return nil, err
	}
	return app, nil
}

// StatusSummary is the global application count breakdown.
type StatusSummary struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// JobStats is the per-job breakdown shown on the HR dashboard.
type JobStats struct {
	JobID             string `json:"jobId"`
	JobTitle          string `json:"jobTitle"`
	TotalApplications int64  `json:"totalApplications"`
	Pending           int64  `json:"pending"`
	Approved          int64  `json:"approved"`
	Rejected          int64  `json:"rejected"`
}

// Stats aggregates counts by status, globally and per job. Jobs without any
// applications appear with zero counts via the outer join. Read-only and safe
// to call with arbitrary frequency.
func (s *ApplicationService) Stats(ctx context.Context) (*StatusSummary, []JobStats, error) {
	var summary StatusSummary
	err := s.DB.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = 'Pending' THEN 1 ELSE 0 END), 0) AS pending,
			COALESCE(SUM(CASE WHEN status = 'Approved' THEN 1 ELSE 0 END), 0) AS approved,
			COALESCE(SUM(CASE WHEN status = 'Rejected' THEN 1 ELSE 0 END), 0) AS rejected
		FROM applications`).Scan(&summary).Error
	if err != nil {
		return nil, nil, err
	}

	var byJob []JobStats
	err = s.DB.WithContext(ctx).Raw(`
		SELECT
			j.job_id AS job_id,
			j.title AS job_title,
			COUNT(a.application_id) AS total_applications,
			COALESCE(SUM(CASE WHEN a.status = 'Pending' THEN 1 ELSE 0 END), 0) AS pending,
			COALESCE(SUM(CASE WHEN a.status = 'Approved' THEN 1 ELSE 0 END), 0) AS approved,
			COALESCE(SUM(CASE WHEN a.status = 'Rejected' THEN 1 ELSE 0 END), 0) AS rejected
		FROM jobs j
		LEFT JOIN applications a ON j.job_id = a.job_id
		GROUP BY j.job_id, j.title
		ORDER BY total_applications DESC`).Scan(&byJob).Error
	if err != nil {
		return nil, nil, err
	}

	return &summary, byJob, nil
}

func parseCGPA(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, validationErrorf("cgpa must be a number between 0.00 and 4.00")
	}
	if v < 0 || v > 4.0 {
		return nil, validationErrorf("cgpa must be between 0.00 and 4.00")
	}
	return &v, nil
}

func parseExperienceYears(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return nil, validationErrorf("experience years must be an integer of 0 or more")
	}
	return &v, nil
}
