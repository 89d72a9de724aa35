package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hirehive-labs/careers-portal/internal/dtos"
	"github.com/hirehive-labs/careers-portal/internal/models"
	"gorm.io/gorm"
)

// JobService is CRUD over job postings plus the active/inactive toggle.
type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// List returns jobs newest first. activeOnly restricts to postings visible on
// the public careers page; the unfiltered list is for the HR portal.
func (s *JobService) List(ctx context.Context, activeOnly bool) ([]models.Job, error) {
	q := s.DB.WithContext(ctx).Order("created_at DESC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var jobs []models.Job
	if err := q.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobService) Get(ctx context.Context, jobID string) (*models.Job, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).First(&job, "job_id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *JobService) Create(ctx context.Context, req *dtos.JobRequest) (*models.Job, error) {
	if req.Title == "" || req.Description == "" {
		return nil, validationErrorf("title and description are required")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	job := &models.Job{
		JobID:          uuid.NewString(),
		Title:          req.Title,
		Description:    req.Description,
		Department:     req.Department,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		SalaryRange:    req.SalaryRange,
		Requirements:   req.Requirements,
		Notes:          req.Notes,
		IsActive:       isActive,
		CreatedBy:      "HR User",
	}

	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Update replaces every mutable field of the posting.
func (s *JobService) Update(ctx context.Context, jobID string, req *dtos.JobRequest) (*models.Job, error) {
	job, err := s.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Department = req.Department
	job.Location = req.Location
	job.EmploymentType = req.EmploymentType
	job.SalaryRange = req.SalaryRange
	job.Requirements = req.Requirements
	job.Notes = req.Notes
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	} else {
		job.IsActive = true
	}

	if err := s.DB.WithContext(ctx).Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes an orphaned posting. A job that applications still reference
// cannot be deleted; the check and the delete run back to back without a
// transaction, which is accepted at this system's write volume.
func (s *JobService) Delete(ctx context.Context, jobID string) error {
	if _, err := s.Get(ctx, jobID); err != nil {
		return err
	}

	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Application{}).
		Where("job_id = ?", jobID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &HasDependentsError{Count: count}
	}

	return s.DB.WithContext(ctx).Delete(&models.Job{}, "job_id = ?", jobID).Error
}

// SetActive toggles public visibility. Existing applications are untouched.
func (s *JobService) SetActive(ctx context.Context, jobID string, isActive bool) (*models.Job, error) {
	job, err := s.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}

	job.IsActive = isActive
	if err := s.DB.WithContext(ctx).Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}
