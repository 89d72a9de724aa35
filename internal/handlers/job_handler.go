package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirehive-labs/careers-portal/internal/dtos"
	"github.com/hirehive-labs/careers-portal/internal/services"
)

type JobHandler struct {
	Jobs *services.JobService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

// ListActive is GET /api/jobs — the public careers page listing.
func (h *JobHandler) ListActive(c *gin.Context) {
	jobs, err := h.Jobs.List(c.Request.Context(), true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// ListAll is GET /api/jobs/all — active and inactive, for the HR portal.
func (h *JobHandler) ListAll(c *gin.Context) {
	jobs, err := h.Jobs.List(c.Request.Context(), false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.Jobs.Get(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and description are required"})
		return
	}

	job, err := h.Jobs.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Job created successfully",
		"job":     job,
	})
}

func (h *JobHandler) Update(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and description are required"})
		return
	}

	job, err := h.Jobs.Update(c.Request.Context(), c.Param("jobId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job updated successfully",
		"job":     job,
	})
}

func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.Jobs.Delete(c.Request.Context(), c.Param("jobId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job deleted successfully",
	})
}

// SetActive is PATCH /api/jobs/:jobId/status — toggles public visibility.
func (h *JobHandler) SetActive(c *gin.Context) {
	var req dtos.JobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "isActive must be a boolean value"})
		return
	}

	job, err := h.Jobs.SetActive(c.Request.Context(), c.Param("jobId"), *req.IsActive)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Job deactivated successfully"
	if *req.IsActive {
		message = "Job activated successfully"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"job":     job,
	})
}
