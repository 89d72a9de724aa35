package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirehive-labs/careers-portal/internal/dtos"
	"github.com/hirehive-labs/careers-portal/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(apps *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: apps}
}

// Submit is POST /api/applications — the multipart submission from the
// careers page, candidate fields plus an optional resumeFile part.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dtos.ApplicationSubmission
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "full name and a valid email are required"})
		return
	}

	var file *services.ResumeFile
	if header, err := c.FormFile("resumeFile"); err == nil && header != nil {
		contentType := header.Header.Get("Content-Type")

		// Reject on the declared size and type before reading the body
		// into memory, so an oversized file never costs an upload.
		if err := services.ValidateResume(header.Size, contentType); err != nil {
			respondError(c, err)
			return
		}

		f, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
			return
		}

		file = &services.ResumeFile{
			Data:        data,
			ContentType: contentType,
			Filename:    header.Filename,
		}
	}

	app, err := h.Applications.Submit(c.Request.Context(), &req, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"applicationId": app.ApplicationID,
		"message":       "Application submitted successfully",
	})
}

func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.Applications.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	apps, err := h.Applications.ListByJob(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	app, err := h.Applications.Get(c.Request.Context(), c.Param("applicationId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Filter is GET /api/applications/filter?jobId&status&search.
func (h *ApplicationHandler) Filter(c *gin.Context) {
	var filter dtos.ApplicationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter parameters"})
		return
	}

	apps, err := h.Applications.Filter(c.Request.Context(), &filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// UpdateStatus is PATCH /api/applications/:applicationId/status — the HR
// approve/reject decision.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dtos.ApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status, must be either: Approved or Rejected"})
		return
	}

	app, err := h.Applications.UpdateStatus(c.Request.Context(), c.Param("applicationId"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Application " + app.Status + " successfully",
		"application": app,
	})
}

// Stats is GET /api/applications/stats/summary — the HR dashboard numbers.
func (h *ApplicationHandler) Stats(c *gin.Context) {
	summary, byJob, err := h.Applications.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"byJob":   byJob,
	})
}
