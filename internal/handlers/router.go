package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every route under /api. Static ("all", "filter",
// "stats/summary") routes are registered alongside the parameter routes; gin
// gives the static segments priority.
func NewRouter(jobs *JobHandler, applications *ApplicationHandler) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		api.GET("/health", HealthCheck)

		// Job routes
		api.GET("/jobs", jobs.ListActive)
		api.GET("/jobs/all", jobs.ListAll)
		api.GET("/jobs/:jobId", jobs.Get)
		api.POST("/jobs", jobs.Create)
		api.PUT("/jobs/:jobId", jobs.Update)
		api.DELETE("/jobs/:jobId", jobs.Delete)
		api.PATCH("/jobs/:jobId/status", jobs.SetActive)

		// Application routes
		api.POST("/applications", applications.Submit)
		api.GET("/applications", applications.List)
		api.GET("/applications/job/:jobId", applications.ListByJob)
		api.GET("/applications/filter", applications.Filter)
		api.GET("/applications/stats/summary", applications.Stats)
		api.GET("/applications/:applicationId", applications.Get)
		api.PATCH("/applications/:applicationId/status", applications.UpdateStatus)
	}

	return r
}
