package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hirehive-labs/careers-portal/internal/blobstore"
	"github.com/hirehive-labs/careers-portal/internal/models"
	"github.com/hirehive-labs/careers-portal/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) (*gin.Engine, *blobstore.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.Job{}, &models.Application{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	store := blobstore.NewMemoryStore()
	uploads := services.NewUploadService(store)
	jobHandler := NewJobHandler(services.NewJobService(db))
	applicationHandler := NewApplicationHandler(services.NewApplicationService(db, uploads))

	return NewRouter(jobHandler, applicationHandler), store
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 && strings.HasPrefix(w.Body.String(), "{") {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, decoded
}

func submitMultipart(t *testing.T, r *gin.Engine, fields map[string]string, filename, contentType string, fileSize int) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if filename != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="resumeFile"; filename=%q`, filename))
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := part.Write(make([]byte, fileSize)); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/applications", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createJob(t *testing.T, r *gin.Engine, title string, isActive bool) string {
	t.Helper()

	w, body := doJSON(t, r, http.MethodPost, "/api/jobs", map[string]any{
		"title":       title,
		"description": "Y",
		"isActive":    isActive,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create job: status %d, body %s", w.Code, w.Body.String())
	}
	job := body["job"].(map[string]any)
	return job["jobId"].(string)
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := newTestServer(t)

	w, body := doJSON(t, r, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v, want ok", body["status"])
	}
}

// Scenario: create an active job, then the public listing must include it
// with its generated id.
func TestCreateJobAppearsOnPublicListing(t *testing.T) {
	r, _ := newTestServer(t)

	jobID := createJob(t, r, "X", true)
	if jobID == "" {
		t.Fatal("created job has no id")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/jobs status = %d", w.Code)
	}

	var jobs []models.Job
	if err := json.Unmarshal(w.Body.Bytes(), &jobs); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	found := false
	for _, j := range jobs {
		if j.JobID == jobID && j.Title == "X" {
			found = true
		}
	}
	if !found {
		t.Errorf("created job %s missing from public listing %+v", jobID, jobs)
	}
}

func TestInactiveJobHiddenFromPublicListing(t *testing.T) {
	r, _ := newTestServer(t)

	hiddenID := createJob(t, r, "Hidden", false)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var jobs []models.Job
	if err := json.Unmarshal(w.Body.Bytes(), &jobs); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	for _, j := range jobs {
		if j.JobID == hiddenID {
			t.Error("inactive job visible on public listing")
		}
	}

	// HR listing still shows it
	req = httptest.NewRequest(http.MethodGet, "/api/jobs/all", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if err := json.Unmarshal(w.Body.Bytes(), &jobs); err != nil {
		t.Fatalf("decode HR listing: %v", err)
	}
	found := false
	for _, j := range jobs {
		if j.JobID == hiddenID {
			found = true
		}
	}
	if !found {
		t.Error("inactive job missing from HR listing")
	}
}

// Scenario: a 6 MB PDF is rejected before any store write.
func TestSubmitOversizedResumeRejectedBeforeUpload(t *testing.T) {
	r, store := newTestServer(t)

	w := submitMultipart(t, r, map[string]string{
		"fullName": "Jane Doe",
		"email":    "jane@example.com",
	}, "big.pdf", "application/pdf", 6*1024*1024)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "5MB") {
		t.Errorf("error body %q does not mention the size limit", w.Body.String())
	}
	if len(store.Keys()) != 0 {
		t.Error("oversized file reached the object store")
	}
}

// Scenario: a valid 2 MB PDF for an existing active job is stored under a
// derived key and the row lands with status Pending.
func TestSubmitValidResumeEndToEnd(t *testing.T) {
	r, store := newTestServer(t)

	jobID := createJob(t, r, "Platform Engineer", true)

	w := submitMultipart(t, r, map[string]string{
		"fullName":        "Jane Doe",
		"email":           "jane@example.com",
		"phone":           "555-0100",
		"cgpa":            "3.5",
		"university":      "State University",
		"experienceYears": "3",
		"jobId":           jobID,
		"jobTitle":        "Platform Engineer",
	}, "resume.pdf", "application/pdf", 2*1024*1024)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}
	applicationID, _ := body["applicationId"].(string)
	if applicationID == "" {
		t.Fatal("response missing applicationId")
	}

	keys := store.Keys()
	if len(keys) != 1 {
		t.Fatalf("store has %d objects, want 1", len(keys))
	}
	if !strings.Contains(keys[0], "jane-doe") || !strings.Contains(keys[0], "platform-engineer") {
		t.Errorf("derived key %q missing sanitized name/title", keys[0])
	}

	getW, getBody := doJSON(t, r, http.MethodGet, "/api/applications/"+applicationID, nil)
	if getW.Code != http.StatusOK {
		t.Fatalf("GET application status = %d", getW.Code)
	}
	if getBody["status"] != models.StatusPending {
		t.Errorf("status = %v, want Pending", getBody["status"])
	}
	if getBody["resumeBlobPath"] != keys[0] {
		t.Errorf("resumeBlobPath = %v, want %s", getBody["resumeBlobPath"], keys[0])
	}
}

// Scenario: approving a pending application is visible on the next read.
func TestApproveApplicationRoundTrip(t *testing.T) {
	r, _ := newTestServer(t)

	w := submitMultipart(t, r, map[string]string{
		"fullName": "Pending Person",
		"email":    "p@example.com",
	}, "", "", 0)
	if w.Code != http.StatusOK {
		t.Fatalf("submit status = %d, body %s", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	applicationID := body["applicationId"].(string)

	patchW, patchBody := doJSON(t, r, http.MethodPatch, "/api/applications/"+applicationID+"/status", map[string]any{
		"status": "Approved",
	})
	if patchW.Code != http.StatusOK {
		t.Fatalf("patch status = %d, body %s", patchW.Code, patchW.Body.String())
	}
	if patchBody["success"] != true {
		t.Errorf("success = %v, want true", patchBody["success"])
	}

	getW, getBody := doJSON(t, r, http.MethodGet, "/api/applications/"+applicationID, nil)
	if getW.Code != http.StatusOK {
		t.Fatalf("GET status = %d", getW.Code)
	}
	if getBody["status"] != models.StatusApproved {
		t.Errorf("status = %v, want Approved", getBody["status"])
	}
}

func TestUpdateStatusRejectsInvalidValue(t *testing.T) {
	r, _ := newTestServer(t)

	w := submitMultipart(t, r, map[string]string{
		"fullName": "P",
		"email":    "p@example.com",
	}, "", "", 0)
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	applicationID := body["applicationId"].(string)

	patchW, _ := doJSON(t, r, http.MethodPatch, "/api/applications/"+applicationID+"/status", map[string]any{
		"status": "Pending",
	})
	if patchW.Code != http.StatusBadRequest {
		t.Errorf("PATCH status Pending = %d, want 400", patchW.Code)
	}
}

// Scenario: deleting a job with one application fails with the count and
// leaves the row in place.
func TestDeleteJobWithApplicationBlocked(t *testing.T) {
	r, _ := newTestServer(t)

	jobID := createJob(t, r, "Guarded", true)

	w := submitMultipart(t, r, map[string]string{
		"fullName": "Applicant",
		"email":    "a@example.com",
		"jobId":    jobID,
		"jobTitle": "Guarded",
	}, "", "", 0)
	if w.Code != http.StatusOK {
		t.Fatalf("submit status = %d", w.Code)
	}

	delW, delBody := doJSON(t, r, http.MethodDelete, "/api/jobs/"+jobID, nil)
	if delW.Code != http.StatusBadRequest {
		t.Fatalf("DELETE status = %d, want 400; body %s", delW.Code, delW.Body.String())
	}
	if count, ok := delBody["applicationCount"].(float64); !ok || count != 1 {
		t.Errorf("applicationCount = %v, want 1", delBody["applicationCount"])
	}

	getW, _ := doJSON(t, r, http.MethodGet, "/api/jobs/"+jobID, nil)
	if getW.Code != http.StatusOK {
		t.Errorf("job gone after blocked delete: GET status = %d", getW.Code)
	}
}

func TestFilterAndStatsRoutesNotShadowedByParam(t *testing.T) {
	r, _ := newTestServer(t)

	jobID := createJob(t, r, "Routed", true)
	w := submitMultipart(t, r, map[string]string{
		"fullName": "Filter Me",
		"email":    "f@example.com",
		"jobId":    jobID,
		"jobTitle": "Routed",
	}, "", "", 0)
	if w.Code != http.StatusOK {
		t.Fatalf("submit status = %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/applications/filter?status=Pending&jobId="+jobID, nil)
	fw := httptest.NewRecorder()
	r.ServeHTTP(fw, req)
	if fw.Code != http.StatusOK {
		t.Fatalf("filter status = %d, body %s", fw.Code, fw.Body.String())
	}
	var apps []models.Application
	if err := json.Unmarshal(fw.Body.Bytes(), &apps); err != nil {
		t.Fatalf("decode filter response: %v", err)
	}
	if len(apps) != 1 {
		t.Errorf("filter returned %d applications, want 1", len(apps))
	}

	statsW, statsBody := doJSON(t, r, http.MethodGet, "/api/applications/stats/summary", nil)
	if statsW.Code != http.StatusOK {
		t.Fatalf("stats status = %d", statsW.Code)
	}
	summary := statsBody["summary"].(map[string]any)
	if summary["total"].(float64) != 1 || summary["pending"].(float64) != 1 {
		t.Errorf("summary = %v, want total 1 pending 1", summary)
	}
	byJob := statsBody["byJob"].([]any)
	if len(byJob) != 1 {
		t.Errorf("byJob has %d rows, want 1", len(byJob))
	}
}

func TestSetActiveRequiresBoolean(t *testing.T) {
	r, _ := newTestServer(t)
	jobID := createJob(t, r, "Toggle", true)

	w, _ := doJSON(t, r, http.MethodPatch, "/api/jobs/"+jobID+"/status", map[string]any{
		"isActive": "yes",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("PATCH non-boolean isActive = %d, want 400", w.Code)
	}

	okW, okBody := doJSON(t, r, http.MethodPatch, "/api/jobs/"+jobID+"/status", map[string]any{
		"isActive": false,
	})
	if okW.Code != http.StatusOK {
		t.Fatalf("PATCH isActive=false status = %d", okW.Code)
	}
	job := okBody["job"].(map[string]any)
	if job["isActive"] != false {
		t.Errorf("job.isActive = %v, want false", job["isActive"])
	}
}

func TestGetMissingJobAndApplicationReturn404(t *testing.T) {
	r, _ := newTestServer(t)

	w, _ := doJSON(t, r, http.MethodGet, "/api/jobs/does-not-exist", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("GET missing job = %d, want 404", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodGet, "/api/applications/does-not-exist", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("GET missing application = %d, want 404", w.Code)
	}
}
