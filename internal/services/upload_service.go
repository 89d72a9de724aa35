package services

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/hirehive-labs/careers-portal/internal/blobstore"
)

// MaxResumeSize is the upload ceiling enforced before any store write.
const MaxResumeSize = 5 * 1024 * 1024

const docxMimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

var allowedResumeTypes = map[string]bool{
	"application/pdf": true,
	docxMimeType:      true,
}

// ResumeFile is one uploaded resume, already read into memory.
type ResumeFile struct {
	Data        []byte
	ContentType string
	Filename    string
}

// ResumeOwner carries the identifiers attached to the stored object as
// metadata. The metadata is only ever read by humans in the storage console.
type ResumeOwner struct {
	JobID         string
	ApplicationID string
	Name          string
	Email         string
	JobTitle      string
}

// UploadService derives object keys and writes resume files to the object
// store. It performs no retries and no compensating deletes.
type UploadService struct {
	store blobstore.Store
	now   func() time.Time
}

func NewUploadService(store blobstore.Store) *UploadService {
	return &UploadService{
		store: store,
		now:   time.Now,
	}
}

// ValidateResume rejects a file before any bytes travel to the store.
func ValidateResume(size int64, contentType string) error {
	if size > MaxResumeSize {
		return &UploadError{Msg: "file size exceeds 5MB limit, please upload a smaller file", Rejected: true}
	}
	if !allowedResumeTypes[contentType] {
		return &UploadError{Msg: "invalid file type, only PDF and DOCX files are allowed", Rejected: true}
	}
	return nil
}

// Store validates the file, derives its object key and performs the single
// store write. Returns the key the object was stored under.
func (s *UploadService) Store(ctx context.Context, file ResumeFile, owner ResumeOwner) (string, error) {
	if err := ValidateResume(int64(len(file.Data)), file.ContentType); err != nil {
		return "", err
	}

	timestamp := blobTimestamp(s.now().UTC())
	key := deriveObjectKey(timestamp, owner.Name, owner.JobTitle, file.Filename)

	metadata := map[string]string{
		"jobid":            owner.JobID,
		"applicationid":    owner.ApplicationID,
		"applicantname":    owner.Name,
		"applicantemail":   owner.Email,
		"jobtitle":         owner.JobTitle,
		"timestamp":        timestamp,
		"originalfilename": file.Filename,
	}

	if err := s.store.Put(ctx, key, file.Data, file.ContentType, metadata); err != nil {
		return "", &UploadError{Msg: "failed to upload resume to object store", Err: err}
	}
	return key, nil
}

// Exists reports whether a resume object is present under key.
func (s *UploadService) Exists(ctx context.Context, key string) (bool, error) {
	return s.store.Exists(ctx, key)
}

var (
	keyInvalidChars = regexp.MustCompile(`[^a-zA-Z0-9\s-]`)
	keyWhitespace   = regexp.MustCompile(`\s+`)
)

// blobTimestamp renders t the way the stored keys expect: ISO 8601 with
// millisecond precision, colons and dots replaced with dashes.
func blobTimestamp(t time.Time) string {
	iso := t.Format("2006-01-02T15:04:05.000Z")
	return strings.NewReplacer(":", "-", ".", "-").Replace(iso)
}

func sanitizeKeyPart(s string) string {
	s = keyInvalidChars.ReplaceAllString(s, "")
	s = keyWhitespace.ReplaceAllString(s, "-")
	return strings.ToLower(s)
}

// deriveObjectKey builds {timestamp}_{name}_{jobTitle}.{ext}. Keys are human
// legible but not guaranteed unique: two submissions in the same millisecond
// with the same name and title collide and overwrite.
//
// DOCX uploads are stored under a .pdf label while keeping the original
// bytes. Inherited quirk; downstream tooling expects these names.
func deriveObjectKey(timestamp, applicantName, jobTitle, originalFilename string) string {
	if jobTitle == "" {
		jobTitle = "job"
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(originalFilename), "."))
	if ext == "docx" {
		ext = "pdf"
	}

	return timestamp + "_" + sanitizeKeyPart(applicantName) + "_" + sanitizeKeyPart(jobTitle) + "." + ext
}
