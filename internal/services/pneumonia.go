package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/antonkarev/healthhub/internal/apiclient"
	"github.com/antonkarev/healthhub/internal/domain"
	apperrors "github.com/antonkarev/healthhub/internal/errors"
	"github.com/antonkarev/healthhub/internal/logger"
	"github.com/antonkarev/healthhub/internal/session"
)

// Upload limits enforced locally before any request is attempted.
const MaxFileSize = 5 * 1024 * 1024 // 5MB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// selectedFile is the X-ray image staged for upload, with the locally
// created preview copy that must be released on clear or replace.
type selectedFile struct {
	path        string
	name        string
	size        int64
	contentType string
	previewPath string
}

// PneumoniaService handles X-ray selection, local checks and classification.
type PneumoniaService struct {
	api   *apiclient.Client
	sess  *session.Store
	guard inflightGuard

	selected *selectedFile
}

func NewPneumoniaService(api *apiclient.Client, sess *session.Store) *PneumoniaService {
	return &PneumoniaService{api: api, sess: sess}
}

// Select stages an image file for upload. Disallowed types and oversized
// files are rejected locally; no request is sent. Replacing a previous
// selection releases its preview resource first.
func (s *PneumoniaService) Select(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return apperrors.NewValidationError(fmt.Sprintf("Cannot read file: %v", err))
	}
	if info.Size() > MaxFileSize {
		return apperrors.NewValidationError("File size must be less than 5MB.")
	}

	contentType, err := sniffContentType(path)
	if err != nil {
		return apperrors.NewValidationError(fmt.Sprintf("Cannot read file: %v", err))
	}
	if !allowedImageTypes[contentType] {
		return apperrors.NewValidationError("Please upload a JPG or PNG image file.")
	}

	previewPath, err := createPreview(path)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrorTypeInternal, "PREVIEW", "Failed to create preview")
	}

	s.Clear()
	s.selected = &selectedFile{
		path:        path,
		name:        filepath.Base(path),
		size:        info.Size(),
		contentType: contentType,
		previewPath: previewPath,
	}
	logger.Debug("X-ray staged for upload", "file", s.selected.name, "size", s.selected.size)
	return nil
}

// Selected reports the staged file name, empty when none.
func (s *PneumoniaService) Selected() string {
	if s.selected == nil {
		return ""
	}
	return s.selected.name
}

// Preview returns the path of the local preview copy, empty when none.
func (s *PneumoniaService) Preview() string {
	if s.selected == nil {
		return ""
	}
	return s.selected.previewPath
}

// Clear drops the staged file and releases its preview resource. Safe to
// call with nothing selected.
func (s *PneumoniaService) Clear() {
	if s.selected == nil {
		return
	}
	if s.selected.previewPath != "" {
		if err := os.Remove(s.selected.previewPath); err != nil && !os.IsNotExist(err) {
			logger.Warn("Failed to remove preview file", "path", s.selected.previewPath, "error", err)
		}
	}
	s.selected = nil
}

// Detect uploads the staged image and interprets the classification.
func (s *PneumoniaService) Detect(ctx context.Context) (*domain.PneumoniaResult, error) {
	if err := s.guard.begin(); err != nil {
		return nil, err
	}
	defer s.guard.end()

	if s.selected == nil {
		return nil, apperrors.NewValidationError("Please select an image file first.")
	}

	f, err := os.Open(s.selected.path)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Cannot read file: %v", err))
	}
	defer f.Close()

	var result domain.PneumoniaResult
	if err := s.api.Upload(ctx, "/pneumonia/detect", "file", s.selected.name, f, &result); err != nil {
		return nil, err
	}

	s.record(result)
	return &result, nil
}

func (s *PneumoniaService) record(result domain.PneumoniaResult) {
	user := s.sess.User()
	if user == nil {
		return
	}
	s.sess.AddAssessment(domain.HealthAssessment{
		ID:     uuid.NewString(),
		UserID: user.ID,
		Type:   domain.AssessmentPneumonia,
		Input: map[string]any{
			"fileName": s.selected.name,
			"fileSize": s.selected.size,
		},
		Result: map[string]any{
			"probability": result.Probability,
			"label":       result.Label,
		},
		CreatedAt: time.Now(),
	})
	logger.Info("Pneumonia detection recorded", "label", result.Label, "probability", result.Probability)
}

// sniffContentType detects the MIME type from the file's leading bytes
// rather than trusting the extension.
func sniffContentType(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

// createPreview copies the image into a temporary preview file the screens
// can display. The copy is owned by the service and removed on Clear.
func createPreview(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	preview, err := os.CreateTemp("", "healthhub-preview-*"+filepath.Ext(path))
	if err != nil {
		return "", err
	}
	defer preview.Close()

	if _, err := io.Copy(preview, src); err != nil {
		os.Remove(preview.Name())
		return "", err
	}
	return preview.Name(), nil
}
