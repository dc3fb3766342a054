package document

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/audit"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/document"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
	"github.com/casarosa-rh/hr-backend-go/internal/pkg/storage"
)

const maxFileSizeBytes = 10 << 20 // 10 MiB

type Service struct {
	repo     document.Repository
	files    storage.FileStorage
	recorder audit.Recorder
}

func NewService(repo document.Repository, files storage.FileStorage, recorder audit.Recorder) *Service {
	return &Service{repo: repo, files: files, recorder: recorder}
}

func (s *Service) Upload(ctx context.Context, actor user.Actor, req document.UploadRequest) (document.Document, error) {
	if err := req.Validate(); err != nil {
		return document.Document{}, err
	}
	if !actor.Role.IsHR() && actor.EmployeeUID != req.EmployeeUID {
		return document.Document{}, user.ErrNotAllowed
	}
	if req.SizeBytes == 0 {
		return document.Document{}, document.ErrEmptyFile
	}
	if req.SizeBytes > maxFileSizeBytes {
		return document.Document{}, document.ErrFileTooLarge
	}

	ext := filepath.Ext(req.Name)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	path := fmt.Sprintf("documents/%s/%d_%s%s",
		req.EmployeeUID, time.Now().Unix(), uuid.NewString()[:8], ext)

	storedPath, err := s.files.Upload(ctx, req.Content, path, contentType)
	if err != nil {
		return document.Document{}, fmt.Errorf("failed to store file: %w", err)
	}
	url, err := s.files.GetURL(ctx, storedPath)
	if err != nil {
		return document.Document{}, fmt.Errorf("failed to resolve file url: %w", err)
	}

	created, err := s.repo.Create(ctx, document.Document{
		EmployeeUID: req.EmployeeUID,
		Name:        req.Name,
		Category:    req.Category,
		URL:         url,
		SizeBytes:   req.SizeBytes,
		UploadedBy:  actor.UserID,
	})
	if err != nil {
		// Best effort: the orphaned object is removed when the metadata
		// write fails.
		_ = s.files.Delete(ctx, storedPath)
		return document.Document{}, err
	}

	s.recorder.Record(ctx, actor, "document.upload", created.ID, map[string]interface{}{
		"employee_uid": created.EmployeeUID,
		"name":         created.Name,
	})

	return created, nil
}

func (s *Service) List(ctx context.Context, actor user.Actor, filter document.Filter) ([]document.Document, error) {
	if !actor.Role.IsHR() {
		if filter.EmployeeUID == "" {
			filter.EmployeeUID = actor.EmployeeUID
		} else if filter.EmployeeUID != actor.EmployeeUID {
			return nil, user.ErrNotAllowed
		}
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, actor user.Actor, id string) (document.Document, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return document.Document{}, err
	}
	if !actor.Role.IsHR() && actor.EmployeeUID != doc.EmployeeUID {
		return document.Document{}, user.ErrNotAllowed
	}
	return doc, nil
}

func (s *Service) Delete(ctx context.Context, actor user.Actor, id string) error {
	if !actor.Role.IsHR() {
		return user.ErrNotAllowed
	}

	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, doc.ID); err != nil {
		return err
	}

	s.recorder.Record(ctx, actor, "document.delete", doc.ID, nil)
	return nil
}
