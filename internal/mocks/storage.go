package mocks

import (
	"context"
	"fmt"
	"frescoguard/domain"
	"mime/multipart"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

const storageBaseURL = "https://bucket.test/"

// Storage records object keys instead of talking to S3.
type Storage struct {
	mu       sync.Mutex
	Disabled bool
	Objects  map[string]string
	Deleted  []string
}

func NewStorage() *Storage {
	return &Storage{Objects: map[string]string{}}
}

func (s *Storage) Enabled() bool {
	return !s.Disabled
}

func (s *Storage) put(key string, file *multipart.FileHeader, allowedExt []string) (string, error) {
	if s.Disabled {
		return "", domain.ErrStorageNotAvailable
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(allowedExt) > 0 && !slices.Contains(allowedExt, ext) {
		return "", domain.ErrInvalidImageFormat
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Objects[key] = file.Filename
	return key, nil
}

func (s *Storage) UploadFile(_ context.Context, fileName string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	return s.put(fmt.Sprintf("%s/%s%s", folder, fileName, ext), file, allowedExt)
}

func (s *Storage) UpdateFile(_ context.Context, objectKey string, file *multipart.FileHeader, allowedExt ...string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	return s.put(strings.TrimSuffix(objectKey, filepath.Ext(objectKey))+ext, file, allowedExt)
}

func (s *Storage) DeleteFile(_ context.Context, objectKey string) error {
	if s.Disabled {
		return domain.ErrStorageNotAvailable
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Objects, objectKey)
	s.Deleted = append(s.Deleted, objectKey)
	return nil
}

func (s *Storage) GetPublicLinkKey(objectKey string) string {
	return storageBaseURL + objectKey
}

func (s *Storage) GetObjectKeyFromLink(link string) string {
	if !strings.HasPrefix(link, storageBaseURL) {
		return ""
	}
	return strings.TrimPrefix(link, storageBaseURL)
}
