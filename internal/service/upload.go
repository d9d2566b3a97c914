// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/olegiv/careerbase/internal/imaging"
	"github.com/olegiv/careerbase/internal/model"
)

// DefaultUploadDir is used when no uploads directory is configured.
const DefaultUploadDir = "./uploads"

// UploadResult describes a stored upload.
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

// UploadError wraps a rejected upload with a stable code for the API.
type UploadError struct {
	Code    string
	Message string
}

func (e *UploadError) Error() string {
	return e.Message
}

// Upload rejection codes.
const (
	UploadErrBadFolder  = "invalid_folder"
	UploadErrBadType    = "unsupported_type"
	UploadErrTooLarge   = "file_too_large"
	UploadErrUnreadable = "unreadable_file"
)

// UploadService validates and stores branding images, section images
// and culture videos. Files are stored on disk under a per-folder
// directory with a random name; no database row is written, callers
// attach the returned URL to a company or section themselves.
type UploadService struct {
	processor *imaging.Processor
	baseURL   string
}

// NewUploadService creates a new upload service. baseURL prefixes the
// returned file URLs, e.g. "/uploads".
func NewUploadService(uploadDir, baseURL string) *UploadService {
	if uploadDir == "" {
		uploadDir = DefaultUploadDir
	}
	return &UploadService{
		processor: imaging.NewProcessor(uploadDir),
		baseURL:   strings.TrimSuffix(baseURL, "/"),
	}
}

// Upload validates the file against the folder's type and size rules,
// processes images, and stores the result under a generated name.
func (s *UploadService) Upload(file multipart.File, header *multipart.FileHeader, folder string) (*UploadResult, error) {
	if !model.IsValidUploadFolder(folder) {
		return nil, &UploadError{Code: UploadErrBadFolder, Message: fmt.Sprintf("unknown upload folder %q", folder)}
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mimeTypeFromExtension(header.Filename)
	}
	if idx := strings.Index(mimeType, ";"); idx != -1 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}

	isVideo := folder == model.UploadFolderVideo
	if isVideo {
		if !model.IsVideoMimeType(mimeType) {
			return nil, &UploadError{Code: UploadErrBadType, Message: fmt.Sprintf("file type %s is not allowed for videos", mimeType)}
		}
		if header.Size > model.MaxVideoSize {
			return nil, &UploadError{Code: UploadErrTooLarge, Message: fmt.Sprintf("video exceeds maximum size of %d bytes", model.MaxVideoSize)}
		}
	} else {
		if !model.IsImageMimeType(mimeType) {
			return nil, &UploadError{Code: UploadErrBadType, Message: fmt.Sprintf("file type %s is not allowed for images", mimeType)}
		}
		if header.Size > model.MaxImageSize {
			return nil, &UploadError{Code: UploadErrTooLarge, Message: fmt.Sprintf("image exceeds maximum size of %d bytes", model.MaxImageSize)}
		}
	}

	filename := uuid.New().String() + safeExtension(header.Filename)

	if isVideo {
		_, size, err := s.processor.SaveVideo(file, folder, filename)
		if err != nil {
			return nil, &UploadError{Code: UploadErrUnreadable, Message: err.Error()}
		}
		return &UploadResult{
			URL:      s.fileURL(folder, filename),
			Filename: filename,
			MimeType: mimeType,
			Size:     size,
		}, nil
	}

	result, err := s.processor.ProcessImage(file, folder, filename)
	if err != nil {
		return nil, &UploadError{Code: UploadErrUnreadable, Message: err.Error()}
	}
	return &UploadResult{
		URL:      s.fileURL(folder, filename),
		Filename: filename,
		MimeType: result.MimeType,
		Size:     result.Size,
		Width:    result.Width,
		Height:   result.Height,
	}, nil
}

func (s *UploadService) fileURL(folder, filename string) string {
	return s.baseURL + "/" + folder + "/" + filename
}

func safeExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".mp4", ".webm":
		return ext
	default:
		return ""
	}
}

func mimeTypeFromExtension(filename string) string {
	return mime.TypeByExtension(filepath.Ext(filename))
}
