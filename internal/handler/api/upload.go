// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"errors"
	"net/http"

	"github.com/olegiv/careerbase/internal/model"
	"github.com/olegiv/careerbase/internal/service"
)

// uploadMemoryLimit is how much of a multipart body is held in memory
// before spilling to temp files. Large videos stream from disk.
const uploadMemoryLimit = 32 << 20 // 32 MB

// Upload handles POST /api/v1/upload.
// The multipart form carries "file" and "folder". Nothing is recorded on
// failure; the response URL is the only artifact the caller attaches to
// a company or section.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.uploads == nil {
		WriteInternalError(w, "Uploads are not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, model.MaxVideoSize+uploadMemoryLimit)
	if err := r.ParseMultipartForm(uploadMemoryLimit); err != nil {
		WriteBadRequest(w, "Invalid multipart form", nil)
		return
	}

	folder := r.FormValue("folder")

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteBadRequest(w, "Missing file field", nil)
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.uploads.Upload(file, header, folder)
	if err != nil {
		var uploadErr *service.UploadError
		if errors.As(err, &uploadErr) {
			switch uploadErr.Code {
			case service.UploadErrBadFolder:
				WriteValidationError(w, map[string]string{"folder": uploadErr.Message})
			case service.UploadErrBadType:
				WriteError(w, http.StatusUnsupportedMediaType, uploadErr.Code, uploadErr.Message, nil)
			case service.UploadErrTooLarge:
				WriteError(w, http.StatusRequestEntityTooLarge, uploadErr.Code, uploadErr.Message, nil)
			default:
				WriteBadRequest(w, uploadErr.Message, nil)
			}
			return
		}
		h.logger.Error("upload failed",
			"category", "upload",
			"folder", folder,
			"error", err)
		WriteInternalError(w, "Failed to store upload")
		return
	}

	h.logger.Info("file uploaded",
		"category", "upload",
		"folder", folder,
		"filename", result.Filename,
		"size", result.Size)

	WriteCreated(w, result)
}
