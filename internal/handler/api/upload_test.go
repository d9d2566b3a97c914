// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"strings"
	"testing"

	"github.com/olegiv/careerbase/internal/service"
)

func multipartUpload(t *testing.T, folder, filename string, payload []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("folder", folder); err != nil {
		t.Fatalf("writing folder field: %v", err)
	}
	ph := make(textproto.MIMEHeader)
	ph.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		ph.Set("Content-Type", ct)
	}
	fw, err := mw.CreatePart(ph)
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if _, err := fw.Write(payload); err != nil {
		t.Fatalf("writing file payload: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/upload", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := range width {
		for y := range height {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test png: %v", err)
	}
	return buf.Bytes()
}

func TestUploadHandler(t *testing.T) {
	h, _, cleanup := testSetup(t)
	defer cleanup()

	uploadDir := t.TempDir()
	h.SetUploadService(service.NewUploadService(uploadDir, testBaseURL+"/uploads"))

	t.Run("stores logo", func(t *testing.T) {
		r := multipartUpload(t, "logo", "logo.png", testPNG(t, 64, 64))
		rec := httptest.NewRecorder()
		h.Upload(rec, r)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
		}
		var resp service.UploadResult
		decodeEnvelope(t, rec, &resp)
		if !strings.HasPrefix(resp.URL, testBaseURL+"/uploads/logo/") {
			t.Errorf("url = %q, want under %s/uploads/logo/", resp.URL, testBaseURL)
		}
	})

	t.Run("unknown folder", func(t *testing.T) {
		r := multipartUpload(t, "secrets", "logo.png", testPNG(t, 8, 8))
		rec := httptest.NewRecorder()
		h.Upload(rec, r)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", rec.Code)
		}
	})

	t.Run("wrong type for image folder", func(t *testing.T) {
		r := multipartUpload(t, "banner", "notes.txt", []byte("plain text"))
		rec := httptest.NewRecorder()
		h.Upload(rec, r)

		if rec.Code != http.StatusUnsupportedMediaType {
			t.Fatalf("status = %d, want 415, body: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("missing file field", func(t *testing.T) {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		_ = mw.WriteField("folder", "logo")
		_ = mw.Close()

		r := httptest.NewRequest(http.MethodPost, "/api/v1/upload", &body)
		r.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()
		h.Upload(rec, r)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}
