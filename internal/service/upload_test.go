// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/olegiv/careerbase/internal/model"
)

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func pngFile(t *testing.T, width, height int) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := range width {
		for y := range height {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}

	header := &multipart.FileHeader{
		Filename: "test.png",
		Size:     int64(buf.Len()),
		Header:   textproto.MIMEHeader{"Content-Type": []string{model.MimeTypePNG}},
	}
	return memFile{bytes.NewReader(buf.Bytes())}, header
}

func TestUploadStoresImage(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir, "/uploads")

	file, header := pngFile(t, 10, 10)
	result, err := svc.Upload(file, header, model.UploadFolderLogo)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if !strings.HasPrefix(result.URL, "/uploads/logo/") {
		t.Errorf("URL = %q, want /uploads/logo/ prefix", result.URL)
	}
	if result.Width != 10 || result.Height != 10 {
		t.Errorf("dimensions = %dx%d, want 10x10", result.Width, result.Height)
	}
	if result.Filename == "test.png" {
		t.Error("original filename reused, want a generated name")
	}

	stored := filepath.Join(dir, model.UploadFolderLogo, result.Filename)
	if _, err := os.Stat(stored); err != nil {
		t.Errorf("stored file missing: %v", err)
	}
}

func TestUploadResizesOversizedLogo(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir, "/uploads")

	file, header := pngFile(t, 800, 600)
	result, err := svc.Upload(file, header, model.UploadFolderLogo)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	cfg := model.ImageVariants[model.UploadFolderLogo]
	if result.Width > cfg.Width || result.Height > cfg.Height {
		t.Errorf("dimensions = %dx%d, want fit within %dx%d",
			result.Width, result.Height, cfg.Width, cfg.Height)
	}
}

func TestUploadRejections(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir, "/uploads")

	tests := []struct {
		name     string
		folder   string
		header   *multipart.FileHeader
		body     []byte
		wantCode string
	}{
		{
			name:   "unknown folder",
			folder: "secrets",
			header: &multipart.FileHeader{
				Filename: "a.png",
				Header:   textproto.MIMEHeader{"Content-Type": []string{model.MimeTypePNG}},
			},
			wantCode: UploadErrBadFolder,
		},
		{
			name:   "pdf into image folder",
			folder: model.UploadFolderBanner,
			header: &multipart.FileHeader{
				Filename: "a.pdf",
				Header:   textproto.MIMEHeader{"Content-Type": []string{"application/pdf"}},
			},
			wantCode: UploadErrBadType,
		},
		{
			name:   "image into video folder",
			folder: model.UploadFolderVideo,
			header: &multipart.FileHeader{
				Filename: "a.png",
				Header:   textproto.MIMEHeader{"Content-Type": []string{model.MimeTypePNG}},
			},
			wantCode: UploadErrBadType,
		},
		{
			name:   "image over size limit",
			folder: model.UploadFolderSection,
			header: &multipart.FileHeader{
				Filename: "a.png",
				Size:     model.MaxImageSize + 1,
				Header:   textproto.MIMEHeader{"Content-Type": []string{model.MimeTypePNG}},
			},
			wantCode: UploadErrTooLarge,
		},
		{
			name:   "video over size limit",
			folder: model.UploadFolderVideo,
			header: &multipart.FileHeader{
				Filename: "a.mp4",
				Size:     model.MaxVideoSize + 1,
				Header:   textproto.MIMEHeader{"Content-Type": []string{model.MimeTypeMP4}},
			},
			wantCode: UploadErrTooLarge,
		},
		{
			name:   "corrupt image payload",
			folder: model.UploadFolderLogo,
			header: &multipart.FileHeader{
				Filename: "a.png",
				Size:     11,
				Header:   textproto.MIMEHeader{"Content-Type": []string{model.MimeTypePNG}},
			},
			body:     []byte("not a image"),
			wantCode: UploadErrUnreadable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := memFile{bytes.NewReader(tt.body)}
			_, err := svc.Upload(file, tt.header, tt.folder)
			var uploadErr *UploadError
			if err == nil {
				t.Fatal("Upload succeeded, want rejection")
			}
			if !errors.As(err, &uploadErr) {
				t.Fatalf("error type = %T, want *UploadError", err)
			}
			if uploadErr.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", uploadErr.Code, tt.wantCode)
			}
		})
	}
}

func TestUploadLeavesNoFileOnRejection(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir, "/uploads")

	header := &multipart.FileHeader{
		Filename: "a.png",
		Size:     10,
		Header:   textproto.MIMEHeader{"Content-Type": []string{model.MimeTypePNG}},
	}
	_, err := svc.Upload(memFile{bytes.NewReader([]byte("corrupted"))}, header, model.UploadFolderLogo)
	if err == nil {
		t.Fatal("Upload succeeded, want rejection")
	}

	entries, err := os.ReadDir(filepath.Join(dir, model.UploadFolderLogo))
	if err == nil && len(entries) > 0 {
		t.Errorf("found %d files after rejected upload, want none", len(entries))
	}
}
