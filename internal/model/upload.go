// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Upload size limits.
const (
	MaxImageSize = 5 * 1024 * 1024   // 5MB
	MaxVideoSize = 500 * 1024 * 1024 // 500MB
)

// Supported MIME types.
const (
	MimeTypeJPEG = "image/jpeg"
	MimeTypePNG  = "image/png"
	MimeTypeGIF  = "image/gif"
	MimeTypeWebP = "image/webp"
	MimeTypeMP4  = "video/mp4"
	MimeTypeWebM = "video/webm"
)

// Upload folders map an asset kind to its directory under the uploads
// root and to the variant produced for it.
const (
	UploadFolderLogo    = "logo"
	UploadFolderBanner  = "banner"
	UploadFolderSection = "section"
	UploadFolderVideo   = "video"
)

// ValidUploadFolders lists the accepted values of the upload folder parameter.
var ValidUploadFolders = []string{
	UploadFolderLogo,
	UploadFolderBanner,
	UploadFolderSection,
	UploadFolderVideo,
}

// IsValidUploadFolder reports whether folder is an accepted upload target.
func IsValidUploadFolder(folder string) bool {
	for _, f := range ValidUploadFolders {
		if f == folder {
			return true
		}
	}
	return false
}

// IsImageMimeType reports whether the MIME type is a processable image.
func IsImageMimeType(mimeType string) bool {
	switch mimeType {
	case MimeTypeJPEG, MimeTypePNG, MimeTypeGIF, MimeTypeWebP:
		return true
	default:
		return false
	}
}

// IsVideoMimeType reports whether the MIME type is an accepted video.
func IsVideoMimeType(mimeType string) bool {
	switch mimeType {
	case MimeTypeMP4, MimeTypeWebM:
		return true
	default:
		return false
	}
}

// ImageVariantConfig describes how to derive a resized variant of an
// uploaded image.
type ImageVariantConfig struct {
	Width   int
	Height  int
	Quality int
	Crop    bool
}

// ImageVariants maps upload folders to the variant produced for pages.
// Logos fit within a square, banners crop to the page header ratio,
// section images fit the content column.
var ImageVariants = map[string]ImageVariantConfig{
	UploadFolderLogo:    {Width: 400, Height: 400, Quality: 90},
	UploadFolderBanner:  {Width: 1600, Height: 480, Quality: 85, Crop: true},
	UploadFolderSection: {Width: 1200, Height: 800, Quality: 85},
}
