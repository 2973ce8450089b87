package asset

import (
	"mime"
	"slices"
	"strings"
)

var allowedMimeTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/zip",
	"application/x-zip-compressed",
	"text/plain",
}

// NormalizeMimeType drops parameters such as charset and lower-cases the type.
func NormalizeMimeType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}

func IsAllowedMimeType(contentType string) bool {
	return slices.Contains(allowedMimeTypes, NormalizeMimeType(contentType))
}
