package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contracthub-inc/contracthub/internal/shared/errors"
)

const sniffLength = 512

// FormFile is an opened multipart upload. Callers must Close it.
type FormFile struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
	file        multipart.File
}

func (f *FormFile) Close() error {
	return f.file.Close()
}

// OpenFormFile opens the multipart field and settles its content type. A
// missing or generic declared type is replaced by a sniffed one.
func OpenFormFile(c *gin.Context, field string, maxBytes int64) (*FormFile, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, errors.NewValidationError("file is required", field)
	}
	if maxBytes > 0 && header.Size > maxBytes {
		return nil, errors.NewValidationError(fmt.Sprintf("file exceeds %d bytes", maxBytes), header.Filename)
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		head := make([]byte, sniffLength)
		n, err := io.ReadFull(file, head)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			_ = file.Close()
			return nil, fmt.Errorf("failed to read uploaded file: %w", err)
		}
		contentType = http.DetectContentType(head[:n])
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("failed to rewind uploaded file: %w", err)
		}
	}

	return &FormFile{
		Name:        header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        file,
		file:        file,
	}, nil
}
