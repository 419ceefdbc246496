package utils

import (
	"fmt"           // URL formatting
	"os"            // Directory creation
	"path/filepath" // Path handling

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/google/uuid"   // Random upload filenames
)

// SaveUploadedImage stores the multipart file from the given form field under
// a uuid-based name in dir and returns the public URL built from the request
// host. The caller only records the URL; the file itself is served statically
// from /uploads. Returns an empty URL with a nil error when the field is
// absent, so callers with optional images can pass that through.
func SaveUploadedImage(c *gin.Context, field, dir string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil // No file supplied
	}
	// Make sure the upload directory exists
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	// Random name keeps uploads from clobbering each other
	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	// Build the public URL from the serving host
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/uploads/%s", scheme, c.Request.Host, name), nil
}
