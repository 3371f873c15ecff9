package api

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

// saveUploadedImages writes the multipart "images" files to the uploads
// directory and returns the stored filenames.
func (s *Server) saveUploadedImages(c *gin.Context) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("read multipart form: %w", err)
	}

	if err := os.MkdirAll(s.cfg.Uploads.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}

	var names []string
	for _, file := range form.File["images"] {
		name := fmt.Sprintf("%s_%s", time.Now().UTC().Format("20060102T150405.000000000"), filepath.Base(file.Filename))
		if err := c.SaveUploadedFile(file, filepath.Join(s.cfg.Uploads.Dir, name)); err != nil {
			return nil, fmt.Errorf("save uploaded file: %w", err)
		}
		names = append(names, name)
	}
	return names, nil
}
