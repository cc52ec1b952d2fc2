package student

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"admission-backend/internal/domain/apperr"
)

var (
	allowedExt = map[string]bool{".jpeg": true, ".jpg": true, ".png": true, ".pdf": true}
	allowedCT  = map[string]bool{"image/jpeg": true, "image/jpg": true, "image/png": true, "application/pdf": true}
)

// checkFile enforces the image/PDF allow-list on both extension and declared
// content type, and the size ceiling.
func checkFile(name, contentType string, size, max int64) error {
	ext := strings.ToLower(filepath.Ext(name))
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil || !allowedExt[ext] || !allowedCT[strings.ToLower(mt)] {
		return apperr.Validation("Only images and PDFs are allowed")
	}
	if max > 0 && size > max {
		return apperr.Validation(fmt.Sprintf("File too large (max %d bytes)", max))
	}
	return nil
}
