package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"admission-backend/internal/domain/apperr"
	"admission-backend/internal/usecase/student"

	"github.com/labstack/echo/v4"
)

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// formFile opens the multipart file under field. The caller closes the
// returned reader.
func formFile(c echo.Context, field string) (student.UploadInput, io.Closer, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return student.UploadInput{}, nil, apperr.Validation("No file uploaded")
		}
		return student.UploadInput{}, nil, apperr.Validation("invalid multipart body")
	}
	f, err := fh.Open()
	if err != nil {
		return student.UploadInput{}, nil, err
	}
	return student.UploadInput{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Body:        f,
	}, f, nil
}
