package utils

import (
	"carepulse-service/internal/pkg/constvars"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateObjectName returns a fresh object key that keeps the lower cased
// extension of the uploaded file name.
func GenerateObjectName(fileName string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(fileName))
}
