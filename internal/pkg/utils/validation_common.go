package utils

import (
	"carepulse-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ValidateUrlParamID(param string) error {
	if param == "" {
		return errors.New("parameter is missing from url path")
	}

	_, err := primitive.ObjectIDFromHex(param)
	if err != nil {
		return err
	}

	return nil
}

// ValidateImage checks a doctor profile image by extension and size.
func ValidateImage(fileName string, size, maxSizeInBytes int64) error {
	return validateFile(fileName, size, maxSizeInBytes, constvars.AllowedImageExtensions)
}

// ValidateDocument checks an identification document by extension and size.
func ValidateDocument(fileName string, size, maxSizeInBytes int64) error {
	return validateFile(fileName, size, maxSizeInBytes, constvars.AllowedDocumentExtensions)
}

func validateFile(fileName string, size, maxSizeInBytes int64, allowedExtensions []string) error {
	if size == 0 {
		return errors.New("file is empty")
	}
	if maxSizeInBytes > 0 && size > maxSizeInBytes {
		return fmt.Errorf("file size %d exceeds the maximum limit of %d bytes", size, maxSizeInBytes)
	}

	extension := strings.ToLower(filepath.Ext(fileName))
	for _, allowed := range allowedExtensions {
		if extension == allowed {
			return nil
		}
	}
	return fmt.Errorf("invalid file format %q, allowed formats are: %s", extension, strings.Join(allowedExtensions, ", "))
}
