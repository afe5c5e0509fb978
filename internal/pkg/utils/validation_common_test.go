package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateImage(t *testing.T) {
	const maxSize = 5 * 1024 * 1024

	assert.NoError(t, ValidateImage("portrait.JPG", 1024, maxSize))
	assert.NoError(t, ValidateImage("portrait.webp", 1024, maxSize))
	assert.Error(t, ValidateImage("portrait.gif", 1024, maxSize))
	assert.Error(t, ValidateImage("portrait.png", 0, maxSize))
	assert.Error(t, ValidateImage("portrait.png", maxSize+1, maxSize))
}

func TestValidateDocument(t *testing.T) {
	assert.NoError(t, ValidateDocument("cnic.pdf", 2048, 0))
	assert.Error(t, ValidateDocument("cnic.docx", 2048, 0))
}

func TestValidateUrlParamID(t *testing.T) {
	assert.NoError(t, ValidateUrlParamID("665f1c2a9d1e4b0012345678"))
	assert.Error(t, ValidateUrlParamID(""))
	assert.Error(t, ValidateUrlParamID("not-an-object-id"))
}
