package utils

import (
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/exceptions"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

// LimitMultipartBody caps the request body at the file limit plus room for the other form parts.
func LimitMultipartBody(w http.ResponseWriter, r *http.Request, maxFileSizeInBytes int64) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFileSizeInBytes+constvars.MultipartFormOverheadInBytes)
}

// BuildCreateDoctorRequest reads the multipart doctor form. Missing parts are
// reported together so the caller sees every absent field at once.
func BuildCreateDoctorRequest(r *http.Request, maxImageSizeInBytes int64) (*requests.CreateDoctor, error) {
	if err := parseMultipartForm(r, maxImageSizeInBytes); err != nil {
		return nil, err
	}

	request := &requests.CreateDoctor{
		Name:       strings.TrimSpace(r.FormValue(constvars.FormFieldName)),
		Speciality: strings.TrimSpace(r.FormValue(constvars.FormFieldSpeciality)),
	}

	image, imageName, err := readFormFile(r, constvars.FormFieldImage, maxImageSizeInBytes)
	if err != nil {
		return nil, err
	}
	request.Image = image
	request.ImageName = imageName

	var missing []string
	if request.Name == "" {
		missing = append(missing, constvars.FormFieldName)
	}
	if request.Speciality == "" {
		missing = append(missing, constvars.FormFieldSpeciality)
	}
	if len(request.Image) == 0 {
		missing = append(missing, constvars.FormFieldImage)
	}
	if len(missing) > 0 {
		return nil, exceptions.ErrMissingRequiredFields(nil, missing...)
	}

	return request, nil
}

// BuildRegisterPatientRequest reads the JSON encoded patient form field and
// the optional identification document.
func BuildRegisterPatientRequest(r *http.Request, maxDocumentSizeInBytes int64) (*requests.RegisterPatient, error) {
	if err := parseMultipartForm(r, maxDocumentSizeInBytes); err != nil {
		return nil, err
	}

	patientJSON := r.FormValue(constvars.FormFieldPatient)
	if patientJSON == "" {
		return nil, exceptions.ErrMissingRequiredFields(nil, constvars.FormFieldPatient)
	}

	request := new(requests.RegisterPatient)
	if err := json.Unmarshal([]byte(patientJSON), request); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	document, documentName, err := readFormFile(r, constvars.FormFieldIdentificationDocument, maxDocumentSizeInBytes)
	if err != nil {
		return nil, err
	}
	request.IdentificationDocument = document
	request.IdentificationDocumentName = documentName

	return request, nil
}

func parseMultipartForm(r *http.Request, maxMemoryInBytes int64) error {
	err := r.ParseMultipartForm(maxMemoryInBytes)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return exceptions.ErrFileTooLarge(err)
		}
		return exceptions.ErrCannotParseMultipartForm(err)
	}
	return nil
}

func readFormFile(r *http.Request, field string, maxSizeInBytes int64) ([]byte, string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, "", nil
		}
		return nil, "", exceptions.ErrCannotParseMultipartForm(err)
	}
	defer file.Close()

	if header.Size > maxSizeInBytes {
		return nil, "", exceptions.ErrFileTooLarge(fmt.Errorf("%s is %d bytes, limit is %d bytes", field, header.Size, maxSizeInBytes))
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, "", exceptions.ErrCannotParseMultipartForm(err)
	}
	return content, header.Filename, nil
}
