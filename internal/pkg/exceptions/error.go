package exceptions

import (
	"carepulse-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

type CustomError struct {
	StatusCode    int               `json:"status_code"`
	Success       bool              `json:"success"`
	ClientMessage string            `json:"message"`
	Errors        map[string]string `json:"errors,omitempty"`
	DevMessage    string            `json:"dev_message,omitempty"`
	Locations     []Location        `json:"locations,omitempty"`
	Err           error             `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// BuildNewCustomError records the location of whoever called the Err* constructor.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}

	customErr := &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{location},
		Err:           err,
	}

	var previous *CustomError
	if errors.As(err, &previous) {
		customErr.Locations = append(customErr.Locations, previous.Locations...)
	}
	return customErr
}

// StatusCodeOf returns the HTTP status carried by err, or 500 for foreign errors.
func StatusCodeOf(err error) int {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode
	}
	return constvars.StatusInternalServerError
}

func IsValidationError(err error) bool {
	return err != nil && StatusCodeOf(err) == constvars.StatusBadRequest
}

func IsNotFoundError(err error) bool {
	return err != nil && StatusCodeOf(err) == constvars.StatusNotFound
}

func IsConflictError(err error) bool {
	return err != nil && StatusCodeOf(err) == constvars.StatusConflict
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
