package utils

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound             = errors.New("resource not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrValidation           = errors.New("validation failed")
	ErrInternal             = errors.New("internal error")
	ErrUnsupportedFamily    = errors.New("unsupported product family")
	ErrUnsupportedAccessory = errors.New("unsupported accessory code")
	ErrUploadFailed         = errors.New("upload failed")
	ErrTimeout              = errors.New("operation timeout")
)

const (
	CodeNotFound             = "NOT_FOUND"
	CodeInvalidInput         = "INVALID_INPUT"
	CodeValidation           = "VALIDATION_ERROR"
	CodeInternal             = "INTERNAL_ERROR"
	CodeUnsupportedFamily    = "UNSUPPORTED_FAMILY"
	CodeUnsupportedAccessory = "UNSUPPORTED_ACCESSORY"
	CodeUploadFailed         = "UPLOAD_FAILED"
	CodeTimeout              = "TIMEOUT"
)

type AppError struct {
	Code    string
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
		Details: make(map[string]interface{}),
	}
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.Is(err, ErrNotFound) ||
		(err != nil && errors.As(err, &appErr) && appErr.Code == CodeNotFound)
}

func IsValidation(err error) bool {
	var appErr *AppError
	return errors.Is(err, ErrValidation) ||
		(err != nil && errors.As(err, &appErr) && appErr.Code == CodeValidation)
}

func IsUnsupportedFamily(err error) bool {
	var appErr *AppError
	return errors.Is(err, ErrUnsupportedFamily) ||
		(err != nil && errors.As(err, &appErr) && appErr.Code == CodeUnsupportedFamily)
}

func IsUnsupportedAccessory(err error) bool {
	var appErr *AppError
	return errors.Is(err, ErrUnsupportedAccessory) ||
		(err != nil && errors.As(err, &appErr) && appErr.Code == CodeUnsupportedAccessory)
}

func WrapError(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
