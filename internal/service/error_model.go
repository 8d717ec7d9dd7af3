package service

import "errors"

// ErrorCode 业务错误分类，写入响应体的 error 字段。
type ErrorCode string

const (
	ErrorCodeInvalidName            ErrorCode = "InvalidName"
	ErrorCodeDuplicateName          ErrorCode = "DuplicateName"
	ErrorCodeUnsupportedImageFormat ErrorCode = "UnsupportedImageFormat"
	ErrorCodeFileTooLarge           ErrorCode = "FileTooLarge"
	ErrorCodeFolderNotFound         ErrorCode = "FolderNotFound"
	ErrorCodeImageNotFound          ErrorCode = "ImageNotFound"
	ErrorCodeValidation             ErrorCode = "Validation"
	ErrorCodeInternal               ErrorCode = "Internal"
)

type ServiceError struct {
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewServiceError(code ErrorCode, message string) error {
	return &ServiceError{Code: code, Message: message}
}

func NewInvalidNameError(message string) error {
	return NewServiceError(ErrorCodeInvalidName, message)
}

func NewDuplicateNameError(message string) error {
	return NewServiceError(ErrorCodeDuplicateName, message)
}

func NewUnsupportedImageFormatError(message string) error {
	return NewServiceError(ErrorCodeUnsupportedImageFormat, message)
}

func NewFileTooLargeError(message string) error {
	return NewServiceError(ErrorCodeFileTooLarge, message)
}

func NewFolderNotFoundError(message string) error {
	return NewServiceError(ErrorCodeFolderNotFound, message)
}

func NewImageNotFoundError(message string) error {
	return NewServiceError(ErrorCodeImageNotFound, message)
}

func NewValidationError(message string) error {
	return NewServiceError(ErrorCodeValidation, message)
}

func NewInternalError(message string) error {
	return NewServiceError(ErrorCodeInternal, message)
}

func AsServiceError(err error) (*ServiceError, bool) {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr, true
	}
	return nil, false
}
