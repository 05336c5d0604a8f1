package domain

import "errors"

var (
	ErrNotFound               = errors.New("resource not found")
	ErrAgreementNotFound      = errors.New("agreement not found")
	ErrAgreementAlreadyExists = errors.New("agreement already exists for this file")
	ErrNotPDF                 = errors.New("not a PDF file")
	ErrFileTooLarge           = errors.New("file exceeds maximum allowed size")
	ErrEmptyContent           = errors.New("could not extract content from PDF")
	ErrArchiveFailed          = errors.New("archiving file to storage failed")
)
