package service

import "errors"

var (
	ErrEmptyBaseURL       = errors.New("base url is empty")
	ErrRecordMissingEmail = errors.New("record has no authentication.email")

	ErrInvalidCursor      = errors.New("directory rejected cursor")
	ErrInvalidLimit       = errors.New("directory rejected limit")
	ErrDirectoryNotFound  = errors.New("user directory not found")
	ErrDirectoryInternal  = errors.New("user directory internal error")
	ErrDirectoryMalformed = errors.New("user directory returned a malformed page")
)
