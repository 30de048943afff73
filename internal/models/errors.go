package models

import (
	"errors"
)

var (
	ErrNoRecord            = errors.New("models: no matching record found")
	ErrInvalidCredentials  = errors.New("models: invalid credentials")
	ErrDuplicateEmail      = errors.New("models: duplicate email")
	ErrDuplicatePhone      = errors.New("models: duplicate phone number")
	ErrUserNotFound        = errors.New("models: user not found")
	ErrInvalidPassword     = errors.New("models: invalid password")
	ErrTaskNotFound        = errors.New("task not found")
	ErrTaskCategoryMissing = errors.New("task has no category assigned")
	ErrSeekerNotFound      = errors.New("seeker not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
	ErrHireRequestNotFound = errors.New("hire request not found")
	ErrInvalidOTP          = errors.New("invalid or expired verification code")
	ErrTaskEmbedding       = errors.New("could not compute task embedding")
)
