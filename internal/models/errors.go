package models

import "errors"

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrReviewNotFound  = errors.New("review not found")
)
