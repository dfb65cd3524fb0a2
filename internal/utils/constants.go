package utils

import "time"

// Application Constants
const (
	AppName    = "TechCare"
	AppVersion = "1.0.0"

	// Authentication
	AccessTokenCookie = "access_token"

	// Listing caps for the "-limited" routes
	RecentServicesLimit = 3
	TopReviewsLimit     = 3

	// Rating token the five-star listing filters on
	TopRatingToken = "5"

	// Cache
	RecentServicesCacheKey = "services_recent"
	TopReviewsCacheKey     = "reviews_top"
	ListingCacheTTL        = 5 * time.Minute

	// Media upload
	MaxImageSize = 5 * 1024 * 1024 // 5MB
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrInvalidToken     = "invalid token"
	ErrInvalidInput     = "invalid input"
	ErrInternalServer   = "internal server error"
	ErrForbidden        = "forbidden"
	ErrValidationFailed = "validation failed"
	ErrUploadFailed     = "image upload failed"
)
