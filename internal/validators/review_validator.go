package validators

// ReviewCreateRequest is the POST /reviews/:id body. The frontend sends
// email/name; they are persisted as userMail/userName.
type ReviewCreateRequest struct {
	ServiceName string `json:"serviceName" validate:"required,max=120"`
	Review      string `json:"review" validate:"required,max=2000"`
	Rating      string `json:"rating" validate:"required,rating_token"`
	Email       string `json:"email" validate:"required,email"`
	Name        string `json:"name" validate:"required,max=120"`
	UserPhoto   string `json:"userPhoto" validate:"omitempty,url"`
}

// ReviewUpdateRequest is the PUT /edit-review/:id body. Exactly these two
// fields may change.
type ReviewUpdateRequest struct {
	Rating string `json:"rating" validate:"required,rating_token"`
	Review string `json:"review" validate:"required,max=2000"`
}

// UserReviewsQuery is the GET /my-reviews query string.
type UserReviewsQuery struct {
	Email string `json:"email" validate:"required,email"`
}

func ValidateUserReviewsQuery(req *UserReviewsQuery) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateReviewCreate(req *ReviewCreateRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateReviewUpdate(req *ReviewUpdateRequest) ValidationErrors {
	return ValidateStruct(req)
}
