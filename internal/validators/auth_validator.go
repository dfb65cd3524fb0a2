package validators

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func ValidateLogin(req *LoginRequest) ValidationErrors {
	return ValidateStruct(req)
}
