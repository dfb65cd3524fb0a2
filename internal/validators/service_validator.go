package validators

// ServiceCreateRequest mirrors the frontend's add-service form, which nests
// the fields under formData.
type ServiceCreateRequest struct {
	FormData ServiceFormData `json:"formData" validate:"required"`
}

type ServiceFormData struct {
	ImageString string      `json:"imageString" validate:"required"`
	ServiceName string      `json:"serviceName" validate:"required,max=120"`
	Price       interface{} `json:"price" validate:"required"`
	Description string      `json:"description" validate:"required,max=5000"`
}

func ValidateServiceCreate(req *ServiceCreateRequest) ValidationErrors {
	errors := ValidateStruct(req)

	// Price arrives as a JSON number or a string; both are stored
	// as-is. Anything else is a malformed body.
	switch req.FormData.Price.(type) {
	case string, float64, nil:
	default:
		errors = append(errors, ValidationError{
			Field:   "price",
			Tag:     "price_type",
			Message: "price must be a number or a string",
		})
	}

	return errors
}
