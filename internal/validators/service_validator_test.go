package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validServiceCreate() *ServiceCreateRequest {
	return &ServiceCreateRequest{
		FormData: ServiceFormData{
			ImageString: "aGVsbG8=",
			ServiceName: "AC Repair",
			Price:       float64(40),
			Description: "Full AC diagnostics and repair.",
		},
	}
}

func TestValidateServiceCreate_Valid(t *testing.T) {
	assert.Nil(t, ValidateServiceCreate(validServiceCreate()))
}

func TestValidateServiceCreate_PriceForms(t *testing.T) {
	req := validServiceCreate()
	req.FormData.Price = "40"
	assert.Nil(t, ValidateServiceCreate(req), "string price should be accepted")

	req = validServiceCreate()
	req.FormData.Price = float64(39.99)
	assert.Nil(t, ValidateServiceCreate(req), "numeric price should be accepted")

	req = validServiceCreate()
	req.FormData.Price = []interface{}{40}
	errs := ValidateServiceCreate(req)
	assert.NotNil(t, errs)
	assert.Contains(t, errs.ToMap(), "price")
}

func TestValidateServiceCreate_MissingFields(t *testing.T) {
	req := validServiceCreate()
	req.FormData.ImageString = ""
	assert.NotNil(t, ValidateServiceCreate(req))

	req = validServiceCreate()
	req.FormData.ServiceName = ""
	assert.NotNil(t, ValidateServiceCreate(req))
}
