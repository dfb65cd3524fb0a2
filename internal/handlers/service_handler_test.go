package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"techcare/internal/models"
	"techcare/internal/utils"
	"techcare/internal/validators"
	"techcare/pkg/media"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubServiceService struct {
	services  []*models.Service
	createdID primitive.ObjectID
	err       error
}

func (s *stubServiceService) List(ctx context.Context) ([]*models.Service, error) {
	return s.services, s.err
}

func (s *stubServiceService) ListRecent(ctx context.Context, limit int) ([]*models.Service, error) {
	return s.services, s.err
}

func (s *stubServiceService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, svc := range s.services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return nil, models.ErrServiceNotFound
}

func (s *stubServiceService) Create(ctx context.Context, req *validators.ServiceCreateRequest) (primitive.ObjectID, error) {
	if s.err != nil {
		return primitive.NilObjectID, s.err
	}
	return s.createdID, nil
}

func serviceRouter(svc *stubServiceService) *gin.Engine {
	h := NewServiceHandler(svc)
	r := gin.New()
	r.GET("/services", h.List)
	r.GET("/services-limited", h.ListRecent)
	r.GET("/service/:id", h.GetByID)
	r.POST("/add-service", h.Create)
	return r
}

func errorCode(t *testing.T, body *bytes.Buffer) string {
	t.Helper()
	var envelope utils.ErrorEnvelope
	require.NoError(t, json.Unmarshal(body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	return envelope.Error.Code
}

func TestServiceGetByID_MalformedID(t *testing.T) {
	r := serviceRouter(&stubServiceService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/service/not-a-valid-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", errorCode(t, w.Body))
}

func TestServiceGetByID_Unknown(t *testing.T) {
	r := serviceRouter(&stubServiceService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/service/"+primitive.NewObjectID().Hex(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w.Body))
}

func TestServiceList_EmptyIsArray(t *testing.T) {
	r := serviceRouter(&stubServiceService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func addServiceBody() *bytes.Buffer {
	body, _ := json.Marshal(map[string]interface{}{
		"formData": map[string]interface{}{
			"imageString": "aGVsbG8=",
			"serviceName": "AC Repair",
			"price":       40,
			"description": "Full AC diagnostics and repair.",
		},
	})
	return bytes.NewBuffer(body)
}

func TestServiceCreate_ReturnsInsertedID(t *testing.T) {
	id := primitive.NewObjectID()
	r := serviceRouter(&stubServiceService{createdID: id})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/add-service", addServiceBody())
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["acknowledged"])
	assert.Equal(t, id.Hex(), resp["insertedId"])
}

func TestServiceCreate_UploadFailure(t *testing.T) {
	r := serviceRouter(&stubServiceService{err: media.ErrUploadFailed})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/add-service", addServiceBody())
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "UPLOAD_FAILED", errorCode(t, w.Body))
}

func TestServiceCreate_UploadTimeout(t *testing.T) {
	r := serviceRouter(&stubServiceService{err: media.ErrUploadTimeout})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/add-service", addServiceBody())
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Equal(t, "UPLOAD_TIMEOUT", errorCode(t, w.Body))
}

func TestServiceCreate_MissingFields(t *testing.T) {
	r := serviceRouter(&stubServiceService{})

	body, _ := json.Marshal(map[string]interface{}{
		"formData": map[string]interface{}{"serviceName": "AC Repair"},
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/add-service", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w.Body))
}
