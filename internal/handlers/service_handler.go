package handlers

import (
	"errors"
	"net/http"

	"techcare/internal/models"
	"techcare/internal/services"
	"techcare/internal/utils"
	"techcare/internal/validators"
	"techcare/pkg/media"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ServiceHandler struct {
	serviceService services.ServiceService
}

func NewServiceHandler(serviceService services.ServiceService) *ServiceHandler {
	return &ServiceHandler{
		serviceService: serviceService,
	}
}

// List returns every service, unfiltered.
func (h *ServiceHandler) List(c *gin.Context) {
	svcs, err := h.serviceService.List(c.Request.Context())
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	if svcs == nil {
		svcs = []*models.Service{}
	}
	c.JSON(http.StatusOK, svcs)
}

// ListRecent returns the newest services for the home page, capped at 3.
func (h *ServiceHandler) ListRecent(c *gin.Context) {
	svcs, err := h.serviceService.ListRecent(c.Request.Context(), utils.RecentServicesLimit)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	if svcs == nil {
		svcs = []*models.Service{}
	}
	c.JSON(http.StatusOK, svcs)
}

// GetByID returns one service document.
func (h *ServiceHandler) GetByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.InvalidIDResponse(c, "service")
		return
	}

	service, err := h.serviceService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrServiceNotFound) {
			utils.NotFoundResponse(c, "service")
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, service)
}

// Create uploads the submitted image and persists the service.
func (h *ServiceHandler) Create(c *gin.Context) {
	var req validators.ServiceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateServiceCreate(&req); errs != nil {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	id, err := h.serviceService.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, media.ErrUploadTimeout):
			utils.ErrorResponse(c, http.StatusGatewayTimeout, "UPLOAD_TIMEOUT", utils.ErrUploadFailed)
		case errors.Is(err, media.ErrUploadFailed):
			utils.ErrorResponse(c, http.StatusBadGateway, "UPLOAD_FAILED", utils.ErrUploadFailed)
		default:
			utils.InternalServerErrorResponse(c)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"acknowledged": true,
		"insertedId":   id.Hex(),
	})
}
