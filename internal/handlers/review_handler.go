package handlers

import (
	"net/http"

	"techcare/internal/models"
	"techcare/internal/services"
	"techcare/internal/utils"
	"techcare/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewHandler struct {
	reviewService services.ReviewService
}

func NewReviewHandler(reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// ListForService returns the reviews of one service, newest first. The
// path id is the service id.
func (h *ReviewHandler) ListForService(c *gin.Context) {
	serviceID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.InvalidIDResponse(c, "service")
		return
	}

	reviews, err := h.reviewService.ListForService(c.Request.Context(), serviceID)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	if reviews == nil {
		reviews = []*models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

// ListTopRated returns the latest five-star reviews, capped at 3.
func (h *ReviewHandler) ListTopRated(c *gin.Context) {
	reviews, err := h.reviewService.ListTopRated(c.Request.Context(), utils.TopReviewsLimit)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	if reviews == nil {
		reviews = []*models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

// ListForUser returns the reviews a user wrote, newest first.
func (h *ReviewHandler) ListForUser(c *gin.Context) {
	req := validators.UserReviewsQuery{Email: c.Query("email")}
	if errs := validators.ValidateUserReviewsQuery(&req); errs != nil {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	reviews, err := h.reviewService.ListForUser(c.Request.Context(), req.Email)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	if reviews == nil {
		reviews = []*models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

// Create persists a review against the service in the path.
func (h *ReviewHandler) Create(c *gin.Context) {
	serviceID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.InvalidIDResponse(c, "service")
		return
	}

	var req validators.ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateReviewCreate(&req); errs != nil {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	id, err := h.reviewService.Create(c.Request.Context(), serviceID, &req)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"acknowledged": true,
		"insertedId":   id.Hex(),
	})
}

// Update patches the rating and text of one review. An unknown id comes
// back as matchedCount 0 so the caller can tell a no-op from an edit.
func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.InvalidIDResponse(c, "review")
		return
	}

	var req validators.ReviewUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateReviewUpdate(&req); errs != nil {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	result, err := h.reviewService.Update(c.Request.Context(), id, &req)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"acknowledged":  true,
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
	})
}

// Delete removes one review. deletedCount 0 for an unknown id is still a
// success envelope.
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.InvalidIDResponse(c, "review")
		return
	}

	deleted, err := h.reviewService.Delete(c.Request.Context(), id)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"acknowledged": true,
		"deletedCount": deleted,
	})
}
