package promotions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bovice22/axequacks-app-sub000/internal/shared/utils/response"
)

type Controller interface {
	Apply(c *gin.Context)
	Create(c *gin.Context)
	List(c *gin.Context)
	Deactivate(c *gin.Context)
	Delete(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// Apply godoc
// @Summary Apply a promotion code to a quoted total
// @Tags promotions
// @Accept json
// @Produce json
// @Param request body ApplyPromotionRequest true "Code and quoted total"
// @Success 200 {object} response.StandardApiResponse
// @Router /promotions/apply [post]
func (ctrl *controller) Apply(c *gin.Context) {
	var req ApplyPromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	result, err := ctrl.service.Apply(c.Request.Context(), req.Code, req.TotalCents)
	if err != nil {
		switch {
		case errors.Is(err, ErrPromotionNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Promotion not found", nil, nil)
		case errors.Is(err, ErrPromotionInactive), errors.Is(err, ErrPromotionExpired):
			response.RespondJSON(c, "error", http.StatusUnprocessableEntity, err.Error(), nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to apply promotion", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Promotion applied successfully", result, nil)
}

func (ctrl *controller) Create(c *gin.Context) {
	var req CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	promotion, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidPromotion) {
			response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create promotion", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Promotion created successfully", promotion, nil)
}

func (ctrl *controller) List(c *gin.Context) {
	promotions, err := ctrl.service.List(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list promotions", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Promotions retrieved successfully", promotions, nil)
}

func (ctrl *controller) Deactivate(c *gin.Context) {
	if err := ctrl.service.Deactivate(c.Request.Context(), c.Param("code")); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrPromotionNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Promotion deactivated successfully", nil, nil)
}

func (ctrl *controller) Delete(c *gin.Context) {
	if err := ctrl.service.Delete(c.Request.Context(), c.Param("code")); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrPromotionNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Promotion deleted successfully", nil, nil)
}
