package availability

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
	"github.com/Bovice22/axequacks-app-sub000/internal/shared/utils/response"
)

type Controller interface {
	Search(c *gin.Context)
	ComputeNeeds(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// Search godoc
// @Summary Scan availability for one date
// @Description Classifies every candidate start minute of a date as open or blocked for the requested activity
// @Tags availability
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Availability query"
// @Success 200 {object} response.StandardApiResponse
// @Router /availability/search [post]
func (ctrl *controller) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if _, err := catalog.ParseDateKey(req.DateKey); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid date key", nil, err.Error())
		return
	}

	engineReq, err := req.ToRequest()
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	result, err := ctrl.service.Search(c.Request.Context(), Query{
		DateKey: req.DateKey,
		Request: engineReq,
	})
	if err != nil {
		statusCode := http.StatusInternalServerError
		if isValidationError(err) {
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Availability retrieved successfully", result, nil)
}

// ComputeNeeds godoc
// @Summary Resolve unit requirements for a party
// @Description Maps an activity and party size to the units required per resource type
// @Tags availability
// @Accept json
// @Produce json
// @Param request body NeedsRequest true "Needs query"
// @Success 200 {object} response.StandardApiResponse
// @Router /availability/needs [post]
func (ctrl *controller) ComputeNeeds(c *gin.Context) {
	var req NeedsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	activity, err := req.ToActivity()
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	units, err := ctrl.service.ComputeNeeds(c.Request.Context(), activity, req.PartySize)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if isValidationError(err) {
			statusCode = http.StatusBadRequest
		}
		response.RespondJSON(c, "error", statusCode, err.Error(), nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Needs computed successfully", NeedsResponse{
		Activity:  activity.Label(),
		PartySize: req.PartySize,
		Units:     units,
	}, nil)
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrInvalidPartySize) ||
		errors.Is(err, ErrInvalidDuration) ||
		errors.Is(err, ErrInvalidActivity) ||
		errors.Is(err, ErrInvalidAddOn) ||
		errors.Is(err, catalog.ErrUnknownResourceType) ||
		errors.Is(err, catalog.ErrInvalidDateKey)
}
