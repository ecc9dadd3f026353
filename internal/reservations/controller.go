package reservations

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bovice22/axequacks-app-sub000/internal/availability"
	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
	"github.com/Bovice22/axequacks-app-sub000/internal/pricing"
	"github.com/Bovice22/axequacks-app-sub000/internal/promotions"
	"github.com/Bovice22/axequacks-app-sub000/internal/shared/utils/response"
)

type Controller interface {
	Quote(c *gin.Context)
	CreateHold(c *gin.Context)
	ReleaseHold(c *gin.Context)
	Confirm(c *gin.Context)
	Cancel(c *gin.Context)
	GetBooking(c *gin.Context)
	ListByDate(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// Quote godoc
// @Summary Quote a booking with optional promotion
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body QuoteBookingRequest true "Booking configuration"
// @Success 200 {object} response.StandardApiResponse
// @Router /bookings/quote [post]
func (ctrl *controller) Quote(c *gin.Context) {
	var req QuoteBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	quote, err := ctrl.service.QuoteBooking(c.Request.Context(), req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Quote computed successfully", quote, nil)
}

// CreateHold godoc
// @Summary Hold a slot for checkout
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body CreateHoldRequest true "Slot to hold"
// @Success 201 {object} response.StandardApiResponse
// @Router /bookings/holds [post]
func (ctrl *controller) CreateHold(c *gin.Context) {
	var req CreateHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if _, err := catalog.ParseDateKey(req.DateKey); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid date key", nil, err.Error())
		return
	}

	hold, err := ctrl.service.CreateHold(c.Request.Context(), req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Hold created successfully", NewHoldResponse(hold), nil)
}

// ReleaseHold godoc
// @Summary Release a checkout hold
// @Tags bookings
// @Produce json
// @Param holdId path string true "Hold ID"
// @Success 200 {object} response.StandardApiResponse
// @Router /bookings/holds/{holdId} [delete]
func (ctrl *controller) ReleaseHold(c *gin.Context) {
	if err := ctrl.service.ReleaseHold(c.Request.Context(), c.Param("holdId")); err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Hold released successfully", nil, nil)
}

// Confirm godoc
// @Summary Confirm a held booking
// @Description Converts a hold into a durable booking after a transactional capacity re-check
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body ConfirmBookingRequest true "Hold and guest details"
// @Success 201 {object} response.StandardApiResponse
// @Router /bookings/confirm [post]
func (ctrl *controller) Confirm(c *gin.Context) {
	var req ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	booking, err := ctrl.service.ConfirmBooking(c.Request.Context(), req)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Booking confirmed successfully", booking, nil)
}

// Cancel godoc
// @Summary Cancel a booking
// @Tags bookings
// @Produce json
// @Param ref path string true "Booking reference"
// @Success 200 {object} response.StandardApiResponse
// @Router /bookings/{ref}/cancel [post]
func (ctrl *controller) Cancel(c *gin.Context) {
	booking, err := ctrl.service.CancelBooking(c.Request.Context(), c.Param("ref"))
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking cancelled successfully", booking, nil)
}

func (ctrl *controller) GetBooking(c *gin.Context) {
	booking, err := ctrl.service.GetBooking(c.Request.Context(), c.Param("ref"))
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking retrieved successfully", booking, nil)
}

func (ctrl *controller) ListByDate(c *gin.Context) {
	bookings, err := ctrl.service.ListByDate(c.Request.Context(), c.Param("dateKey"))
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Bookings retrieved successfully", bookings, nil)
}

func (ctrl *controller) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBookingNotFound), errors.Is(err, ErrHoldNotFound):
		response.RespondJSON(c, "error", http.StatusNotFound, err.Error(), nil, nil)
	case errors.Is(err, ErrSlotConflict), errors.Is(err, ErrHoldSlotUnavailable):
		response.RespondJSON(c, "error", http.StatusConflict, err.Error(), nil, nil)
	case errors.Is(err, ErrAlreadyCancelled):
		response.RespondJSON(c, "error", http.StatusUnprocessableEntity, err.Error(), nil, nil)
	case errors.Is(err, ErrVenueClosed),
		errors.Is(err, ErrInvalidStartMinute),
		errors.Is(err, ErrStartNotOnStep),
		errors.Is(err, availability.ErrInvalidPartySize),
		errors.Is(err, availability.ErrInvalidDuration),
		errors.Is(err, availability.ErrInvalidActivity),
		errors.Is(err, availability.ErrInvalidAddOn),
		errors.Is(err, pricing.ErrUnsupportedActivity),
		errors.Is(err, pricing.ErrInvalidAddOnDuration),
		errors.Is(err, catalog.ErrUnknownResourceType),
		errors.Is(err, catalog.ErrInvalidDateKey):
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
	case errors.Is(err, promotions.ErrPromotionNotFound),
		errors.Is(err, promotions.ErrPromotionInactive),
		errors.Is(err, promotions.ErrPromotionExpired):
		response.RespondJSON(c, "error", http.StatusUnprocessableEntity, err.Error(), nil, nil)
	default:
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Request failed", nil, err.Error())
	}
}
