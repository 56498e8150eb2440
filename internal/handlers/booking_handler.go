package handlers

import (
	"net/http"

	"eventora_backend/internal/middleware"
	"eventora_backend/internal/models"
	"eventora_backend/internal/services"
	"eventora_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	*BaseHandler
	bookingService services.BookingService
	userService    services.UserService
}

func NewBookingHandler(base *BaseHandler, bookingService services.BookingService, userService services.UserService) *BookingHandler {
	return &BookingHandler{
		BaseHandler:    base,
		bookingService: bookingService,
		userService:    userService,
	}
}

func (h *BookingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	bookings.Use(middleware.AuthMiddleware())
	{
		bookings.GET("", h.List)
		bookings.POST("", h.Create)
		bookings.GET("/:id", h.Get)
		bookings.DELETE("/:id", h.Cancel)
		bookings.PATCH("/:id/status",
			middleware.RequireRoles(models.UserRoleDecorator),
			h.AdvanceStatus,
		)
	}

	admin := rg.Group("/admin/bookings")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.PATCH("/:id/assign", h.AssignDecorator)
	}
}

// callerRole resolves the caller's current role from the users table.
func (h *BookingHandler) callerRole(c *gin.Context, email string) (models.UserRole, bool) {
	user, err := h.userService.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return "", false
	}
	return models.UserRole(user.Role), true
}

// List godoc
// @Summary List bookings visible to the caller
// @Description Admins see all bookings, decorators their assignments, users their own.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Booking
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	email, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	role, ok := h.callerRole(c, email)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListFor(c.Request.Context(), email, role)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// Create godoc
// @Summary Book a service
// @Description The total price is computed server-side from the catalog cost, add-ons and coupon.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBookingRequest true "Booking data"
// @Success 201 {object} models.Booking
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	email, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), email, user.Name, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) Get(c *gin.Context) {
	email, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	role, ok := h.callerRole(c, email)
	if !ok {
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), email, role, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// Cancel godoc
// @Summary Cancel an own pending booking
// @Description A booking that has been paid or assigned can no longer be cancelled.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking id"
// @Success 200 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	email, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), email, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

func (h *BookingHandler) AdvanceStatus(c *gin.Context) {
	email, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	var req dto.AdvanceStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.AdvanceStatus(
		c.Request.Context(),
		email,
		c.Param("id"),
		models.BookingStatus(req.Status),
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) AssignDecorator(c *gin.Context) {
	var req dto.AssignDecoratorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.AssignDecorator(c.Request.Context(), c.Param("id"), req.DecoratorEmail)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}
