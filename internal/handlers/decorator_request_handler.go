package handlers

import (
	"net/http"

	"eventora_backend/internal/middleware"
	"eventora_backend/internal/models"
	"eventora_backend/internal/services"
	"eventora_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type DecoratorRequestHandler struct {
	*BaseHandler
	requestService services.DecoratorRequestService
}

func NewDecoratorRequestHandler(base *BaseHandler, requestService services.DecoratorRequestService) *DecoratorRequestHandler {
	return &DecoratorRequestHandler{
		BaseHandler:    base,
		requestService: requestService,
	}
}

func (h *DecoratorRequestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	requests := rg.Group("/decorator-requests")
	requests.Use(middleware.AuthMiddleware())
	{
		requests.POST("", h.Submit)
	}

	admin := rg.Group("/admin/decorator-requests")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.ListAll)
		admin.PATCH("/:id", h.Process)
	}
}

// Submit godoc
// @Summary Apply to become a decorator
// @Description One application per account; a repeat submission is rejected.
// @Tags decorator-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitDecoratorRequest true "Application"
// @Success 201 {object} dto.DecoratorRequestResponse
// @Router /decorator-requests [post]
func (h *DecoratorRequestHandler) Submit(c *gin.Context) {
	email, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	var req dto.SubmitDecoratorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.requestService.Submit(c.Request.Context(), email, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *DecoratorRequestHandler) ListAll(c *gin.Context) {
	requests, err := h.requestService.ListAll(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func (h *DecoratorRequestHandler) Process(c *gin.Context) {
	var req dto.ProcessDecoratorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.requestService.Process(
		c.Request.Context(),
		c.Param("id"),
		models.RequestStatus(req.Status),
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
