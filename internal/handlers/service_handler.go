package handlers

import (
	"net/http"

	"eventora_backend/internal/middleware"
	"eventora_backend/internal/models"
	"eventora_backend/internal/services"
	"eventora_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewServiceHandler(base *BaseHandler, catalogService services.CatalogService) *ServiceHandler {
	return &ServiceHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

func (h *ServiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	public := rg.Group("/services")
	{
		public.GET("", h.List)
		// Register before /:id so it is not captured as an id.
		public.GET("/locations/category", h.Locations)
		public.GET("/:id", h.Get)
	}

	admin := rg.Group("/admin/services")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

// List godoc
// @Summary Browse the service catalog
// @Tags services
// @Produce json
// @Param search query string false "Name substring, case-insensitive"
// @Param category query string false "Category; All disables the filter"
// @Param min_price query int false "Minimum cost"
// @Param max_price query int false "Maximum cost"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 6)"
// @Success 200 {object} dto.ServiceListResponse
// @Router /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	var query dto.ServiceListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.catalogService.List(c.Request.Context(), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	service, err := h.catalogService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Locations(c *gin.Context) {
	locations, err := h.catalogService.Locations(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	email, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateServiceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	service, err := h.catalogService.Create(c.Request.Context(), email, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req dto.UpdateServiceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	service, err := h.catalogService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.catalogService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
