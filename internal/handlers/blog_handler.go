package handlers

import (
	"net/http"

	"eventora_backend/internal/middleware"
	"eventora_backend/internal/models"
	"eventora_backend/internal/services"
	"eventora_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	*BaseHandler
	blogService services.BlogService
}

func NewBlogHandler(base *BaseHandler, blogService services.BlogService) *BlogHandler {
	return &BlogHandler{
		BaseHandler: base,
		blogService: blogService,
	}
}

func (h *BlogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	public := rg.Group("/blogs")
	{
		public.GET("", h.ListAll)
		public.GET("/:id", h.Get)
	}

	admin := rg.Group("/admin/blogs")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("", h.Create)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *BlogHandler) ListAll(c *gin.Context) {
	blogs, err := h.blogService.ListAll(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blogs": blogs})
}

func (h *BlogHandler) Get(c *gin.Context) {
	blog, err := h.blogService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, blog)
}

func (h *BlogHandler) Create(c *gin.Context) {
	email, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateBlogRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	blog, err := h.blogService.Create(c.Request.Context(), email, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, blog)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.blogService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted"})
}
