package public

import (
	"github.com/fresh-dairy/backend/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListProducts 获取上架商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.CatalogService.ListActiveProducts(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load products", err)
		return
	}
	response.Success(c, gin.H{"products": products})
}
