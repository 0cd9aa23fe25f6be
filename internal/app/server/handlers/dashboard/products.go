package dashboard

import (
	"github.com/gin-gonic/gin"

	"shopos/dashboard/internal/app/domains/apimodel/request"
	"shopos/dashboard/internal/app/domains/apimodel/response"
	"shopos/dashboard/internal/app/pkg/ginx"
)

// Products 商品统计接口
// GET /api/v1/dashboard/products
func (h *DashboardHandler) Products(c *gin.Context) {
	stats, err := h.service.GetProductStats(c.Request.Context())
	if err != nil {
		h.log.Errorf(c.Request.Context(), "get product stats failed: %v", err)
		ginx.InternalError(c, "failed to compute product stats")
		return
	}

	ginx.Success(c, response.FromProductStats(stats))
}

// TopSellingProducts 热销商品接口
// GET /api/v1/dashboard/products/top-selling?limit=10
func (h *DashboardHandler) TopSellingProducts(c *gin.Context) {
	var q request.LimitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	limit := q.Limit
	if limit == 0 {
		limit = h.defaults.TopLimit
	}

	top, err := h.service.GetTopSellingProducts(c.Request.Context(), limit)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "get top selling products failed: %v", err)
		ginx.InternalError(c, "failed to compute top selling products")
		return
	}

	ginx.Success(c, response.FromTopProducts(top))
}
