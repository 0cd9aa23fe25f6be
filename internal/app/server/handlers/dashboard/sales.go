package dashboard

import (
	"github.com/gin-gonic/gin"

	"shopos/dashboard/internal/app/domains/apimodel/response"
	"shopos/dashboard/internal/app/pkg/ginx"
)

// SalesByCollection 按集合聚合的销售额接口
// GET /api/v1/dashboard/sales/by-collection
func (h *DashboardHandler) SalesByCollection(c *gin.Context) {
	sales, err := h.service.GetSalesByCollection(c.Request.Context())
	if err != nil {
		h.log.Errorf(c.Request.Context(), "get sales by collection failed: %v", err)
		ginx.InternalError(c, "failed to compute sales by collection")
		return
	}

	ginx.Success(c, response.FromCollectionSales(sales))
}
