package dashboard

import (
	"github.com/gin-gonic/gin"

	"shopos/dashboard/internal/app/domains/apimodel/response"
	"shopos/dashboard/internal/app/pkg/ginx"
)

// Customers 客户统计接口
// GET /api/v1/dashboard/customers
func (h *DashboardHandler) Customers(c *gin.Context) {
	stats, err := h.service.GetCustomerStats(c.Request.Context())
	if err != nil {
		h.log.Errorf(c.Request.Context(), "get customer stats failed: %v", err)
		ginx.InternalError(c, "failed to compute customer stats")
		return
	}

	ginx.Success(c, response.FromCustomerStats(stats))
}
