package dashboard

import (
	"github.com/gin-gonic/gin"

	"shopos/dashboard/internal/app/domains/apimodel/request"
	"shopos/dashboard/internal/app/domains/apimodel/response"
	"shopos/dashboard/internal/app/pkg/ginx"
)

// Orders 订单统计接口
// GET /api/v1/dashboard/orders
func (h *DashboardHandler) Orders(c *gin.Context) {
	stats, err := h.service.GetOrderStats(c.Request.Context())
	if err != nil {
		h.log.Errorf(c.Request.Context(), "get order stats failed: %v", err)
		ginx.InternalError(c, "failed to compute order stats")
		return
	}

	ginx.Success(c, response.FromOrderStats(stats))
}

// RecentOrders 最近订单接口
// GET /api/v1/dashboard/orders/recent?limit=10
func (h *DashboardHandler) RecentOrders(c *gin.Context) {
	var q request.LimitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	limit := q.Limit
	if limit == 0 {
		limit = h.defaults.RecentLimit
	}

	recent, err := h.service.GetRecentOrders(c.Request.Context(), limit)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "get recent orders failed: %v", err)
		ginx.InternalError(c, "failed to fetch recent orders")
		return
	}

	ginx.Success(c, response.FromRecentOrders(recent))
}
