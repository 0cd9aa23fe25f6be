package dashboard

import (
	"github.com/gin-gonic/gin"

	"shopos/dashboard/internal/app/domains/apimodel/response"
	"shopos/dashboard/internal/app/pkg/ginx"
)

// AverageOrderValue 平均客单价接口
// GET /api/v1/dashboard/metrics/average-order-value
func (h *DashboardHandler) AverageOrderValue(c *gin.Context) {
	aov, err := h.service.GetAverageOrderValue(c.Request.Context())
	if err != nil {
		h.log.Errorf(c.Request.Context(), "get average order value failed: %v", err)
		ginx.InternalError(c, "failed to compute average order value")
		return
	}

	ginx.Success(c, response.AverageOrderValueResponse{AverageOrderValue: aov})
}

// Conversion 客户转化率接口
// GET /api/v1/dashboard/metrics/conversion
func (h *DashboardHandler) Conversion(c *gin.Context) {
	stats, err := h.service.GetConversionMetrics(c.Request.Context())
	if err != nil {
		h.log.Errorf(c.Request.Context(), "get conversion metrics failed: %v", err)
		ginx.InternalError(c, "failed to compute conversion metrics")
		return
	}

	ginx.Success(c, response.FromConversionStats(stats))
}
