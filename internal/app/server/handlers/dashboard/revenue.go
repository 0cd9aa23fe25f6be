package dashboard

import (
	"github.com/gin-gonic/gin"

	"shopos/dashboard/internal/app/domains/apimodel/request"
	"shopos/dashboard/internal/app/domains/apimodel/response"
	"shopos/dashboard/internal/app/pkg/ginx"
)

// Revenue godoc
// @Summary      总营收
// @Description  PAID 订单的金额合计与单数
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} ginx.Response{data=response.RevenueResponse} "查询成功"
// @Failure      500 {object} ginx.Response "服务器错误"
// @Router       /dashboard/revenue [get]
func (h *DashboardHandler) Revenue(c *gin.Context) {
	stats, err := h.service.GetRevenue(c.Request.Context())
	if err != nil {
		h.log.Errorf(c.Request.Context(), "get revenue failed: %v", err)
		ginx.InternalError(c, "failed to compute revenue")
		return
	}

	ginx.Success(c, response.FromRevenueStats(stats))
}

// RevenueOverTime 营收时间序列接口
// GET /api/v1/dashboard/revenue/over-time?days=30
func (h *DashboardHandler) RevenueOverTime(c *gin.Context) {
	var q request.OverTimeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	days := q.Days
	if days == 0 {
		days = h.defaults.RevenueDays
	}

	series, err := h.service.GetRevenueOverTime(c.Request.Context(), days)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "get revenue over time failed: %v", err)
		ginx.InternalError(c, "failed to compute revenue series")
		return
	}

	ginx.Success(c, response.FromRevenueSeries(series))
}
