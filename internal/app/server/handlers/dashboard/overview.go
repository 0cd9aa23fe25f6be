package dashboard

import (
	"github.com/gin-gonic/gin"

	"shopos/dashboard/internal/app/domains/apimodel/response"
	"shopos/dashboard/internal/app/pkg/ginx"
)

// Overview godoc
// @Summary      仪表盘总览
// @Description  并发计算营收、订单、客户、商品、最近订单、热销商品六项指标
// @Description
// @Description  单个指标失败只降级为零值并记录日志，总览响应始终成功
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} ginx.Response{data=response.OverviewResponse} "查询成功"
// @Router       /dashboard/overview [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	ov := h.service.GetOverview(c.Request.Context())
	ginx.Success(c, response.FromOverview(ov))
}
