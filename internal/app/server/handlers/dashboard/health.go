package dashboard

import (
	"github.com/gin-gonic/gin"
)

// Health 健康检查接口
// degraded_metrics 为累计降级次数，便于发现总览的静默退化
func (h *DashboardHandler) Health(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":           "ok",
		"service":          "dashboard",
		"degraded_metrics": h.service.DegradedCount(),
	})
}
