package dashboard

import (
	"shopos/dashboard/internal/app/domains/services/svdashboard"
	"shopos/dashboard/internal/app/pkg/logger"
)

// DashboardHandler 仪表盘 HTTP 处理器
type DashboardHandler struct {
	service  *svdashboard.DashboardService
	defaults svdashboard.Options
	log      logger.Logger
}

// NewDashboardHandler 创建仪表盘处理器实例
func NewDashboardHandler(service *svdashboard.DashboardService, defaults svdashboard.Options, log logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		service:  service,
		defaults: defaults,
		log:      log,
	}
}
