package routers

import (
	"github.com/gin-gonic/gin"

	"shopos/dashboard/internal/app/pkg/logger"
	"shopos/dashboard/internal/app/server/handlers/dashboard"
	"shopos/dashboard/internal/app/server/middlewares"
)

// SetupRoutes 配置所有路由，使用 Route Group 分类
func SetupRoutes(
	dashboardHandler *dashboard.DashboardHandler,
	log logger.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.CORS())
	r.Use(middlewares.Trace())
	r.Use(middlewares.Logger(log))
	r.Use(middlewares.ErrorHandler())

	r.GET("/health", dashboardHandler.Health)

	v1 := r.Group("/api/v1")
	{
		dash := v1.Group("/dashboard")
		{
			dash.GET("/overview", dashboardHandler.Overview)

			dash.GET("/revenue", dashboardHandler.Revenue)
			dash.GET("/revenue/over-time", dashboardHandler.RevenueOverTime)

			dash.GET("/orders", dashboardHandler.Orders)
			dash.GET("/orders/recent", dashboardHandler.RecentOrders)

			dash.GET("/customers", dashboardHandler.Customers)

			dash.GET("/products", dashboardHandler.Products)
			dash.GET("/products/top-selling", dashboardHandler.TopSellingProducts)

			dash.GET("/sales/by-collection", dashboardHandler.SalesByCollection)

			dash.GET("/metrics/average-order-value", dashboardHandler.AverageOrderValue)
			dash.GET("/metrics/conversion", dashboardHandler.Conversion)
		}
	}

	return r
}
