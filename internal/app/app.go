package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"shopos/dashboard/internal/app/config"
	"shopos/dashboard/internal/app/domains/modules/mdcatalog"
	"shopos/dashboard/internal/app/domains/modules/mdcustomer"
	"shopos/dashboard/internal/app/domains/modules/mdorder"
	"shopos/dashboard/internal/app/domains/repo/rpcustomer"
	"shopos/dashboard/internal/app/domains/repo/rporder"
	"shopos/dashboard/internal/app/domains/repo/rpproduct"
	"shopos/dashboard/internal/app/domains/services/svdashboard"
	"shopos/dashboard/internal/app/infra/persistence/mysql"
	"shopos/dashboard/internal/app/pkg/logger"
	"shopos/dashboard/internal/app/server/handlers/dashboard"
	"shopos/dashboard/internal/app/server/routers"
)

// App 应用实例
type App struct {
	Engine *gin.Engine
	Logger logger.Logger
}

// InitializeApp 组装应用依赖
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	log, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger failed: %w", err)
	}

	db, err := mysql.NewDB(cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("init database failed: %w", err)
	}

	// 仓储层
	orderRepo := rporder.NewOrderRepository(db)
	productRepo := rpproduct.NewProductRepository(db)
	customerRepo := rpcustomer.NewCustomerRepository(db)

	// 模块层
	orderModule := mdorder.NewOrderModule(orderRepo)
	catalogModule := mdcatalog.NewCatalogModule(productRepo)
	customerModule := mdcustomer.NewCustomerModule(customerRepo)

	// 服务层
	opts := svdashboard.Options{
		OverviewRecentLimit: cfg.Dashboard.OverviewRecentLimit,
		RecentLimit:         cfg.Dashboard.RecentLimit,
		TopLimit:            cfg.Dashboard.TopLimit,
		RevenueDays:         cfg.Dashboard.RevenueDays,
		MetricTimeout:       cfg.Dashboard.MetricTimeout,
	}
	dashboardService := svdashboard.NewDashboardService(
		orderModule, catalogModule, customerModule, opts, log,
	)

	// HTTP 层
	dashboardHandler := dashboard.NewDashboardHandler(dashboardService, opts, log)
	engine := routers.SetupRoutes(dashboardHandler, log)

	cleanup := func() {
		_ = log.Sync()
	}

	return &App{Engine: engine, Logger: log}, cleanup, nil
}
