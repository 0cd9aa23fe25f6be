package svdashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/atomic"

	"shopos/dashboard/internal/app/domains/metrics"
	"shopos/dashboard/internal/app/domains/modules/mdcatalog"
	"shopos/dashboard/internal/app/domains/modules/mdcustomer"
	"shopos/dashboard/internal/app/domains/modules/mdorder"
	"shopos/dashboard/internal/app/domains/repo/rporder"
	"shopos/dashboard/internal/app/pkg/errorx"
	"shopos/dashboard/internal/app/pkg/logger"
)

// Options 仪表盘服务选项
type Options struct {
	OverviewRecentLimit int           // Overview 内嵌最近订单条数
	RecentLimit         int           // 独立最近订单接口默认条数
	TopLimit            int           // 热销商品默认条数
	RevenueDays         int           // 营收时间序列默认窗口（天）
	MetricTimeout       time.Duration // Overview 单个指标的存储调用超时
}

// DefaultOptions 默认选项
func DefaultOptions() Options {
	return Options{
		OverviewRecentLimit: 5,
		RecentLimit:         10,
		TopLimit:            10,
		RevenueDays:         30,
		MetricTimeout:       3 * time.Second,
	}
}

// Overview 仪表盘总览（组合响应）
type Overview struct {
	Revenue      metrics.RevenueStats
	Orders       metrics.OrderStats
	Customers    metrics.CustomerStats
	Products     metrics.ProductStats
	RecentOrders []rporder.OrderWithCustomer
	TopProducts  []metrics.TopProduct
}

// DashboardService 仪表盘聚合服务
// Overview 走并发扇出 + 单指标降级：任何一个指标的存储调用失败，
// 只记录日志并用文档化的零值兜底，组合响应始终成功。
// 独立指标接口不降级，错误原样向调用方传播
type DashboardService struct {
	orderModule    *mdorder.OrderModule
	catalogModule  *mdcatalog.CatalogModule
	customerModule *mdcustomer.CustomerModule
	opts           Options
	log            logger.Logger

	// 累计降级次数，暴露在健康检查里便于发现静默退化
	degraded *atomic.Int64
}

// NewDashboardService 创建仪表盘服务实例
func NewDashboardService(
	orderModule *mdorder.OrderModule,
	catalogModule *mdcatalog.CatalogModule,
	customerModule *mdcustomer.CustomerModule,
	opts Options,
	log logger.Logger,
) *DashboardService {
	return &DashboardService{
		orderModule:    orderModule,
		catalogModule:  catalogModule,
		customerModule: customerModule,
		opts:           opts,
		log:            log,
		degraded:       atomic.NewInt64(0),
	}
}

// runMetric 执行单个扇出任务
// 失败时记录日志并累计降级计数，结果字段保持零值兜底
func (s *DashboardService) runMetric(ctx context.Context, name string, fn func(ctx context.Context) error) {
	mctx := context.WithValue(ctx, "metric", name)

	var cancel context.CancelFunc
	if s.opts.MetricTimeout > 0 {
		mctx, cancel = context.WithTimeout(mctx, s.opts.MetricTimeout)
		defer cancel()
	}

	if err := fn(mctx); err != nil {
		s.degraded.Inc()
		s.log.Errorf(mctx, "overview metric degraded to default: %v", err)
	}
}

// GetOverview 计算仪表盘总览
// 六个指标各自读取独立快照并发计算，互不共享可变状态；
// 每个任务只写自己的结果字段，join 之后组装响应
func (s *DashboardService) GetOverview(ctx context.Context) *Overview {
	ov := &Overview{
		RecentOrders: []rporder.OrderWithCustomer{},
		TopProducts:  []metrics.TopProduct{},
	}
	now := time.Now()

	var wg sync.WaitGroup
	wg.Add(6)

	go func() {
		defer wg.Done()
		s.runMetric(ctx, "revenue", func(ctx context.Context) error {
			orders, err := s.orderModule.GetOrders(ctx)
			if err != nil {
				return fmt.Errorf("fetch orders failed: %w", err)
			}
			ov.Revenue = metrics.ComputeRevenue(orders)
			return nil
		})
	}()

	go func() {
		defer wg.Done()
		s.runMetric(ctx, "orders", func(ctx context.Context) error {
			orders, err := s.orderModule.GetOrders(ctx)
			if err != nil {
				return fmt.Errorf("fetch orders failed: %w", err)
			}
			ov.Orders = metrics.ComputeOrderStats(orders)
			return nil
		})
	}()

	go func() {
		defer wg.Done()
		s.runMetric(ctx, "customers", func(ctx context.Context) error {
			customers, err := s.customerModule.GetCustomers(ctx)
			if err != nil {
				return fmt.Errorf("fetch customers failed: %w", err)
			}
			ov.Customers = metrics.ComputeCustomerStats(customers, now)
			return nil
		})
	}()

	go func() {
		defer wg.Done()
		s.runMetric(ctx, "products", func(ctx context.Context) error {
			products, err := s.catalogModule.GetProducts(ctx)
			if err != nil {
				return fmt.Errorf("fetch products failed: %w", err)
			}
			ov.Products = metrics.ComputeProductStats(products)
			return nil
		})
	}()

	go func() {
		defer wg.Done()
		s.runMetric(ctx, "recent_orders", func(ctx context.Context) error {
			recent, err := s.orderModule.GetRecentOrders(ctx, s.opts.OverviewRecentLimit)
			if err != nil {
				return fmt.Errorf("fetch recent orders failed: %w", err)
			}
			ov.RecentOrders = recent
			return nil
		})
	}()

	go func() {
		defer wg.Done()
		s.runMetric(ctx, "top_products", func(ctx context.Context) error {
			items, err := s.orderModule.GetOrderItems(ctx)
			if err != nil {
				return fmt.Errorf("fetch order items failed: %w", err)
			}
			products, err := s.catalogModule.GetProducts(ctx)
			if err != nil {
				return fmt.Errorf("fetch products failed: %w", err)
			}
			ov.TopProducts = metrics.ComputeTopSellingProducts(items, products, s.opts.TopLimit)
			return nil
		})
	}()

	wg.Wait()
	return ov
}

// DegradedCount 累计降级次数
func (s *DashboardService) DegradedCount() int64 {
	return s.degraded.Load()
}

// GetRevenue 计算总营收
func (s *DashboardService) GetRevenue(ctx context.Context) (metrics.RevenueStats, error) {
	orders, err := s.orderModule.GetOrders(ctx)
	if err != nil {
		return metrics.RevenueStats{}, fmt.Errorf("fetch orders failed: %w", err)
	}
	return metrics.ComputeRevenue(orders), nil
}

// GetRevenueOverTime 计算时间窗口内的每日营收序列
func (s *DashboardService) GetRevenueOverTime(ctx context.Context, days int) ([]metrics.RevenuePoint, error) {
	if days <= 0 {
		return nil, errorx.ErrInvalidWindow
	}
	orders, err := s.orderModule.GetOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch orders failed: %w", err)
	}
	return metrics.ComputeRevenueOverTime(orders, days, time.Now()), nil
}

// GetOrderStats 计算订单状态统计
func (s *DashboardService) GetOrderStats(ctx context.Context) (metrics.OrderStats, error) {
	orders, err := s.orderModule.GetOrders(ctx)
	if err != nil {
		return metrics.OrderStats{}, fmt.Errorf("fetch orders failed: %w", err)
	}
	return metrics.ComputeOrderStats(orders), nil
}

// GetRecentOrders 查询最近订单（含客户展示字段）
func (s *DashboardService) GetRecentOrders(ctx context.Context, limit int) ([]rporder.OrderWithCustomer, error) {
	if limit <= 0 {
		return nil, errorx.ErrInvalidLimit
	}
	return s.orderModule.GetRecentOrders(ctx, limit)
}

// GetCustomerStats 计算客户增长统计
func (s *DashboardService) GetCustomerStats(ctx context.Context) (metrics.CustomerStats, error) {
	customers, err := s.customerModule.GetCustomers(ctx)
	if err != nil {
		return metrics.CustomerStats{}, fmt.Errorf("fetch customers failed: %w", err)
	}
	return metrics.ComputeCustomerStats(customers, time.Now()), nil
}

// GetProductStats 计算商品统计
func (s *DashboardService) GetProductStats(ctx context.Context) (metrics.ProductStats, error) {
	products, err := s.catalogModule.GetProducts(ctx)
	if err != nil {
		return metrics.ProductStats{}, fmt.Errorf("fetch products failed: %w", err)
	}
	return metrics.ComputeProductStats(products), nil
}

// GetTopSellingProducts 计算热销商品排行
func (s *DashboardService) GetTopSellingProducts(ctx context.Context, limit int) ([]metrics.TopProduct, error) {
	if limit <= 0 {
		return nil, errorx.ErrInvalidLimit
	}
	items, err := s.orderModule.GetOrderItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch order items failed: %w", err)
	}
	products, err := s.catalogModule.GetProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch products failed: %w", err)
	}
	return metrics.ComputeTopSellingProducts(items, products, limit), nil
}

// GetSalesByCollection 计算按集合聚合的销售额
func (s *DashboardService) GetSalesByCollection(ctx context.Context) ([]metrics.CollectionSales, error) {
	items, err := s.orderModule.GetOrderItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch order items failed: %w", err)
	}
	products, err := s.catalogModule.GetProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch products failed: %w", err)
	}
	collections, err := s.catalogModule.GetCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch collections failed: %w", err)
	}
	return metrics.ComputeSalesByCollection(items, products, collections), nil
}

// GetAverageOrderValue 计算平均客单价
// 与营收统计一样只看 PAID 订单，单次请求内只拉一次快照
func (s *DashboardService) GetAverageOrderValue(ctx context.Context) (int64, error) {
	orders, err := s.orderModule.GetOrders(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch orders failed: %w", err)
	}
	return metrics.ComputeAverageOrderValue(orders), nil
}

// GetConversionMetrics 计算客户转化率
func (s *DashboardService) GetConversionMetrics(ctx context.Context) (metrics.ConversionStats, error) {
	customers, err := s.customerModule.GetCustomers(ctx)
	if err != nil {
		return metrics.ConversionStats{}, fmt.Errorf("fetch customers failed: %w", err)
	}
	orders, err := s.orderModule.GetOrders(ctx)
	if err != nil {
		return metrics.ConversionStats{}, fmt.Errorf("fetch orders failed: %w", err)
	}
	return metrics.ComputeConversionMetrics(customers, orders), nil
}
