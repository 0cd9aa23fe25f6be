package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	MySQL     MySQLConfig     `mapstructure:"mysql"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// DashboardConfig 仪表盘默认参数
type DashboardConfig struct {
	OverviewRecentLimit int           `mapstructure:"overview_recent_limit"` // 总览内嵌最近订单条数
	RecentLimit         int           `mapstructure:"recent_limit"`          // 最近订单接口默认条数
	TopLimit            int           `mapstructure:"top_limit"`             // 热销商品默认条数
	RevenueDays         int           `mapstructure:"revenue_days"`          // 营收时间序列默认窗口（天）
	MetricTimeout       time.Duration `mapstructure:"metric_timeout"`        // 总览单指标超时
}

// Load 从配置文件加载配置
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// LoadDefault 加载默认配置文件路径
func LoadDefault() (*Config, error) {
	return Load("config/config.yaml")
}

// applyDefaults 填充缺省值
func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Dashboard.OverviewRecentLimit <= 0 {
		c.Dashboard.OverviewRecentLimit = 5
	}
	if c.Dashboard.RecentLimit <= 0 {
		c.Dashboard.RecentLimit = 10
	}
	if c.Dashboard.TopLimit <= 0 {
		c.Dashboard.TopLimit = 10
	}
	if c.Dashboard.RevenueDays <= 0 {
		c.Dashboard.RevenueDays = 30
	}
	if c.Dashboard.MetricTimeout <= 0 {
		c.Dashboard.MetricTimeout = 3 * time.Second
	}
}

// Validate 验证配置完整性
func (c *Config) Validate() error {
	if c.MySQL.DSN == "" {
		return fmt.Errorf("mysql dsn is required")
	}
	return nil
}
