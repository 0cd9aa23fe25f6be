package request

// OverTimeQuery 营收时间序列查询参数
// days 缺省时由配置的默认窗口兜底
type OverTimeQuery struct {
	Days int `form:"days" binding:"omitempty,min=1,max=365"`
}

// LimitQuery 列表条数查询参数
type LimitQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}
