// pkg/model/news.go
package model

// NewsItem 上游采集器产出的原始新闻条目
// 缺失的可选字段由采集端以空字符串/空切片补齐
type NewsItem struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Time     string   `json:"time"`     // 展示用时间 HH:MM:SS
	DataTime string   `json:"dataTime"` // 完整时间戳字符串，排序键
	URL      string   `json:"url"`
	Source   string   `json:"source"`
	IsRed    bool     `json:"isRed"`
	Subjects []string `json:"subjects"`
}

// StockRef 新闻中提取出的股票引用
// 仅出现裸6位代码时Name为空
type StockRef struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

// LimitData 涨停数值信息，未提取到的键不输出
type LimitData struct {
	Count  *int     `json:"count,omitempty"`  // 涨停家数
	Amount *float64 `json:"amount,omitempty"` // 封单金额（元）
}

// EntityBag 单条新闻的实体提取结果
type EntityBag struct {
	Stocks           []StockRef `json:"stocks"`
	Sectors          []string   `json:"sectors"` // 预留字段，当前不填充
	Concepts         []string   `json:"concepts"`
	FundTypes        []string   `json:"fund_types"`
	MarketStatus     []string   `json:"market_status"`
	IsMarketOverview bool       `json:"is_market_overview"`
	IsLimitUpRelated bool       `json:"is_limit_up_related"`
	LimitData        LimitData  `json:"limit_data"`
}

// Category 新闻分类
type Category string

const (
	CategoryMarketOverview Category = "market_overview"
	CategoryHotConcept     Category = "hot_concept"
	CategoryStockAlert     Category = "stock_alert"
	CategoryFundMovement   Category = "fund_movement"
	CategoryLimitUp        Category = "limit_up"
)

// Strategy 概念分组排序策略
// 除dynamic_hot外的任意取值均按timeline处理
type Strategy string

const (
	StrategyDynamicHot Strategy = "dynamic_hot"
	StrategyTimeline   Strategy = "timeline"
)

// OtherConcept 无概念新闻的兜底分组名
const OtherConcept = "其他"

// ClassifiedNewsItem 分类打分后的新闻条目
type ClassifiedNewsItem struct {
	NewsItem
	EntityBag
	Category     Category `json:"category"`
	HotnessScore float64  `json:"hotness_score"`
}

// ConceptStats 概念分组统计
type ConceptStats struct {
	Count      int     `json:"count"`
	TotalScore float64 `json:"total_score"`
	AvgScore   float64 `json:"avg_score"`
}

// ConceptGroup 同一概念下的新闻聚合
type ConceptGroup struct {
	ConceptName string               `json:"concept_name"`
	News        []ClassifiedNewsItem `json:"news"`
	Stats       ConceptStats         `json:"stats"`
}

// GroupingSummary 分组汇总计数
type GroupingSummary struct {
	TotalNews           int `json:"total_news"`
	MarketOverviewCount int `json:"market_overview_count"`
	HotConceptCount     int `json:"hot_concept_count"`
	StockAlertCount     int `json:"stock_alert_count"`
	FundMovementCount   int `json:"fund_movement_count"`
	LimitUpCount        int `json:"limit_up_count"`
}

// GroupingResult 一次分组调用的完整结果，直接序列化返回给API层
type GroupingResult struct {
	MarketOverview []ClassifiedNewsItem `json:"market_overview"`
	HotConcepts    []ConceptGroup       `json:"hot_concepts"`
	StockAlerts    []ClassifiedNewsItem `json:"stock_alerts"`
	FundMovements  []ClassifiedNewsItem `json:"fund_movements"`
	LimitUp        []ClassifiedNewsItem `json:"limit_up"`
	Summary        GroupingSummary      `json:"summary"`
}
