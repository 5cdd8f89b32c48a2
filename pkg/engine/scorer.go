// pkg/engine/scorer.go
package engine

import "NewsRadar/pkg/model"

// 热度权重
const (
	weightLimitCount   = 30.0 // 提取到涨停家数
	weightLimitAmount  = 20.0 // 提取到封单金额
	weightFundType     = 10.0 // 每个资金类型
	weightConcept      = 5.0  // 每个概念
	weightOverview     = 20.0 // 大盘综述
	weightStock        = 3.0  // 每只股票
	weightMarketStatus = 5.0  // 每个盘面状态
)

// Score 计算新闻热度，各项均非负，结果恒>=0
func Score(item model.NewsItem, entities model.EntityBag) float64 {
	score := 0.0

	if entities.LimitData.Count != nil {
		score += weightLimitCount
	}
	if entities.LimitData.Amount != nil {
		score += weightLimitAmount
	}

	score += weightFundType * float64(len(entities.FundTypes))
	score += weightConcept * float64(len(entities.Concepts))

	if entities.IsMarketOverview {
		score += weightOverview
	}

	score += weightStock * float64(len(entities.Stocks))
	score += weightMarketStatus * float64(len(entities.MarketStatus))

	return score
}
