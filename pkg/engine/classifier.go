// pkg/engine/classifier.go
package engine

import "NewsRadar/pkg/model"

// Classify 将实体提取结果映射到五个互斥分类之一
// 规则按优先级排列，命中即返回
func Classify(entities model.EntityBag) model.Category {
	if entities.IsMarketOverview {
		return model.CategoryMarketOverview
	}
	if entities.IsLimitUpRelated {
		return model.CategoryLimitUp
	}
	if len(entities.Concepts) > 0 && len(entities.Stocks) == 0 {
		return model.CategoryHotConcept
	}
	if len(entities.Stocks) > 0 {
		return model.CategoryStockAlert
	}
	if len(entities.FundTypes) >= 2 {
		return model.CategoryFundMovement
	}
	return model.CategoryHotConcept
}
