// pkg/engine/grouping.go
package engine

import (
	"log"
	"sort"

	"NewsRadar/pkg/extractor"
	"NewsRadar/pkg/model"
)

// GroupingEngine 新闻分组聚合引擎
// 无内部状态，可在多个请求间并发复用
type GroupingEngine struct{}

// NewGroupingEngine 创建分组引擎
func NewGroupingEngine() *GroupingEngine {
	return &GroupingEngine{}
}

// Group 对一批新闻执行 提取→分类→打分→分桶→排序→汇总
// 每条新闻恰好落入五个分桶之一；热点概念桶按首个概念二次分组，
// 无概念的条目归入「其他」组
func (e *GroupingEngine) Group(items []model.NewsItem, strategy model.Strategy) *model.GroupingResult {
	result := &model.GroupingResult{
		MarketOverview: []model.ClassifiedNewsItem{},
		HotConcepts:    []model.ConceptGroup{},
		StockAlerts:    []model.ClassifiedNewsItem{},
		FundMovements:  []model.ClassifiedNewsItem{},
		LimitUp:        []model.ClassifiedNewsItem{},
	}

	conceptNews := make(map[string][]model.ClassifiedNewsItem)
	conceptOrder := make([]string, 0)
	processed := 0

	for _, item := range items {
		classified, ok := e.processItem(item)
		if !ok {
			continue
		}
		processed++

		switch classified.Category {
		case model.CategoryMarketOverview:
			result.MarketOverview = append(result.MarketOverview, classified)
		case model.CategoryLimitUp:
			result.LimitUp = append(result.LimitUp, classified)
		case model.CategoryStockAlert:
			result.StockAlerts = append(result.StockAlerts, classified)
		case model.CategoryFundMovement:
			result.FundMovements = append(result.FundMovements, classified)
		default:
			key := model.OtherConcept
			if len(classified.Concepts) > 0 {
				key = classified.Concepts[0]
			}
			if _, exists := conceptNews[key]; !exists {
				conceptOrder = append(conceptOrder, key)
			}
			conceptNews[key] = append(conceptNews[key], classified)
		}
	}

	sortByDataTimeDesc(result.MarketOverview)
	sortByDataTimeDesc(result.StockAlerts)
	sortByDataTimeDesc(result.FundMovements)
	sortByDataTimeDesc(result.LimitUp)

	for _, name := range conceptOrder {
		news := conceptNews[name]
		sortByDataTimeDesc(news)

		total := 0.0
		for _, n := range news {
			total += n.HotnessScore
		}

		result.HotConcepts = append(result.HotConcepts, model.ConceptGroup{
			ConceptName: name,
			News:        news,
			Stats: model.ConceptStats{
				Count:      len(news),
				TotalScore: total,
				AvgScore:   total / float64(len(news)),
			},
		})
	}

	// dynamic_hot按平均热度排序，其余取值一律按时间线排序
	if strategy == model.StrategyDynamicHot {
		sort.SliceStable(result.HotConcepts, func(i, j int) bool {
			return result.HotConcepts[i].Stats.AvgScore > result.HotConcepts[j].Stats.AvgScore
		})
	} else {
		sort.SliceStable(result.HotConcepts, func(i, j int) bool {
			return latestDataTime(result.HotConcepts[i]) > latestDataTime(result.HotConcepts[j])
		})
	}

	result.Summary = model.GroupingSummary{
		TotalNews:           processed,
		MarketOverviewCount: len(result.MarketOverview),
		HotConceptCount:     len(result.HotConcepts),
		StockAlertCount:     len(result.StockAlerts),
		FundMovementCount:   len(result.FundMovements),
		LimitUpCount:        len(result.LimitUp),
	}

	return result
}

// processItem 单条新闻的提取、分类与打分
// 单条失败只跳过该条，不中断整批
func (e *GroupingEngine) processItem(item model.NewsItem) (classified model.ClassifiedNewsItem, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("处理新闻条目失败，已跳过: %v (标题: %s)", r, item.Title)
			ok = false
		}
	}()

	entities := extractor.Extract(item.Title, item.Content)

	return model.ClassifiedNewsItem{
		NewsItem:     item,
		EntityBag:    entities,
		Category:     Classify(entities),
		HotnessScore: Score(item, entities),
	}, true
}

// sortByDataTimeDesc 按dataTime字符串降序排序
// 上游时间戳为可字典序比较的格式，保持字符串比较，不做时间解析
func sortByDataTimeDesc(items []model.ClassifiedNewsItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DataTime > items[j].DataTime
	})
}

// latestDataTime 分组内最新一条新闻的时间，空组返回空串（降序排最后）
func latestDataTime(group model.ConceptGroup) string {
	if len(group.News) == 0 {
		return ""
	}
	return group.News[0].DataTime
}
