package engine

import (
	"testing"

	"NewsRadar/pkg/model"
)

func newsItem(title, dataTime string) model.NewsItem {
	return model.NewsItem{
		Title:    title,
		DataTime: dataTime,
		Source:   "cls",
		Subjects: []string{},
	}
}

func testBatch() []model.NewsItem {
	return []model.NewsItem{
		newsItem("A股两市成交额突破万亿", "2024-05-10 10:00:00"),
		newsItem("三连板个股复盘", "2024-05-10 10:05:00"),
		newsItem("贵州茅台（600519）获主力资金买入", "2024-05-10 10:15:00"),
		newsItem("医药板块上涨，主力资金与北向资金活跃", "2024-05-10 10:10:00"),
		newsItem("白酒板块上涨，游资活跃", "2024-05-10 10:20:00"),
		newsItem("半导体板块上涨", "2024-05-10 10:30:00"),
		newsItem("主力资金与外资分歧加大", "2024-05-10 10:25:00"),
		newsItem("今日午间快讯速览", "2024-05-10 10:40:00"),
	}
}

func TestGroupEmptyInput(t *testing.T) {
	result := NewGroupingEngine().Group([]model.NewsItem{}, model.StrategyDynamicHot)

	if result.Summary.TotalNews != 0 {
		t.Errorf("空输入TotalNews = %d", result.Summary.TotalNews)
	}
	if result.MarketOverview == nil || result.HotConcepts == nil ||
		result.StockAlerts == nil || result.FundMovements == nil || result.LimitUp == nil {
		t.Errorf("空输入各分桶应为空切片而非nil")
	}
	if len(result.HotConcepts) != 0 {
		t.Errorf("空输入不应产生概念组")
	}
}

func TestGroupPartitionCompleteness(t *testing.T) {
	items := testBatch()
	result := NewGroupingEngine().Group(items, model.StrategyDynamicHot)

	if result.Summary.TotalNews != len(items) {
		t.Errorf("TotalNews = %d, 期望 %d", result.Summary.TotalNews, len(items))
	}

	inConcepts := 0
	for _, group := range result.HotConcepts {
		if group.Stats.Count == 0 {
			t.Errorf("不应产出空概念组: %s", group.ConceptName)
		}
		if group.Stats.Count != len(group.News) {
			t.Errorf("组 %s Count = %d, 新闻数 = %d", group.ConceptName, group.Stats.Count, len(group.News))
		}
		inConcepts += len(group.News)
	}

	total := len(result.MarketOverview) + len(result.StockAlerts) +
		len(result.FundMovements) + len(result.LimitUp) + inConcepts
	if total != len(items) {
		t.Errorf("分桶条目总数 = %d, 期望 %d（不丢不重）", total, len(items))
	}
}

func TestGroupBucketCounts(t *testing.T) {
	result := NewGroupingEngine().Group(testBatch(), model.StrategyDynamicHot)

	if len(result.MarketOverview) != 1 {
		t.Errorf("大盘综述 = %d, 期望 1", len(result.MarketOverview))
	}
	if len(result.LimitUp) != 1 {
		t.Errorf("涨停 = %d, 期望 1", len(result.LimitUp))
	}
	if len(result.StockAlerts) != 1 {
		t.Errorf("个股异动 = %d, 期望 1", len(result.StockAlerts))
	}
	if len(result.FundMovements) != 1 {
		t.Errorf("资金异动 = %d, 期望 1", len(result.FundMovements))
	}
	if result.Summary.HotConceptCount != 4 {
		t.Errorf("概念组数 = %d, 期望 4", result.Summary.HotConceptCount)
	}
}

func TestGroupDynamicHotOrdering(t *testing.T) {
	result := NewGroupingEngine().Group(testBatch(), model.StrategyDynamicHot)

	want := []string{"医药", "白酒", "半导体", model.OtherConcept}
	if len(result.HotConcepts) != len(want) {
		t.Fatalf("概念组 = %d个, 期望 %d个", len(result.HotConcepts), len(want))
	}
	for i, group := range result.HotConcepts {
		if group.ConceptName != want[i] {
			t.Errorf("第%d组 = %s, 期望 %s (avg=%v)", i, group.ConceptName, want[i], group.Stats.AvgScore)
		}
	}

	// 医药组：概念5 + 两类资金20
	first := result.HotConcepts[0]
	if first.Stats.TotalScore != 25 || first.Stats.AvgScore != 25 {
		t.Errorf("医药组统计 = %+v", first.Stats)
	}
}

func TestGroupTimelineOrdering(t *testing.T) {
	result := NewGroupingEngine().Group(testBatch(), model.StrategyTimeline)

	want := []string{model.OtherConcept, "半导体", "白酒", "医药"}
	for i, group := range result.HotConcepts {
		if group.ConceptName != want[i] {
			t.Errorf("timeline第%d组 = %s, 期望 %s", i, group.ConceptName, want[i])
		}
	}
}

func TestGroupUnknownStrategyFallsBackToTimeline(t *testing.T) {
	timeline := NewGroupingEngine().Group(testBatch(), model.StrategyTimeline)
	unknown := NewGroupingEngine().Group(testBatch(), model.Strategy("bogus"))

	for i := range timeline.HotConcepts {
		if timeline.HotConcepts[i].ConceptName != unknown.HotConcepts[i].ConceptName {
			t.Errorf("未知策略应与timeline一致, 第%d组 %s != %s",
				i, unknown.HotConcepts[i].ConceptName, timeline.HotConcepts[i].ConceptName)
		}
	}
}

func TestGroupTimeDescWithinBucket(t *testing.T) {
	items := []model.NewsItem{
		newsItem("A股两市低开", "2024-05-10 09:30:00"),
		newsItem("A股两市成交额破万亿", "2024-05-10 14:00:00"),
		newsItem("A股大盘午评", ""),
	}
	result := NewGroupingEngine().Group(items, model.StrategyDynamicHot)

	if len(result.MarketOverview) != 3 {
		t.Fatalf("大盘综述 = %d, 期望 3", len(result.MarketOverview))
	}
	if result.MarketOverview[0].DataTime != "2024-05-10 14:00:00" {
		t.Errorf("桶内应按dataTime降序, 首条 = %s", result.MarketOverview[0].DataTime)
	}
	// 缺失dataTime按空串处理，排在最后
	if result.MarketOverview[2].DataTime != "" {
		t.Errorf("缺失时间的条目应排最后")
	}
}

func TestGroupClassificationPriorityOverConcept(t *testing.T) {
	items := []model.NewsItem{
		newsItem("A股两市成交额突破万亿，半导体板块上涨", "2024-05-10 10:00:00"),
	}
	result := NewGroupingEngine().Group(items, model.StrategyDynamicHot)

	if len(result.MarketOverview) != 1 {
		t.Errorf("综述标志应优先于概念分类: %+v", result.Summary)
	}
	if len(result.HotConcepts) != 0 {
		t.Errorf("该条不应进入概念分桶")
	}
}
