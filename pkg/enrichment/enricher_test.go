package enrichment

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"NewsRadar/pkg/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAnalyzeSentimentBullish(t *testing.T) {
	// 恰好2次看多词命中
	sentiment, score := analyzeSentiment("两市上涨，白酒股上涨")

	if sentiment != model.NewsSentimentBullish {
		t.Errorf("sentiment = %s, 期望 bullish", sentiment)
	}
	if !almostEqual(score, 0.5) {
		t.Errorf("score = %v, 期望 0.5", score)
	}
}

func TestAnalyzeSentimentBearish(t *testing.T) {
	sentiment, score := analyzeSentiment("利空消息致大跌")

	if sentiment != model.NewsSentimentBearish {
		t.Errorf("sentiment = %s, 期望 bearish", sentiment)
	}
	if !almostEqual(score, -0.5) {
		t.Errorf("score = %v, 期望 -0.5", score)
	}
}

func TestAnalyzeSentimentNeutralOnTie(t *testing.T) {
	tests := []string{
		"",
		"上涨之后又下跌",
	}
	for _, text := range tests {
		sentiment, score := analyzeSentiment(text)
		if sentiment != model.NewsSentimentNeutral || score != 0.0 {
			t.Errorf("text=%q: sentiment=%s score=%v, 期望中性0", text, sentiment, score)
		}
	}
}

func TestAnalyzeSentimentClamped(t *testing.T) {
	_, score := analyzeSentiment(strings.Repeat("利好", 10))
	if !almostEqual(score, 0.8) {
		t.Errorf("看多分数应截断在0.8: %v", score)
	}

	_, score = analyzeSentiment(strings.Repeat("利空", 10))
	if !almostEqual(score, -0.8) {
		t.Errorf("看空分数应截断在-0.8: %v", score)
	}
}

func TestBuildTags(t *testing.T) {
	entities := model.EntityBag{
		Concepts:     []string{"半导体"},
		Stocks:       []model.StockRef{{Code: "600519", Name: "贵州茅台"}, {Code: "300750"}},
		MarketStatus: []string{"涨停"},
		FundTypes:    []string{"主力资金"},
	}

	tags := buildTags(entities)
	if len(tags) != 5 {
		t.Fatalf("标签数 = %d, 期望 5", len(tags))
	}

	wantWeights := map[string]float64{"concept": 5.0, "stock": 3.0, "status": 4.0, "fund": 3.0}
	for _, tag := range tags {
		if tag.Weight != wantWeights[tag.Type] {
			t.Errorf("标签 %s(%s) 权重 = %v", tag.Name, tag.Type, tag.Weight)
		}
	}

	// 有名称用名称，无名称用代码
	if tags[1].Name != "贵州茅台" || tags[2].Name != "300750" {
		t.Errorf("股票标签命名错误: %s, %s", tags[1].Name, tags[2].Name)
	}
}

func TestExtractKeywordsFiltered(t *testing.T) {
	text := "今日A股市场半导体板块表现活跃，多家上市公司获得机构调研，新能源汽车销量持续增长"
	keywords, weights := extractKeywords(text, 10)

	if len(keywords) > 10 {
		t.Errorf("关键词数 = %d, 不应超过10", len(keywords))
	}
	for _, kw := range keywords {
		if _, stop := stopwordSet[kw]; stop {
			t.Errorf("停用词未过滤: %s", kw)
		}
		if utf8.RuneCountInString(kw) < 2 {
			t.Errorf("单字词未过滤: %s", kw)
		}
		if weights[kw] <= 0 {
			t.Errorf("关键词 %s 缺少权重", kw)
		}
	}
}

func TestEnrichDocument(t *testing.T) {
	item := model.NewsItem{
		Title:    "贵州茅台（600519）获主力资金与北向资金买入",
		Content:  "白酒股走强",
		Time:     "10:30:00",
		DataTime: "2024-05-10 10:30:00",
		URL:      "https://example.com/news/1",
		Source:   "cls",
		IsRed:    true,
	}

	doc := NewEnricher().Enrich(item)

	if doc.Title != item.Title || doc.URL != item.URL || doc.Source != item.Source || !doc.IsRed {
		t.Errorf("原始字段应原样保留: %+v", doc)
	}
	if doc.Subjects == nil {
		t.Errorf("缺失subjects应补为空切片")
	}
	if doc.Category != model.CategoryStockAlert {
		t.Errorf("category = %s, 期望 stock_alert", doc.Category)
	}
	// 股票3 + 两类资金20 + 概念5
	if doc.HotnessScore != 28 {
		t.Errorf("hotnessScore = %v, 期望 28", doc.HotnessScore)
	}
	if doc.Sentiment != model.NewsSentimentBullish {
		t.Errorf("sentiment = %s, 期望 bullish", doc.Sentiment)
	}
	if len(doc.Stocks) != 1 || doc.Stocks[0].Code != "600519" {
		t.Errorf("stocks = %+v", doc.Stocks)
	}
	if doc.CreatedAt.IsZero() || doc.UpdatedAt.IsZero() {
		t.Errorf("时间戳应已填充")
	}
}
