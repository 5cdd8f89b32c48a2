// pkg/enrichment/enricher.go
package enrichment

import (
	"math"
	"strings"
	"time"

	"NewsRadar/pkg/engine"
	"NewsRadar/pkg/extractor"
	"NewsRadar/pkg/model"
)

// 情感词表
var (
	bullishLexicon = []string{"上涨", "大涨", "涨停", "利好", "突破", "反弹", "走强"}
	bearishLexicon = []string{"下跌", "大跌", "跌停", "利空", "回调", "走弱"}
)

// 实体标签权重
const (
	tagWeightConcept = 5.0
	tagWeightStock   = 3.0
	tagWeightStatus  = 4.0
	tagWeightFund    = 3.0
)

// Enricher 新闻富化服务：实体、关键词、情感、分类、热度
type Enricher struct{}

// NewEnricher 创建富化服务
func NewEnricher() *Enricher {
	return &Enricher{}
}

// Enrich 将原始新闻转换为可持久化的富化文档
func (e *Enricher) Enrich(item model.NewsItem) *model.EnrichedNews {
	fullText := item.Title + " " + item.Content

	entities := extractor.Extract(item.Title, item.Content)
	keywords, weights := extractKeywords(fullText, 10)
	sentiment, sentimentScore := analyzeSentiment(fullText)

	subjects := item.Subjects
	if subjects == nil {
		subjects = []string{}
	}

	now := time.Now()
	return &model.EnrichedNews{
		Title:          item.Title,
		Content:        item.Content,
		Time:           item.Time,
		DataTime:       item.DataTime,
		URL:            item.URL,
		Source:         item.Source,
		IsRed:          item.IsRed,
		Subjects:       subjects,
		Entities:       entities,
		Tags:           buildTags(entities),
		Keywords:       keywords,
		KeywordWeights: weights,
		Sentiment:      sentiment,
		SentimentScore: sentimentScore,
		HotnessScore:   engine.Score(item, entities),
		Category:       engine.Classify(entities),
		Stocks:         entities.Stocks,
		MarketStatus:   entities.MarketStatus,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// buildTags 由实体生成带权标签
func buildTags(entities model.EntityBag) []model.Tag {
	tags := make([]model.Tag, 0,
		len(entities.Concepts)+len(entities.Stocks)+len(entities.MarketStatus)+len(entities.FundTypes))

	for _, concept := range entities.Concepts {
		tags = append(tags, model.Tag{Name: concept, Type: "concept", Weight: tagWeightConcept})
	}
	for _, stock := range entities.Stocks {
		name := stock.Name
		if name == "" {
			name = stock.Code
		}
		tags = append(tags, model.Tag{Name: name, Type: "stock", Weight: tagWeightStock})
	}
	for _, status := range entities.MarketStatus {
		tags = append(tags, model.Tag{Name: status, Type: "status", Weight: tagWeightStatus})
	}
	for _, fund := range entities.FundTypes {
		tags = append(tags, model.Tag{Name: fund, Type: "fund", Weight: tagWeightFund})
	}

	return tags
}

// analyzeSentiment 词表计数情感分析
// 多空计数相等（含均为0）时判为中性
func analyzeSentiment(fullText string) (model.NewsSentiment, float64) {
	bullish := countOccurrences(fullText, bullishLexicon)
	bearish := countOccurrences(fullText, bearishLexicon)

	switch {
	case bullish > bearish:
		return model.NewsSentimentBullish, math.Min(0.8, 0.3+0.1*float64(bullish))
	case bearish > bullish:
		return model.NewsSentimentBearish, math.Max(-0.8, -0.3-0.1*float64(bearish))
	default:
		return model.NewsSentimentNeutral, 0.0
	}
}

// countOccurrences 统计词表中所有词在文本中的出现总次数
func countOccurrences(text string, lexicon []string) int {
	count := 0
	for _, word := range lexicon {
		count += strings.Count(text, word)
	}
	return count
}
