// pkg/model/enriched.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsSentiment string

const (
	NewsSentimentBullish NewsSentiment = "bullish"
	NewsSentimentBearish NewsSentiment = "bearish"
	NewsSentimentNeutral NewsSentiment = "neutral"
)

// Tag 实体标签（概念/股票/盘面状态/资金类型）
type Tag struct {
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Weight float64 `json:"weight"`
}

// EnrichedNews 富化后的新闻文档，持久化到数据库
// 去重键：URL优先，无URL时按(Title, DataTime)
type EnrichedNews struct {
	ID             string             `gorm:"type:uuid;primaryKey" json:"id"`
	Title          string             `gorm:"not null;index:idx_title_datatime" json:"title"`
	Content        string             `gorm:"type:text" json:"content"`
	Time           string             `gorm:"type:varchar(20)" json:"time"`
	DataTime       string             `gorm:"type:varchar(30);index:idx_title_datatime;index" json:"dataTime"`
	URL            string             `gorm:"index" json:"url"`
	Source         string             `gorm:"type:varchar(50);index" json:"source"`
	IsRed          bool               `json:"isRed"`
	Subjects       []string           `gorm:"type:jsonb;serializer:json" json:"subjects"`
	Entities       EntityBag          `gorm:"type:jsonb;serializer:json" json:"entities"`
	Tags           []Tag              `gorm:"type:jsonb;serializer:json" json:"tags"`
	Keywords       []string           `gorm:"type:jsonb;serializer:json" json:"keywords"`
	KeywordWeights map[string]float64 `gorm:"type:jsonb;serializer:json" json:"keyword_weights"`
	Sentiment      NewsSentiment      `gorm:"type:varchar(20);default:'neutral';index" json:"sentiment"`
	SentimentScore float64            `gorm:"default:0" json:"sentimentScore"`
	HotnessScore   float64            `gorm:"default:0" json:"hotnessScore"`
	Category       Category           `gorm:"type:varchar(30);index" json:"category"`
	Stocks         []StockRef         `gorm:"type:jsonb;serializer:json" json:"stocks"`
	MarketStatus   []string           `gorm:"type:jsonb;serializer:json" json:"marketStatus"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

func (e *EnrichedNews) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}
