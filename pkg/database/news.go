// pkg/database/news.go
package database

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"NewsRadar/pkg/model"

	"gorm.io/gorm"
)

type NewsDB struct {
	db *gorm.DB
}

func (p *PostgresDB) News() *NewsDB {
	return &NewsDB{db: p.db}
}

// SaveBatch 批量保存富化文档，逐条去重
// 未标注来源的文档回填source参数
// 单条失败仅记录日志不中断整批，返回成功保存条数
func (n *NewsDB) SaveBatch(items []*model.EnrichedNews, source string) (int, error) {
	saved := 0
	for _, item := range items {
		if item.Source == "" {
			item.Source = source
		}
		if err := n.saveOne(item); err != nil {
			log.Printf("保存新闻失败: %v (标题: %s)", err, item.Title)
			continue
		}
		saved++
	}
	return saved, nil
}

// saveOne 保存单条文档
// 去重键：URL优先，无URL时按(标题, dataTime)；命中视为原位更新
func (n *NewsDB) saveOne(item *model.EnrichedNews) error {
	var existing model.EnrichedNews

	query := n.db
	if item.URL != "" {
		query = query.Where("url = ?", item.URL)
	} else {
		query = query.Where("title = ? AND data_time = ?", item.Title, item.DataTime)
	}

	err := query.First(&existing).Error
	if err == nil {
		item.ID = existing.ID
		item.CreatedAt = existing.CreatedAt
		item.UpdatedAt = time.Now()
		return n.db.Save(item).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return n.db.Create(item).Error
}

func (n *NewsDB) GetRecent(limit int) ([]*model.EnrichedNews, error) {
	var docs []*model.EnrichedNews
	err := n.db.Order("data_time DESC").
		Limit(limit).
		Find(&docs).Error

	if err != nil {
		return nil, fmt.Errorf("查询最新新闻失败: %w", err)
	}
	return docs, nil
}

func (n *NewsDB) GetByCategory(category model.Category, limit int) ([]*model.EnrichedNews, error) {
	var docs []*model.EnrichedNews
	err := n.db.Where("category = ?", category).
		Order("data_time DESC").
		Limit(limit).
		Find(&docs).Error

	if err != nil {
		return nil, fmt.Errorf("查询分类新闻失败: %w", err)
	}
	return docs, nil
}

// WordcloudEntry 词云条目
type WordcloudEntry struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Wordcloud 统计时间窗口内关键词出现频次，取前limit个
func (n *NewsDB) Wordcloud(hours, limit int) ([]WordcloudEntry, error) {
	since := time.Now().Add(-time.Duration(hours) * time.Hour)

	var docs []model.EnrichedNews
	err := n.db.Select("keywords").
		Where("created_at >= ?", since).
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("查询词云数据失败: %w", err)
	}

	counts := make(map[string]int)
	for _, doc := range docs {
		for _, keyword := range doc.Keywords {
			counts[keyword]++
		}
	}

	entries := make([]WordcloudEntry, 0, len(counts))
	for name, value := range counts {
		entries = append(entries, WordcloudEntry{Name: name, Value: value})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Name < entries[j].Name
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// Analytics 统计时间窗口内的分类与情感分布
func (n *NewsDB) Analytics(hours int) (map[string]interface{}, error) {
	since := time.Now().Add(-time.Duration(hours) * time.Hour)

	var total int64
	if err := n.db.Model(&model.EnrichedNews{}).
		Where("created_at >= ?", since).
		Count(&total).Error; err != nil {
		return nil, fmt.Errorf("统计新闻总数失败: %w", err)
	}

	type countRow struct {
		Key   string
		Count int64
	}

	var categoryRows []countRow
	if err := n.db.Model(&model.EnrichedNews{}).
		Select("category as key, count(*) as count").
		Where("created_at >= ?", since).
		Group("category").
		Scan(&categoryRows).Error; err != nil {
		return nil, fmt.Errorf("统计分类分布失败: %w", err)
	}

	var sentimentRows []countRow
	if err := n.db.Model(&model.EnrichedNews{}).
		Select("sentiment as key, count(*) as count").
		Where("created_at >= ?", since).
		Group("sentiment").
		Scan(&sentimentRows).Error; err != nil {
		return nil, fmt.Errorf("统计情感分布失败: %w", err)
	}

	categories := make(map[string]int64, len(categoryRows))
	for _, row := range categoryRows {
		categories[row.Key] = row.Count
	}
	sentiments := make(map[string]int64, len(sentimentRows))
	for _, row := range sentimentRows {
		sentiments[row.Key] = row.Count
	}

	return map[string]interface{}{
		"total":      total,
		"categories": categories,
		"sentiments": sentiments,
	}, nil
}
