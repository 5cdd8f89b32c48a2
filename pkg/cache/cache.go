// pkg/cache/cache.go
package cache

import (
	"sync"
	"time"

	"NewsRadar/pkg/model"
)

// BatchCache 按来源缓存的新闻批次，带TTL新鲜度
// 替代跨请求全局缓存，由调用方注入
type BatchCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
}

type entry struct {
	items     []model.NewsItem
	fetchedAt time.Time
}

// NewBatchCache 创建批次缓存，ttl<=0时使用60秒默认值
func NewBatchCache(ttl time.Duration) *BatchCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &BatchCache{
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

// Get 返回来源的缓存批次与抓取时间，过期视为未命中
func (c *BatchCache) Get(source string) ([]model.NewsItem, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[source]
	if !ok || time.Since(e.fetchedAt) > c.ttl {
		return nil, time.Time{}, false
	}
	return e.items, e.fetchedAt, true
}

// Put 整批覆盖来源的缓存
func (c *BatchCache) Put(source string, items []model.NewsItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[source] = entry{items: items, fetchedAt: time.Now()}
}

// Append 向来源批次追加一条新闻并刷新抓取时间（采集器增量写入）
func (c *BatchCache) Append(source string, item model.NewsItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entries[source]
	e.items = append(e.items, item)
	e.fetchedAt = time.Now()
	c.entries[source] = e
}

// Sources 当前缓存中未过期的来源列表
func (c *BatchCache) Sources() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	sources := make([]string, 0, len(c.entries))
	for source, e := range c.entries {
		if time.Since(e.fetchedAt) > c.ttl {
			continue
		}
		sources = append(sources, source)
	}
	return sources
}
