// pkg/collector/news_collector.go
package collector

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"NewsRadar/pkg/cache"
	"NewsRadar/pkg/model"

	"github.com/nats-io/stan.go"
)

// rawNewsItem 爬虫发送的原始新闻数据
type rawNewsItem struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Time     string   `json:"time"`
	DataTime string   `json:"dataTime"`
	URL      string   `json:"url"`
	Source   string   `json:"source"`
	IsRed    bool     `json:"isRed"`
	Subjects []string `json:"subjects"`
}

// StanNewsCollector 基于NATS Streaming的新闻收集器
// 按来源订阅news.<source>主题，归一化后写入批次缓存
type StanNewsCollector struct {
	conn      stan.Conn
	clusterID string
	clientID  string
	natsURL   string
	sources   []string
	cache     *cache.BatchCache

	mu       sync.Mutex
	subs     []stan.Subscription
	handlers []func(model.NewsItem)
}

// NewStanNewsCollector 创建新闻收集器
func NewStanNewsCollector(natsURL, clusterID, clientID string, sources []string, batchCache *cache.BatchCache) (*StanNewsCollector, error) {
	conn, err := stan.Connect(
		clusterID,
		clientID,
		stan.NatsURL(natsURL),
	)
	if err != nil {
		return nil, fmt.Errorf("连接NATS失败: %w", err)
	}

	return &StanNewsCollector{
		conn:      conn,
		clusterID: clusterID,
		clientID:  clientID,
		natsURL:   natsURL,
		sources:   sources,
		cache:     batchCache,
		subs:      make([]stan.Subscription, 0, len(sources)),
		handlers:  make([]func(model.NewsItem), 0),
	}, nil
}

// Start 订阅所有配置来源的新闻主题
func (c *StanNewsCollector) Start() error {
	log.Println("开始订阅新闻数据...")

	for _, source := range c.sources {
		source := source
		subject := "news." + source

		sub, err := c.conn.Subscribe(
			subject,
			func(msg *stan.Msg) { c.handleMessage(source, msg) },
			stan.StartWithLastReceived(),
		)
		if err != nil {
			return fmt.Errorf("订阅新闻主题 %s 失败: %w", subject, err)
		}
		c.subs = append(c.subs, sub)
	}

	log.Printf("新闻收集器启动成功，订阅 %d 个来源", len(c.sources))
	return nil
}

// handleMessage 处理单条新闻消息
func (c *StanNewsCollector) handleMessage(source string, msg *stan.Msg) {
	var raw rawNewsItem
	if err := json.Unmarshal(msg.Data, &raw); err != nil {
		log.Printf("解析新闻数据失败: %v", err)
		return
	}

	item := normalizeItem(raw, source)

	c.cache.Append(source, item)

	c.mu.Lock()
	handlers := c.handlers
	c.mu.Unlock()
	for _, handler := range handlers {
		handler(item)
	}

	log.Printf("收到新闻: %s - %s", item.Source, item.Title)
}

// normalizeItem 将爬虫数据归一化为NewsItem
// 缺失的可选字段补空字符串/空切片
func normalizeItem(raw rawNewsItem, source string) model.NewsItem {
	if raw.Source == "" {
		raw.Source = source
	}
	if raw.Subjects == nil {
		raw.Subjects = []string{}
	}

	return model.NewsItem{
		Title:    raw.Title,
		Content:  raw.Content,
		Time:     raw.Time,
		DataTime: raw.DataTime,
		URL:      raw.URL,
		Source:   raw.Source,
		IsRed:    raw.IsRed,
		Subjects: raw.Subjects,
	}
}

// SubscribeUpdates 注册新闻到达回调
func (c *StanNewsCollector) SubscribeUpdates(handler func(model.NewsItem)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Stop 停止收集器
func (c *StanNewsCollector) Stop() error {
	for _, sub := range c.subs {
		sub.Unsubscribe()
	}

	if c.conn != nil {
		c.conn.Close()
	}

	return nil
}
