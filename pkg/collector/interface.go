package collector

import (
	"NewsRadar/pkg/model"
)

// NewsFeed 新闻数据源接口
type NewsFeed interface {
	Start() error
	Stop() error
	SubscribeUpdates(handler func(model.NewsItem))
}
