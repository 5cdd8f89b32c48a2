package cache

import (
	"testing"
	"time"

	"NewsRadar/pkg/model"
)

func TestBatchCachePutGet(t *testing.T) {
	c := NewBatchCache(time.Minute)

	items := []model.NewsItem{{Title: "测试新闻", DataTime: "2024-05-10 10:00:00"}}
	c.Put("cls", items)

	got, fetchedAt, ok := c.Get("cls")
	if !ok {
		t.Fatal("新写入的批次应命中")
	}
	if len(got) != 1 || got[0].Title != "测试新闻" {
		t.Errorf("批次内容错误: %+v", got)
	}
	if fetchedAt.IsZero() {
		t.Errorf("抓取时间应已记录")
	}
}

func TestBatchCacheMissOnUnknownSource(t *testing.T) {
	c := NewBatchCache(time.Minute)

	if _, _, ok := c.Get("sina"); ok {
		t.Errorf("未写入的来源不应命中")
	}
}

func TestBatchCacheTTLExpiry(t *testing.T) {
	c := NewBatchCache(10 * time.Millisecond)

	c.Put("cls", []model.NewsItem{{Title: "a"}})
	time.Sleep(30 * time.Millisecond)

	if _, _, ok := c.Get("cls"); ok {
		t.Errorf("过期批次应视为未命中")
	}
	if len(c.Sources()) != 0 {
		t.Errorf("过期来源不应出现在来源列表中")
	}
}

func TestBatchCacheAppend(t *testing.T) {
	c := NewBatchCache(time.Minute)

	c.Append("cls", model.NewsItem{Title: "第一条"})
	c.Append("cls", model.NewsItem{Title: "第二条"})

	got, _, ok := c.Get("cls")
	if !ok || len(got) != 2 {
		t.Fatalf("追加后应有2条: %+v", got)
	}
	if got[0].Title != "第一条" || got[1].Title != "第二条" {
		t.Errorf("追加顺序错误: %+v", got)
	}
}

func TestBatchCacheDefaultTTL(t *testing.T) {
	c := NewBatchCache(0)

	c.Put("cls", []model.NewsItem{{Title: "a"}})
	if _, _, ok := c.Get("cls"); !ok {
		t.Errorf("ttl<=0应回退到默认60秒，而非立即过期")
	}
}
