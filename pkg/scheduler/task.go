package scheduler

import (
	"log"

	"NewsRadar/pkg/cache"
	"NewsRadar/pkg/database"
	"NewsRadar/pkg/engine"
	"NewsRadar/pkg/enrichment"
	"NewsRadar/pkg/messaging"
	"NewsRadar/pkg/model"

	"github.com/robfig/cron/v3"
)

// Scheduler 任务调度器
type Scheduler struct {
	cron        *cron.Cron
	cache       *cache.BatchCache
	enricher    *enrichment.Enricher
	newsDB      *database.NewsDB
	nats        *messaging.NATSClient
	groupEngine *engine.GroupingEngine
	refreshSpec string
}

// NewScheduler 创建任务调度器
func NewScheduler(
	batchCache *cache.BatchCache,
	enricher *enrichment.Enricher,
	newsDB *database.NewsDB,
	nats *messaging.NATSClient,
	groupEngine *engine.GroupingEngine,
	refreshSpec string,
) *Scheduler {
	if refreshSpec == "" {
		refreshSpec = "@every 1m"
	}
	return &Scheduler{
		cron:        cron.New(),
		cache:       batchCache,
		enricher:    enricher,
		newsDB:      newsDB,
		nats:        nats,
		groupEngine: groupEngine,
		refreshSpec: refreshSpec,
	}
}

// Start 启动调度器
func (s *Scheduler) Start() {
	// 定时富化入库
	s.cron.AddFunc(s.refreshSpec, s.refreshNews)

	// 每5分钟检查运行状态
	s.cron.AddFunc("@every 5m", s.reportHealth)

	s.cron.Start()
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// refreshNews 将新鲜缓存批次富化入库，并发布分组汇总
func (s *Scheduler) refreshNews() {
	for _, source := range s.cache.Sources() {
		items, _, ok := s.cache.Get(source)
		if !ok {
			continue
		}

		docs := make([]*model.EnrichedNews, 0, len(items))
		for _, item := range items {
			docs = append(docs, s.enricher.Enrich(item))
		}

		saved, err := s.newsDB.SaveBatch(docs, source)
		if err != nil {
			log.Printf("保存新闻批次失败: %v", err)
			continue
		}

		result := s.groupEngine.Group(items, model.StrategyDynamicHot)
		summary := map[string]interface{}{
			"source":  source,
			"saved":   saved,
			"summary": result.Summary,
		}
		if len(result.HotConcepts) > 0 {
			summary["hottest_concept"] = result.HotConcepts[0].ConceptName
		}

		if s.nats != nil {
			if err := s.nats.Publish("groups."+source, summary); err != nil {
				log.Printf("发布分组汇总失败: %v", err)
			}
		}

		log.Printf("来源 %s: 入库%d条, 概念组%d个", source, saved, result.Summary.HotConceptCount)
	}
}

// reportHealth 运行状态检查
func (s *Scheduler) reportHealth() {
	log.Printf("缓存中共有 %d 个活跃来源", len(s.cache.Sources()))

	if s.nats != nil && !s.nats.IsConnected() {
		log.Println("警告: NATS连接不可用")
	}
}
