package api

import (
	"net/http"
	"strconv"

	"NewsRadar/pkg/cache"
	"NewsRadar/pkg/database"
	"NewsRadar/pkg/engine"
	"NewsRadar/pkg/enrichment"
	"NewsRadar/pkg/model"

	"github.com/gin-gonic/gin"
)

// Handlers API处理程序
type Handlers struct {
	cache       *cache.BatchCache
	groupEngine *engine.GroupingEngine
	enricher    *enrichment.Enricher
	newsDB      *database.NewsDB
}

// NewHandlers 创建新的API处理程序
func NewHandlers(
	batchCache *cache.BatchCache,
	groupEngine *engine.GroupingEngine,
	enricher *enrichment.Enricher,
	newsDB *database.NewsDB,
) *Handlers {
	return &Handlers{
		cache:       batchCache,
		groupEngine: groupEngine,
		enricher:    enricher,
		newsDB:      newsDB,
	}
}

// HealthCheck 健康检查处理程序
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// ReadinessCheck 就绪检查处理程序
func (h *Handlers) ReadinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// GetGroupedNews 获取分组聚合后的新闻
// strategy取dynamic_hot按平均热度排序，其余取值按时间线排序
func (h *Handlers) GetGroupedNews(c *gin.Context) {
	source := c.DefaultQuery("source", "cls")
	strategy := model.Strategy(c.DefaultQuery("strategy", string(model.StrategyDynamicHot)))

	items, fetchedAt, ok := h.cache.Get(source)
	if !ok {
		items = []model.NewsItem{}
	}

	result := h.groupEngine.Group(items, strategy)

	c.JSON(http.StatusOK, gin.H{
		"data":       result,
		"fetched_at": fetchedAt,
	})
}

// SaveNewsRequest 新闻入库请求
type SaveNewsRequest struct {
	Source string           `json:"source"`
	Items  []model.NewsItem `json:"items" binding:"required"`
}

// SaveNews 富化并入库一批新闻
func (h *Handlers) SaveNews(c *gin.Context) {
	var req SaveNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的请求参数: " + err.Error(),
		})
		return
	}

	docs := make([]*model.EnrichedNews, 0, len(req.Items))
	for _, item := range req.Items {
		docs = append(docs, h.enricher.Enrich(item))
	}

	saved, err := h.newsDB.SaveBatch(docs, req.Source)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "保存新闻失败: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"saved": saved,
	})
}

// GetWordcloud 获取词云数据
func (h *Handlers) GetWordcloud(c *gin.Context) {
	hours := intQuery(c, "hours", 24)
	limit := intQuery(c, "limit", 50)

	entries, err := h.newsDB.Wordcloud(hours, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "获取词云数据失败: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": entries,
	})
}

// GetAnalytics 获取分类与情感分布统计
func (h *Handlers) GetAnalytics(c *gin.Context) {
	hours := intQuery(c, "hours", 24)

	stats, err := h.newsDB.Analytics(hours)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "获取统计数据失败: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": stats,
	})
}

// intQuery 读取整型查询参数，非法值回退默认值
func intQuery(c *gin.Context, key string, fallback int) int {
	value, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(fallback)))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
