package main

import (
	"log"
	"os"

	"NewsRadar/pkg/api"
	"NewsRadar/pkg/cache"
	"NewsRadar/pkg/collector"
	"NewsRadar/pkg/config"
	"NewsRadar/pkg/database"
	"NewsRadar/pkg/engine"
	"NewsRadar/pkg/enrichment"
)

func main() {
	log.Println("启动API服务...")

	// 加载配置
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = config.GetDefaultConfigPath()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v\n", err)
	}

	// 连接数据库
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("连接数据库失败: %v\n", err)
	}
	defer db.Close()

	// 创建批次缓存
	batchCache := cache.NewBatchCache(cfg.CacheTTL())

	// 创建并启动新闻收集器
	var feed collector.NewsFeed
	feed, err = collector.NewStanNewsCollector(
		cfg.NATS.URL,
		cfg.NATS.ClusterID,
		cfg.NATS.ClientID+"-api",
		cfg.News.Sources,
		batchCache,
	)
	if err != nil {
		log.Fatalf("创建新闻收集器失败: %v\n", err)
	}
	if err := feed.Start(); err != nil {
		log.Fatalf("启动新闻收集器失败: %v\n", err)
	}
	defer feed.Stop()

	// 创建API处理程序
	handlers := api.NewHandlers(
		batchCache,
		engine.NewGroupingEngine(),
		enrichment.NewEnricher(),
		db.News(),
	)

	port := cfg.API.Port
	if port == "" {
		port = "8080"
	}

	// 创建并启动服务器
	server := api.NewServer(port)
	server.SetupRoutes(handlers)
	server.Start()
}
