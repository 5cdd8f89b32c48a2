package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"NewsRadar/pkg/cache"
	"NewsRadar/pkg/collector"
	"NewsRadar/pkg/config"
	"NewsRadar/pkg/database"
	"NewsRadar/pkg/engine"
	"NewsRadar/pkg/enrichment"
	"NewsRadar/pkg/messaging"
	"NewsRadar/pkg/scheduler"
)

func main() {
	log.Println("启动数据采集服务...")

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

	// 连接NATS JetStream（发布分组汇总）
	natsClient, err := messaging.NewNATSClient(cfg.NATS.URL)
	if err != nil {
		log.Fatalf("连接NATS失败: %v\n", err)
	}
	defer natsClient.Close()

	// 创建批次缓存与新闻收集器
	batchCache := cache.NewBatchCache(cfg.CacheTTL())

	newsCollector, err := collector.NewStanNewsCollector(
		cfg.NATS.URL,
		cfg.NATS.ClusterID,
		cfg.NATS.ClientID+"-collector",
		cfg.News.Sources,
		batchCache,
	)
	if err != nil {
		log.Fatalf("创建新闻收集器失败: %v\n", err)
	}

	// 启动定时富化入库任务
	sched := scheduler.NewScheduler(
		batchCache,
		enrichment.NewEnricher(),
		db.News(),
		natsClient,
		engine.NewGroupingEngine(),
		cfg.News.RefreshCron,
	)
	sched.Start()
	defer sched.Stop()

	if err := newsCollector.Start(); err != nil {
		log.Fatalf("启动新闻收集器失败: %v\n", err)
	}

	// 等待中断信号
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("正在关闭数据采集服务...")
	newsCollector.Stop()
	time.Sleep(1 * time.Second) // 等待在途消息处理完成
}
