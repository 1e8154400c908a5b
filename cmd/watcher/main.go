package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/palemoky/holdem-watch/internal/config"
	"github.com/palemoky/holdem-watch/internal/logger"
	"github.com/palemoky/holdem-watch/internal/protocol"
	"github.com/palemoky/holdem-watch/internal/render"
	"github.com/palemoky/holdem-watch/internal/storage"
	"github.com/palemoky/holdem-watch/internal/transport"
	"github.com/palemoky/holdem-watch/internal/watcher"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	flag.Parse()

	// .env 不存在时忽略
	_ = godotenv.Load()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}

	if err := logger.Init(cfg.Log.Dir); err != nil {
		log.Printf("初始化日志失败: %v", err)
	}
	defer logger.Close()
	logger.SetVerbose(cfg.Log.Verbose)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		logger.LogError("watcher 退出: %v", err)
		log.Printf("watcher 退出: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	var store watcher.Store
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = client.Close() }()

		rs := storage.NewRedisStore(client, cfg.Redis.ContextTTLDuration())
		if err := rs.Ping(ctx); err != nil {
			return err
		}
		if ids, err := rs.ListSessions(ctx); err == nil && len(ids) > 0 {
			logger.LogInfo("Redis 中已有 %d 个会话上下文", len(ids))
		}
		store = rs
	}

	sink := render.NewTerminalSink(os.Stdout, cfg.Display.ShowEvents, cfg.Display.NoColor)
	w := watcher.New(sink, store)

	client := transport.NewClient(cfg.Server.URL, cfg.Server.Token, cfg.Server.SessionID)
	client.HandshakeTimeout = cfg.Server.HandshakeTimeoutDuration()
	client.OnError = func(err error) {
		log.Printf("服务端错误: %v", err)
	}

	if err := client.Connect(ctx); err != nil {
		return err
	}
	logger.LogInfo("已连接 %s (client %s)", cfg.Server.URL, client.ID)

	return client.Run(ctx, func(msg *protocol.Message) {
		if err := w.HandleMessage(ctx, msg); err != nil {
			logger.LogError("处理消息失败: %v", err)
		}
	})
}
