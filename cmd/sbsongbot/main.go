package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sukalov/sbsong/internal/bot"
	"github.com/sukalov/sbsong/internal/bot/admin"
	"github.com/sukalov/sbsong/internal/config"
	"github.com/sukalov/sbsong/internal/db"
	"github.com/sukalov/sbsong/internal/logger"
	"github.com/sukalov/sbsong/internal/lyrics"
	"github.com/sukalov/sbsong/internal/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	botCfg, err := config.LoadBot()
	if err != nil {
		log.Fatalf("failed to load bot config: %v", err)
	}
	logger.SetDebug(cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.DatabaseURL, cfg.AuthToken)
	if err != nil {
		log.Fatalf("database initialization failed: %v", err)
	}
	store := db.NewStore(database)
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		log.Fatalf("failed to initialize songbook: %v", err)
	}

	var service *lyrics.Service
	var uploads admin.UploadCounter
	if cfg.CacheEnabled() {
		cache, err := redis.NewDBManager(cfg.RedisURL, cfg.RedisPassword, cfg.CacheTTL)
		if err != nil {
			log.Fatalf("failed to initialize redis: %v", err)
		}
		defer cache.Close()
		service = lyrics.NewService(cache)
		uploads = cache
	} else {
		service = lyrics.NewService(nil)
	}

	adminBot, err := bot.New("sbsongbot", botCfg.Token)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}
	logger.Init(adminBot, botCfg.LogChannelID)

	admin.SetupHandlers(adminBot, cfg, botCfg, service, store, uploads)
	logger.Info(fmt.Sprintf("sbsongbot started, admins: %v", botCfg.AdminUsernames))

	<-ctx.Done()
	adminBot.Stop()
	logger.Info("sbsongbot stopped")
}
