package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc/reflection"

	grpcctx "github.com/dtroode/habiro-server/internal/api/grpc/context"
	"github.com/dtroode/habiro-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/habiro-server/internal/api/grpc/server"
	"github.com/dtroode/habiro-server/internal/api/ws"
	rediscache "github.com/dtroode/habiro-server/internal/cache/redis"
	"github.com/dtroode/habiro-server/internal/config"
	"github.com/dtroode/habiro-server/internal/hub"
	"github.com/dtroode/habiro-server/internal/logger"
	"github.com/dtroode/habiro-server/internal/metrics"
	"github.com/dtroode/habiro-server/internal/model"
	"github.com/dtroode/habiro-server/internal/repository/postgres"
	"github.com/dtroode/habiro-server/internal/server"
	"github.com/dtroode/habiro-server/internal/service"
	storage "github.com/dtroode/habiro-server/internal/storage/minio"
	"github.com/dtroode/habiro-server/internal/token"
	"github.com/dtroode/habiro-server/internal/vault"
	"github.com/dtroode/habiro-server/internal/worker"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithOptions(os.Stdout, cfg.LogLevel, cfg.LogJSON, cfg.ServiceName)
	metrics.MustRegister(prometheus.DefaultRegisterer, cfg.ServiceName)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	readDB, err := postgres.OpenReadDB(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize read storage", "error", err)
	}
	defer readDB.Close()

	userRepo := postgres.NewUserRepository(db)
	friendRepo := postgres.NewFriendRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	rankingRepo := postgres.NewRankingRepository(readDB)

	avatars := newAvatarStorage(ctx, cfg.Storage, logger)
	rankingCache := newRankingCache(ctx, cfg.Redis, logger)

	loc, err := cfg.Ranking.Location()
	if err != nil {
		logger.Fatal("failed to load ranking timezone", "error", err)
	}

	msgVault := vault.New(vault.NewXChaCha(), logger)
	chatHub := hub.New(cfg.Chat.HubShards, cfg.Chat.SubscriberBuffer, logger)

	friendsService := service.NewFriends(userRepo, friendRepo, avatars, msgVault, logger)
	chatService := service.NewChat(userRepo, friendRepo, messageRepo, msgVault, chatHub, service.ChatOptions{
		DefaultPageSize:  cfg.Chat.HistoryPageSize,
		MaxPageSize:      cfg.Chat.HistoryMaxPageSize,
		MaxMessageLength: cfg.Chat.MaxMessageLength,
	}, logger)
	rankingService := service.NewRanking(rankingRepo, rankingCache, avatars, cfg.Ranking.PageSize, loc, logger)

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	tokenService := service.NewTokenService(tokenManager, logger)
	ctxMgr := grpcctx.NewManager()

	var refresher *worker.Refresher
	if rankingCache != nil {
		refresher, err = worker.NewRefresher(rankingService, cfg.Ranking.RefreshSchedule, loc, time.Minute, logger)
		if err != nil {
			logger.Fatal("failed to create ranking refresher", "error", err)
		}
		refresher.Start()
	}

	r := router.New(friendsService, chatService, rankingService, tokenService, ctxMgr, logger)
	gs := r.Register()
	reflection.Register(gs)
	rpcServer := grpcServer.NewGRPCServer(gs, r.Health(), fmt.Sprintf(":%s", cfg.GRPC.Port))

	wsHandler := ws.NewHandler(chatService, tokenService, ws.Options{
		MessagesPerSecond: cfg.Chat.MessagesPerSecond,
		MessageBurst:      cfg.Chat.MessageBurst,
	}, logger)
	liveServer := ws.NewHTTPServer(ws.NewRouter(wsHandler, promhttp.Handler(), cfg.HTTP.UpgradesPerMin), cfg.HTTP.Addr)

	sl := server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)

	servers := []model.Server{rpcServer, liveServer}
	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if refresher != nil {
		refresher.Stop(shutdownCtx)
	}
	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

// newAvatarStorage returns nil when object storage is not configured so the
// services fall back to empty avatar URLs.
func newAvatarStorage(ctx context.Context, cfg config.Storage, logger *logger.Logger) model.AvatarStorage {
	if cfg.Endpoint == "" {
		logger.Info("object storage disabled, avatar URLs will be empty")
		return nil
	}

	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	client, err := storage.NewAvatarClient(ctx, minioClient, cfg.Bucket, cfg.PresignTTL)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}
	return client
}

// newRankingCache returns nil when redis is not configured; rankings are
// then computed on every request.
func newRankingCache(ctx context.Context, cfg config.Redis, logger *logger.Logger) model.RankingCache {
	if cfg.Addr == "" {
		logger.Info("ranking cache disabled")
		return nil
	}

	client, err := rediscache.NewClient(ctx, cfg.Addr, cfg.Password, cfg.DB)
	if err != nil {
		logger.Fatal("failed to connect to redis", "error", err)
	}
	return rediscache.NewLeaderboardCache(client, cfg.TTL)
}
