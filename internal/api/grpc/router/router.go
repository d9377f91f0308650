package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/habiro-server/internal/api/grpc/handler"
	"github.com/dtroode/habiro-server/internal/api/grpc/middleware"
	"github.com/dtroode/habiro-server/internal/logger"
	"github.com/dtroode/habiro-server/internal/model"
	"github.com/dtroode/habiro-server/pkg/socialpb"
)

// Router wires the Social service, health checks and interceptors into a
// gRPC server.
type Router struct {
	friends        handler.FriendsService
	chat           handler.ChatService
	ranking        handler.RankingService
	tokenService   middleware.TokenService
	contextManager model.ContextManager
	health         *health.Server
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
func New(
	friends handler.FriendsService,
	chat handler.ChatService,
	ranking handler.RankingService,
	tokenService middleware.TokenService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		friends:        friends,
		chat:           chat,
		ranking:        ranking,
		tokenService:   tokenService,
		contextManager: contextManager,
		health:         health.NewServer(),
		logger:         logger,
	}
}

// Health exposes the health server so callers can flip serving status on shutdown.
func (r *Router) Health() *health.Server {
	return r.health
}

func authRequired(_ context.Context, c interceptors.CallMeta) bool {
	return !strings.HasPrefix(c.FullMethod(), "/"+healthpb.Health_ServiceDesc.ServiceName+"/")
}

// Register builds the gRPC server with logging, panic recovery and
// authentication interceptors.
func (r *Router) Register(opts ...grpc.ServerOption) *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)
	recoveryOpt := recovery.WithRecoveryHandlerContext(middleware.RecoveryHandler(r.logger))

	opts = append(opts,
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			recovery.UnaryServerInterceptor(recoveryOpt),
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authRequired),
			),
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recoveryOpt),
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authRequired),
			),
		),
	)

	s := grpc.NewServer(opts...)
	r.registerHealth(s)
	r.registerSocialRoutes(s)

	return s
}

func (r *Router) registerHealth(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, r.health)
	r.health.SetServingStatus(socialpb.Social_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
}

func (r *Router) registerSocialRoutes(server *grpc.Server) {
	socialHandler := handler.NewSocial(r.friends, r.chat, r.ranking, r.contextManager, r.logger)
	socialpb.RegisterSocialServer(server, socialHandler)
}
