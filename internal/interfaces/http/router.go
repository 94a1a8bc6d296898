package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"vendora/internal/application/resolution/usecases"
	domainresolution "vendora/internal/domain/resolution"
	"vendora/internal/domain/shared/events"
	"vendora/internal/infrastructure/auth"
	"vendora/internal/infrastructure/config"
	"vendora/internal/infrastructure/ratelimit"
	"vendora/internal/infrastructure/repository"
	"vendora/internal/infrastructure/services"
	resolutionhandlers "vendora/internal/interfaces/http/handlers/resolution"
	"vendora/internal/interfaces/http/middleware"
	"vendora/internal/interfaces/http/routes"
	sharedDB "vendora/internal/shared/db"
	"vendora/internal/shared/logger"
)

// Router wires the resolution engine behind a gin engine.
type Router struct {
	engine         *gin.Engine
	issueHandler   *resolutionhandlers.IssueHandler
	disputeHandler *resolutionhandlers.DisputeHandler
	threadHandler  *resolutionhandlers.ThreadHandler
	authMiddleware *middleware.AuthMiddleware
	dispatcher     *events.InMemoryEventDispatcher
	rateLimiter    ratelimit.RateLimiter
	allowedOrigins []string
	log            logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	issueRepo := repository.NewIssueRepository(db)
	disputeRepo := repository.NewDisputeRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	evidenceRepo := repository.NewEvidenceRepository(db)
	adRepo := repository.NewAdvertisementRepository(db)

	numberGen := services.NewCaseNumberGenerator(db)
	txManager := sharedDB.NewTransactionManager(db)

	adAgeWindow := time.Duration(cfg.Resolution.AdAgeWindowDays) * 24 * time.Hour
	responseWindow := time.Duration(cfg.Resolution.IssueResponseWindowDays) * 24 * time.Hour
	negotiationWindow := time.Duration(cfg.Resolution.NegotiationWindowDays) * 24 * time.Hour

	checker := domainresolution.NewEligibilityChecker(issueRepo, disputeRepo, adRepo, adAgeWindow)

	dispatcher := events.NewInMemoryEventDispatcher(0)
	subscribeEventLogging(dispatcher, log)
	if err := dispatcher.Start(); err != nil {
		log.Errorw("failed to start event dispatcher", "error", err)
	}

	checkEligibilityUC := usecases.NewCheckEligibilityUseCase(checker, log)
	createIssueUC := usecases.NewCreateIssueUseCase(issueRepo, checker, numberGen, messageRepo, dispatcher, log)
	respondToIssueUC := usecases.NewRespondToIssueUseCase(issueRepo, messageRepo, dispatcher, log)
	closeIssueUC := usecases.NewCloseIssueUseCase(issueRepo, dispatcher, log)
	escalateIssueUC := usecases.NewEscalateIssueUseCase(issueRepo, disputeRepo, numberGen, messageRepo, txManager, dispatcher, log)
	getIssueUC := usecases.NewGetIssueUseCase(issueRepo, responseWindow, log)
	listIssuesUC := usecases.NewListIssuesUseCase(issueRepo, log)
	statsUC := usecases.NewGetResolutionStatsUseCase(issueRepo, disputeRepo, log)

	createDisputeUC := usecases.NewCreateDisputeUseCase(disputeRepo, checker, numberGen, messageRepo, dispatcher, log)
	markUnderReviewUC := usecases.NewMarkDisputeUnderReviewUseCase(disputeRepo, log)
	respondToDisputeUC := usecases.NewRespondToDisputeUseCase(disputeRepo, messageRepo, negotiationWindow, dispatcher, log)
	closeDisputeUC := usecases.NewCloseDisputeUseCase(disputeRepo, dispatcher, log)
	escalateToClaimUC := usecases.NewEscalateToClaimUseCase(disputeRepo, dispatcher, log)
	getDisputeUC := usecases.NewGetDisputeUseCase(disputeRepo, log)
	listDisputesUC := usecases.NewListDisputesUseCase(disputeRepo, log)

	addMessageUC := usecases.NewAddMessageUseCase(issueRepo, disputeRepo, messageRepo, log)
	listMessagesUC := usecases.NewListMessagesUseCase(issueRepo, disputeRepo, messageRepo, log)
	addEvidenceUC := usecases.NewAddEvidenceUseCase(issueRepo, disputeRepo, evidenceRepo, log)
	listEvidenceUC := usecases.NewListEvidenceUseCase(issueRepo, disputeRepo, evidenceRepo, log)

	issueHandler := resolutionhandlers.NewIssueHandler(
		checkEligibilityUC, createIssueUC, respondToIssueUC, closeIssueUC,
		escalateIssueUC, getIssueUC, listIssuesUC, statsUC,
	)
	disputeHandler := resolutionhandlers.NewDisputeHandler(
		createDisputeUC, markUnderReviewUC, respondToDisputeUC, closeDisputeUC,
		escalateToClaimUC, getDisputeUC, listDisputesUC,
	)
	threadHandler := resolutionhandlers.NewThreadHandler(
		addMessageUC, listMessagesUC, addEvidenceUC, listEvidenceUC,
	)

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, log)

	var rateLimiter ratelimit.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		window := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
		rateLimiter = ratelimit.NewRedisRateLimiter(redisClient, cfg.RateLimit.Requests, window)
	}

	return &Router{
		engine:         engine,
		issueHandler:   issueHandler,
		disputeHandler: disputeHandler,
		threadHandler:  threadHandler,
		authMiddleware: authMiddleware,
		dispatcher:     dispatcher,
		rateLimiter:    rateLimiter,
		allowedOrigins: cfg.Server.AllowedOrigins,
		log:            log,
	}
}

// subscribeEventLogging attaches a logging handler to every resolution
// event type. Downstream consumers (notifications, analytics) hook in
// the same way.
func subscribeEventLogging(dispatcher *events.InMemoryEventDispatcher, log logger.Interface) {
	eventTypes := []string{
		domainresolution.EventTypeIssueOpened,
		domainresolution.EventTypeIssueResponded,
		domainresolution.EventTypeIssueClosed,
		domainresolution.EventTypeIssueEscalated,
		domainresolution.EventTypeDisputeOpened,
		domainresolution.EventTypeDisputeResponded,
		domainresolution.EventTypeDisputeClosed,
		domainresolution.EventTypeDisputeEscalated,
	}

	for _, eventType := range eventTypes {
		handler := events.NewSimpleEventHandler(eventType, func(event events.DomainEvent) error {
			log.Infow("domain event",
				"event_type", event.GetEventType(),
				"aggregate_id", event.GetAggregateID(),
				"occurred_at", event.GetOccurredAt(),
			)
			return nil
		})
		if err := dispatcher.Subscribe(eventType, handler); err != nil {
			log.Errorw("failed to subscribe event handler", "event_type", eventType, "error", err)
		}
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	if r.rateLimiter != nil {
		r.engine.Use(middleware.RateLimit(r.rateLimiter))
	}

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupResolutionRoutes(r.engine, &routes.ResolutionRouteConfig{
		IssueHandler:   r.issueHandler,
		DisputeHandler: r.disputeHandler,
		ThreadHandler:  r.threadHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// Shutdown stops the background event dispatcher.
func (r *Router) Shutdown() error {
	return r.dispatcher.Stop()
}
