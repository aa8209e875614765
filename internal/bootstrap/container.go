package bootstrap

import (
	"context"
	"log"
	"time"

	"ai-tireshop-be/internal/config"
	"ai-tireshop-be/internal/controller"
	"ai-tireshop-be/internal/pkg/logger"
	"ai-tireshop-be/internal/pkg/mailer"
	"ai-tireshop-be/internal/repository/unitofwork"
	"ai-tireshop-be/internal/service"
	"ai-tireshop-be/pkg/chat/grounding"
	"ai-tireshop-be/pkg/chat/ratelimit"
	"ai-tireshop-be/pkg/llm"
	"ai-tireshop-be/pkg/llm/factory"

	pktNats "ai-tireshop-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController   controller.IChatController
	AdminController  controller.IAdminController
	HealthController controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Initialize LLM Provider based on Config.
	// A misconfigured provider does not kill the server: health and admin
	// endpoints stay up, and chat requests report the misconfiguration.
	var llmProvider llm.LLMProvider
	provider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Printf("[WARN] Failed to initialize LLM Provider: %v", err)
	} else {
		llmProvider = provider
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	// 2.5 Infrastructure
	// NATS (optional)
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		}
	}

	// Rate limiter: in-process by default, Redis for multi-instance setups.
	limiterCfg := ratelimit.Config{
		Window:      time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
		MaxRequests: cfg.RateLimit.MaxRequests,
	}
	var limiter ratelimit.Limiter
	if cfg.RateLimit.Backend == "redis" && cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		limiter = ratelimit.NewRedisLimiter(rdb, limiterCfg)
		log.Printf("[INFO] Using Redis rate limiter")
	} else {
		limiter = ratelimit.NewMemoryLimiter(limiterCfg)
		log.Printf("[INFO] Using in-memory rate limiter")
	}

	assembler := grounding.NewAssembler(uowFactory, sysLogger)

	publisherService := service.NewPublisherService(cfg.Keys.LeadAlertTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.LeadAlertTopic,
		cfg.Keys.LeadAlertEmail,
		emailService,
		sysLogger,
	)

	var eventBus service.EventPublisher
	if natsPub != nil {
		eventBus = natsPub
	}

	chatService := service.NewChatService(
		uowFactory,
		llmProvider,
		limiter,
		assembler,
		publisherService,
		eventBus,
		sysLogger,
	)
	adminService := service.NewAdminService(uowFactory)

	return &Container{
		ChatController:   controller.NewChatController(chatService),
		AdminController:  controller.NewAdminController(adminService),
		HealthController: controller.NewHealthController(db),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}
