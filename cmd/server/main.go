// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"amassah-lodge-go/internal/catalog"
	"amassah-lodge-go/internal/chatbot"
	"amassah-lodge-go/internal/config"
	"amassah-lodge-go/internal/handler"
	"amassah-lodge-go/internal/middleware"
	"amassah-lodge-go/internal/pipeline"
	"amassah-lodge-go/internal/repository"
	"amassah-lodge-go/internal/service"
	"amassah-lodge-go/pkg/database"
	"amassah-lodge-go/pkg/es"
	"amassah-lodge-go/pkg/kafka"
	"amassah-lodge-go/pkg/log"
	"amassah-lodge-go/pkg/storage"
	"amassah-lodge-go/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 0. 加载 .env（可选），其中的 LODGE_* 变量会覆盖配置文件
	_ = godotenv.Load()

	// 1. 初始化配置
	configPath := os.Getenv("LODGE_CONFIG")
	if configPath == "" {
		configPath = "./configs/config.yaml"
	}
	config.Init(configPath)
	cfg := config.Conf

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync() // 确保在程序退出时刷新所有缓冲的日志条目
	log.Info("日志记录器初始化成功")

	appCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// 3. 初始化 Repository；未启用的基础设施回退到内存实现
	var (
		reviewRepo     repository.ReviewRepository
		inquiryRepo    repository.InquiryRepository
		transcriptRepo repository.TranscriptRepository
		blacklistRepo  repository.TokenBlacklistRepository
		attemptCounter kafka.AttemptCounter
	)
	if cfg.Database.MySQL.Enabled {
		database.InitMySQL(cfg.Database.MySQL.DSN)
		reviewRepo = repository.NewReviewRepository(database.DB)
		inquiryRepo = repository.NewInquiryRepository(database.DB)
	} else {
		log.Warnf("MySQL 未启用，评论、预订和反馈仅保存在内存中")
		reviewRepo = repository.NewMemoryReviewRepository()
		inquiryRepo = repository.NewMemoryInquiryRepository()
	}
	if cfg.Database.Redis.Enabled {
		database.InitRedis(cfg.Database.Redis.Addr, cfg.Database.Redis.Password, cfg.Database.Redis.DB)
		transcriptRepo = repository.NewRedisTranscriptRepository(database.RDB, cfg.Chatbot.TranscriptTTL)
		blacklistRepo = repository.NewRedisTokenBlacklist(database.RDB)
		attemptCounter = kafka.NewRedisAttemptCounter(database.RDB)
	} else {
		log.Warnf("Redis 未启用，聊天记录仅保存在内存中")
		transcriptRepo = repository.NewMemoryTranscriptRepository()
		blacklistRepo = repository.NewMemoryTokenBlacklist()
		attemptCounter = kafka.NewMemoryAttemptCounter()
	}

	// 4. 初始化咨询处理管道：Kafka 启用时异步通知前台，否则在请求内直接处理
	processor := pipeline.NewProcessor(inquiryRepo)
	var publisher service.InquiryPublisher
	if cfg.Kafka.Enabled {
		producer := kafka.NewProducer(cfg.Kafka)
		defer producer.Close()
		publisher = producer
		go kafka.StartConsumer(appCtx, cfg.Kafka, processor, attemptCounter)
	} else {
		publisher = pipeline.NewDirectPublisher(processor)
	}

	// 5. 初始化 Service (依赖注入)
	rooms := catalog.Rooms()
	jwtManager := token.NewJWTManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpireHours, cfg.JWT.RefreshTokenExpireDays)
	roomService := service.NewRoomService(rooms)
	contentService := service.NewContentService(catalog.Offers(), catalog.BlogPosts())
	reviewService := service.NewReviewService(reviewRepo, time.Now)
	reservationService := service.NewReservationService(roomService, inquiryRepo, publisher, time.Now)
	feedbackService := service.NewFeedbackService(inquiryRepo, publisher, time.Now)
	authService := service.NewAuthService(cfg.Admin, jwtManager, blacklistRepo)

	if err := reviewService.Seed(appCtx, catalog.Reviews()); err != nil {
		log.Errorf("写入初始评论失败: %v", err)
	}

	searchService := service.NewSearchService(rooms, nil, cfg.Elasticsearch.IndexName)
	if cfg.Elasticsearch.Enabled {
		if err := es.InitES(cfg.Elasticsearch); err != nil {
			log.Errorf("es 初始化失败，搜索使用内存匹配: %v", err)
		} else {
			searchService = service.NewSearchService(rooms, es.ESClient, cfg.Elasticsearch.IndexName)
			if err := searchService.IndexRooms(appCtx); err != nil {
				log.Errorf("客房索引失败: %v", err)
			}
		}
	}

	var uploader service.ReportUploader
	if cfg.MinIO.Enabled {
		storage.InitMinIO(cfg.MinIO)
		uploader = storage.NewReportStore(storage.MinioClient, cfg.MinIO.BucketName)
	}
	inventoryService := service.NewInventoryService(rooms, uploader, nil, time.Now)

	// 6. 初始化聊天机器人
	chatManager := chatbot.NewManager(
		transcriptRepo.ForVisitor,
		chatbot.TableFromConfig(cfg.Chatbot),
		chatbot.TimerScheduler{},
		chatbot.OptionsFromConfig(cfg.Chatbot),
	)
	go chatManager.Run(appCtx, cfg.Chatbot.SweepInterval)

	// 7. 初始化 Handler
	authHandler := handler.NewAuthHandler(authService)
	roomHandler := handler.NewRoomHandler(roomService)
	searchHandler := handler.NewSearchHandler(searchService)
	contentHandler := handler.NewContentHandler(contentService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	inquiryHandler := handler.NewInquiryHandler(reservationService, feedbackService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	chatHandler := handler.NewChatHandler(chatManager)

	// 8. 设置 Gin 模式并创建路由引擎
	gin.SetMode(cfg.Server.Mode)
	r := gin.New() // 使用 New() 创建一个不带默认中间件的引擎
	r.Use(middleware.RequestLogger(), gin.Recovery())

	// 9. 注册路由
	apiV1 := r.Group("/api/v1")
	{
		roomGroup := apiV1.Group("/rooms")
		{
			roomGroup.GET("", roomHandler.List)
			roomGroup.GET("/compare", roomHandler.Compare)
			roomGroup.GET("/:id", roomHandler.Get)
		}
		apiV1.GET("/search", searchHandler.Search)

		apiV1.GET("/offers", contentHandler.ListOffers)
		apiV1.GET("/offers/:id", contentHandler.GetOffer)
		apiV1.GET("/blog", contentHandler.ListPosts)
		apiV1.GET("/blog/:id", contentHandler.GetPost)

		reviews := apiV1.Group("/reviews")
		{
			reviews.GET("", reviewHandler.List)
			reviews.GET("/summary", reviewHandler.Summary)
			reviews.POST("", reviewHandler.Create)
		}

		apiV1.GET("/reservations/quote", inquiryHandler.Quote)
		apiV1.POST("/reservations", inquiryHandler.SubmitReservation)
		apiV1.POST("/feedback", inquiryHandler.SubmitFeedback)

		// Chat 路由组，按访客 cookie 隔离聊天记录
		chat := apiV1.Group("/chat")
		chat.Use(middleware.VisitorMiddleware())
		{
			chat.GET("/transcript", chatHandler.GetTranscript)
			chat.DELETE("/transcript", chatHandler.ClearTranscript)
			chat.POST("/messages", chatHandler.SubmitMessage)
		}

		// Auth 路由组
		auth := apiV1.Group("/auth")
		{
			auth.POST("/refreshToken", authHandler.RefreshToken)
			auth.POST("/logout", middleware.AuthMiddleware(authService), authHandler.Logout)
		}
		apiV1.POST("/admin/login", authHandler.Login)

		admin := apiV1.Group("/admin")
		// 管理员路由组，需要同时通过认证和管理员授权两个中间件
		admin.Use(middleware.AuthMiddleware(authService), middleware.AdminAuthMiddleware())
		{
			admin.GET("/inventory", inventoryHandler.Report)
			admin.POST("/inventory/export", inventoryHandler.Export)
			admin.GET("/reservations", inquiryHandler.ListReservations)
			admin.GET("/feedback", inquiryHandler.ListFeedback)
		}
	}
	// Chat 路由 (WebSocket)
	r.GET("/chat/ws", middleware.VisitorMiddleware(), chatHandler.Stream)

	// 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	// 等待中断信号以实现优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	// 设置一个5秒的超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 关闭 HTTP 服务器
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("HTTP 服务器关闭失败: %v", err)
	}

	// 停止 Kafka 消费者
	stop()
	log.Info("服务已优雅关闭")
}
