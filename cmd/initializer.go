package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"jobberBack/internal/config"
	"jobberBack/internal/handlers"
	"jobberBack/internal/repositories"
	"jobberBack/internal/services"
	"jobberBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	cfg      config.Config
	db       *sql.DB
	hub      *NotificationHub

	tokenManager *utils.Manager

	recommendHandler   *handlers.RecommendHandler
	taskHandler        *handlers.TaskHandler
	seekerHandler      *handlers.SeekerHandler
	categoryHandler    *handlers.CategoryHandler
	subcategoryHandler *handlers.SubcategoryHandler
	userHandler        *handlers.UserHandler
	hireHandler        *handlers.HireHandler
	paymentHandler     *handlers.PaymentHandler

	userRepo *repositories.UserRepository
}

func initializeApp(db *sql.DB, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	taskRepo := repositories.TaskRepository{DB: db}
	seekerRepo := repositories.SeekerRepository{DB: db}
	categoryRepo := repositories.CategoryRepository{DB: db}
	subcategoryRepo := repositories.SubcategoryRepository{DB: db}
	userRepo := repositories.UserRepository{DB: db}
	hireRepo := repositories.HireRepository{DB: db}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	otpStore := repositories.OTPStore{RDB: rdb, TTL: 5 * time.Minute}

	tokenManager, err := utils.NewManager(cfg.JWT.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}

	openAI := services.NewOpenAIClient(nil, cfg.OpenAI.APIKey)
	smsClient := &services.SMSClient{APIKey: cfg.SMS.APIKey}
	paymentClient := &services.PaymentClient{BaseURL: cfg.Payment.BaseURL, APIKey: cfg.Payment.APIKey}
	storage := &utils.S3Storage{
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		Endpoint:  cfg.Storage.Endpoint,
		PublicURL: cfg.Storage.PublicURL,
	}

	var fcm *services.FCMSender
	if cfg.Firebase.CredentialsFile != "" {
		fcm, err = services.NewFCMSender(context.Background(), cfg.Firebase.CredentialsFile)
		if err != nil {
			errorLog.Printf("FCM disabled: %v", err)
			fcm = nil
		}
	}

	hub := NewNotificationHub()

	// Services
	recommendService := &services.RecommendService{
		TaskRepo:        &taskRepo,
		CategoryRepo:    &categoryRepo,
		SubcategoryRepo: &subcategoryRepo,
		SeekerRepo:      &seekerRepo,
		Embedder:        openAI,
		ErrorLog:        errorLog,
	}
	peerService := &services.PeerRecommendService{
		SeekerRepo:   &seekerRepo,
		CategoryRepo: &categoryRepo,
	}
	taskService := &services.TaskService{TaskRepo: &taskRepo, OpenAI: openAI, ErrorLog: errorLog}
	seekerService := &services.SeekerService{SeekerRepo: &seekerRepo, OpenAI: openAI, Storage: storage, ErrorLog: errorLog}
	categoryService := &services.CategoryService{CategoryRepo: &categoryRepo}
	subcategoryService := &services.SubcategoryService{SubcategoryRepo: &subcategoryRepo}
	userService := &services.UserService{
		UserRepo:     &userRepo,
		OTPStore:     &otpStore,
		SMS:          smsClient,
		TokenManager: tokenManager,
	}
	hireService := &services.HireService{
		HireRepo:   &hireRepo,
		SeekerRepo: &seekerRepo,
		UserRepo:   &userRepo,
		FCM:        fcm,
		Hub:        hub,
		ErrorLog:   errorLog,
	}
	paymentService := &services.PaymentService{HireRepo: &hireRepo, Gateway: paymentClient}

	return &application{
		errorLog:     errorLog,
		infoLog:      infoLog,
		cfg:          cfg,
		db:           db,
		hub:          hub,
		tokenManager: tokenManager,
		recommendHandler: &handlers.RecommendHandler{
			Service:     recommendService,
			PeerService: peerService,
			ErrorLog:    errorLog,
		},
		taskHandler:        &handlers.TaskHandler{Service: taskService},
		seekerHandler:      &handlers.SeekerHandler{Service: seekerService},
		categoryHandler:    &handlers.CategoryHandler{Service: categoryService},
		subcategoryHandler: &handlers.SubcategoryHandler{Service: subcategoryService},
		userHandler:        &handlers.UserHandler{Service: userService},
		hireHandler:        &handlers.HireHandler{Service: hireService},
		paymentHandler:     &handlers.PaymentHandler{Service: paymentService},
		userRepo:           &userRepo,
	}
}
