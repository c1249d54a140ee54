package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"sparklewash/config"
	"sparklewash/cron"
	"sparklewash/database"
	bookingRepoPkg "sparklewash/database/repository/booking"
	customerRepoPkg "sparklewash/database/repository/customer"
	paymentRepoPkg "sparklewash/database/repository/payment"
	"sparklewash/handlers"
	"sparklewash/middleware"
	"sparklewash/routes"
	"sparklewash/services/booking"
	"sparklewash/services/notification"
	"sparklewash/services/payment"
	"sparklewash/services/stats"
	"sparklewash/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	customerRepo := customerRepoPkg.NewMongoCustomerRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Customers: customerRepo,
		Logger:    logger,
	}

	reminderClient := cron.NewReminderClient()
	defer reminderClient.Close()
	reminders := &booking.ReminderScheduler{
		Client: reminderClient,
		Lead:   time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		PaymentRepo:  paymentRepo,
		CustomerRepo: customerRepo,
		Notifier:     notificationService,
		Reminders:    reminders,
		Logger:       logger,
	}

	paymentService := &payment.DefaultPaymentService{
		Repo:        paymentRepo,
		BookingRepo: bookingRepo,
		Logger:      logger,
	}

	statsService := &stats.DefaultStatsService{
		BookingRepo:    bookingRepo,
		PaymentRepo:    paymentRepo,
		CustomerRepo:   customerRepo,
		Cache:          utils.GetCacheClient(),
		CacheTTL:       time.Duration(config.AppConfig.StatsCacheTTLSecs) * time.Second,
		ActivityWindow: time.Duration(config.AppConfig.ActivityWindowDays) * 24 * time.Hour,
		Logger:         logger,
	}

	// Background collaborators: reminder worker, stats watcher, health monitor.
	cron.InitReminderWorker(notificationService)

	watcherCtx, stopWatcher := context.WithCancel(context.Background())
	defer stopWatcher()
	watcher := &stats.Watcher{Service: statsService, Logger: logger}
	go watcher.Run(watcherCtx)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// handlers.
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	paymentHandler := handlers.NewPaymentHandler(paymentService, statsService, logger)
	customerHandler := handlers.NewCustomerHandler(customerRepo, statsService, logger)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateBooking:  bookingHandler.CreateBookingHandler,
		ListBookings:   bookingHandler.ListBookingsHandler,
		TodayBookings:  bookingHandler.TodayBookingsHandler,
		GetBooking:     bookingHandler.GetBookingHandler,
		AdvanceBooking: bookingHandler.AdvanceBookingHandler,
		CancelBooking:  bookingHandler.CancelBookingHandler,
		BulkStatus:     bookingHandler.BulkStatusHandler,

		RecordPayment:       paymentHandler.RecordPaymentHandler,
		ListPayments:        paymentHandler.ListPaymentsHandler,
		UpdatePaymentStatus: paymentHandler.UpdatePaymentStatusHandler,
		PaymentStats:        paymentHandler.PaymentStatsHandler,

		ListCustomers:  customerHandler.ListCustomersHandler,
		GetCustomer:    customerHandler.GetCustomerHandler,
		UpdateFCMToken: customerHandler.UpdateFCMTokenHandler,

		DashboardStats: statsHandler.DashboardStatsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	stopWatcher()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
