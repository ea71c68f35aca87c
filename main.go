package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"broheal/config"
	"broheal/cron"
	"broheal/database"
	bookingRepoPkg "broheal/database/repository/booking"
	catalogRepoPkg "broheal/database/repository/catalog"
	conversationRepoPkg "broheal/database/repository/conversation"
	kycRepoPkg "broheal/database/repository/kyc"
	notificationRepoPkg "broheal/database/repository/notification"
	orderRepoPkg "broheal/database/repository/order"
	scheduleRepoPkg "broheal/database/repository/schedule"
	settingsRepoPkg "broheal/database/repository/settings"
	therapistRepoPkg "broheal/database/repository/therapist"
	userRepoPkg "broheal/database/repository/user"
	"broheal/handlers"
	"broheal/routes"
	"broheal/services/auth"
	"broheal/services/booking"
	"broheal/services/geocode"
	"broheal/services/kyc"
	"broheal/services/notification"
	"broheal/services/payment"
	"broheal/services/tasks"
	"broheal/services/therapist"
	"broheal/services/user"
	"broheal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	therapistRepo := therapistRepoPkg.NewMongoTherapistRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	conversationRepo := conversationRepoPkg.NewMongoConversationRepo()
	settingsRepo := settingsRepoPkg.NewMongoSettingsRepo()
	kycRepo := kycRepoPkg.NewMongoKYCRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()

	// shared infrastructure.
	sessions := auth.NewRedisSessionStore(utils.GetAuthCacheClient(), utils.RefreshTokenTTL)
	holds := booking.NewHoldManager(utils.GetHoldCacheClient(),
		time.Duration(config.AppConfig.SlotHoldTTLSeconds)*time.Second)
	scheduler := tasks.NewScheduler()
	defer scheduler.Close()

	// services.
	notificationService := &notification.DefaultNotificationService{
		NotificationRepo: notificationRepo,
		UserRepo:         userRepo,
	}
	authService := &auth.DefaultAuthService{
		UserRepo:      userRepo,
		TherapistRepo: therapistRepo,
		Sessions:      sessions,
		AdminPhone:    config.AppConfig.AdminPhone,
	}
	userService := &user.DefaultUserService{UserRepo: userRepo}
	therapistService := &therapist.DefaultTherapistService{
		TherapistRepo: therapistRepo,
		ScheduleRepo:  scheduleRepo,
	}
	bookingService := &booking.DefaultBookingService{
		ScheduleRepo:    scheduleRepo,
		BookingRepo:     bookingRepo,
		CatalogRepo:     catalogRepo,
		TherapistRepo:   therapistRepo,
		SettingsRepo:    settingsRepo,
		OrderRepo:       orderRepo,
		Holds:           holds,
		Notifier:        notificationService,
		Tasks:           scheduler,
		PaymentDeadline: time.Duration(config.AppConfig.PaymentDeadlineMins) * time.Minute,
	}
	paymentService := &payment.DefaultPaymentService{
		OrderRepo:        orderRepo,
		BookingRepo:      bookingRepo,
		ScheduleRepo:     scheduleRepo,
		TherapistRepo:    therapistRepo,
		ConversationRepo: conversationRepo,
		Notifier:         notificationService,
		Tasks:            scheduler,
		ReminderLead:     time.Duration(config.AppConfig.ReminderLeadMins) * time.Minute,
	}
	kycService := &kyc.DefaultKYCService{
		KYCRepo:       kycRepo,
		TherapistRepo: therapistRepo,
		Notifier:      notificationService,
	}
	geocoder := geocode.NewGoogleGeocodeService(config.AppConfig.GoogleAPIKey)

	// background worker for reminders and unpaid-booking expiry.
	cron.InitBookingWorker(bookingService, notificationService, therapistRepo)

	hb := &handlers.HandlerBundle{
		Auth:   &handlers.AuthHandler{Auth: authService},
		Public: &handlers.PublicHandler{SettingsRepo: settingsRepo, CatalogRepo: catalogRepo, Therapists: therapistService},
		User:   &handlers.UserHandler{Users: userService},
		Booking: &handlers.BookingHandler{
			Bookings: bookingService,
		},
		Review:        &handlers.ReviewHandler{SettingsRepo: settingsRepo, Bookings: bookingService},
		KYC:           &handlers.KYCHandler{KYC: kycService, Therapists: therapistService},
		Notification:  &handlers.NotificationHandler{Notifications: notificationService},
		Payment:       &handlers.PaymentHandler{Payments: paymentService},
		Therapist:     &handlers.TherapistHandler{Therapists: therapistService, Bookings: bookingService},
		Admin: &handlers.AdminHandler{
			SettingsRepo:  settingsRepo,
			CatalogRepo:   catalogRepo,
			UserRepo:      userRepo,
			TherapistRepo: therapistRepo,
			BookingRepo:   bookingRepo,
			KYC:           kycService,
		},
		Storage:       &handlers.StorageHandler{Storage: storageService},
		Geo:           &handlers.GeoHandler{Geocoder: geocoder},
		Conversations: &handlers.ConversationHandler{ConversationRepo: conversationRepo},
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	routes.RegisterRoutes(router, hb, sessions)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient(), utils.GetOTPCacheClient(), utils.GetHoldCacheClient()},
		database.MongoClient,
	)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
}
