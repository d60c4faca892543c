package main

import (
	"context"

	"eldercare_booking/config"
	"eldercare_booking/database"
	"eldercare_booking/handler"
	"eldercare_booking/helper"
	"eldercare_booking/logger"
	"eldercare_booking/router"
	"eldercare_booking/service"
	"eldercare_booking/store"
	"eldercare_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func main() {
	ctx := context.Background()

	db, err := database.ConnectDB()
	if err != nil {
		logger.Fatal("database", err)
	}

	users := store.NewGormUserStore(db)
	orders := store.NewGormOrderStore(db)
	bookings := store.NewGormBookingStore(db)
	otps := store.NewGormOTPStore(db)
	activities := store.NewGormActivityStore(db)

	counter := store.NewGormSequenceCounter(db)
	if config.ConfigDefault("ORDER_SEQUENCE_BACKEND", "postgres") == "redis" {
		rdb, err := database.ConnectRedis(ctx)
		if err != nil {
			logger.Fatal("redis", err)
		}
		defer rdb.Close()
		counter = store.NewRedisSequenceCounter(rdb)
	}
	codes := service.NewCodeGenerator(counter)

	// interface nil thay vì con trỏ nil khi dịch vụ ngoài chưa cấu hình
	var uploader service.ImageUploader
	var signer service.UploadSigner
	if cld := helper.InitCloudinary(); cld != nil {
		uploader, signer = cld, cld
	}

	var completer service.Completer
	gemini, err := helper.NewGeminiCompleter(ctx)
	switch {
	case err != nil:
		logger.Error("khởi tạo Gemini thất bại", err)
	case gemini != nil:
		completer = gemini
	default:
		logger.Warning("GEMINI_API_KEY chưa cấu hình, trợ lý AI tắt")
	}

	bank := service.BankAccount{
		BankID:      config.Config("BANK_ID"),
		AccountNo:   config.Config("BANK_ACCOUNT_NO"),
		AccountName: config.Config("BANK_ACCOUNT_NAME"),
	}

	authService := service.NewAuthService(users, uploader, helper.TokenTTL())
	orderService := service.NewOrderService(orders, users, codes, uploader, bank)
	bookingService := service.NewBookingService(bookings, users, activities, codes, uploader)
	otpService := service.NewOTPService(otps, authService, utils.NewSMTPMailer())

	handler.Setup(handler.Services{
		Auth:       authService,
		Orders:     orderService,
		Bookings:   bookingService,
		History:    service.NewHistoryService(orderService, bookingService),
		OTP:        otpService,
		Activities: service.NewActivityService(activities, uploader),
		Chat:       service.NewChatService(completer, activities),
		Uploads:    service.NewUploadService(signer),
	})

	scheduler, err := helper.StartOTPCleanupScheduler(otpService.PurgeExpired)
	if err != nil {
		logger.Fatal("scheduler", err)
	}
	defer func() { _ = scheduler.Shutdown() }()

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // ảnh giấy tờ gửi dạng base64
	})
	router.SetupRoutes(app, authService)

	port := config.ConfigDefault("APP_PORT", "5000")
	if err := app.Listen(config.Config("APP_HOST") + ":" + port); err != nil {
		logger.Fatal("server", err)
	}
}
