package router

import (
	"eldercare_booking/config"
	"eldercare_booking/handler"
	"eldercare_booking/middleware"
	"eldercare_booking/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, resolver middleware.ActorResolver) {
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("FRONTEND_URL", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	app.Get("/", handler.Welcome)

	api := app.Group("/api", logger.New())
	api.Get("/health", handler.Health)

	protected := middleware.Protected(resolver)
	admin := middleware.AdminOnly()

	auth := api.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", protected, handler.GetMe)
	auth.Put("/profile", protected, validate.UpdateProfile(), handler.UpdateProfile)
	auth.Get("/users", protected, admin, handler.GetUsers)
	auth.Put("/users/:id/role", protected, admin, validate.GetById("id"), validate.UpdateRole(), handler.UpdateUserRole)
	auth.Delete("/users/:id", protected, admin, validate.GetById("id"), handler.DeleteUser)

	otp := api.Group("/otp")
	otp.Post("/send-register", validate.SendOTP(), handler.SendRegisterOTP)
	otp.Post("/send-reset", validate.SendOTP(), handler.SendResetOTP)
	otp.Post("/verify", validate.VerifyOTP(), handler.VerifyOTP)
	otp.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	// /stats và /my-orders phải đăng ký trước /:id
	orders := api.Group("/orders", protected)
	orders.Post("/", validate.CreateOrder(), handler.CreateOrder)
	orders.Get("/my-orders", handler.GetMyOrders)
	orders.Get("/stats", admin, handler.GetOrderStats)
	orders.Get("/", admin, handler.GetAllOrders)
	orders.Get("/:id", validate.GetById("id"), handler.GetOrderById)
	orders.Get("/:id/payment-qr", validate.GetById("id"), handler.GetPaymentQR)
	orders.Get("/:id/events", admin, validate.GetById("id"), handler.GetOrderEvents)
	orders.Put("/:id/status", admin, validate.GetById("id"), validate.UpdateStatus(), handler.UpdateOrderStatus)
	orders.Put("/:id/payment", admin, validate.GetById("id"), validate.UpdatePaymentStatus(), handler.UpdateOrderPayment)

	bookings := api.Group("/bookings", protected)
	bookings.Post("/", validate.CreateBooking(), handler.CreateBooking)
	bookings.Get("/my-bookings", handler.GetMyBookings)
	bookings.Get("/", admin, handler.GetAllBookings)
	bookings.Get("/:id", validate.GetById("id"), handler.GetBookingById)
	bookings.Put("/:id/status", admin, validate.GetById("id"), validate.UpdateStatus(), handler.UpdateBookingStatus)
	bookings.Put("/:id/payment", admin, validate.GetById("id"), validate.UpdatePaymentStatus(), handler.UpdateBookingPayment)

	history := api.Group("/history", protected)
	history.Get("/my", handler.GetMyHistory)
	history.Get("/", admin, handler.GetAllHistory)

	activities := api.Group("/activities")
	activities.Get("/", validate.FilterActivity(), handler.GetActivities)
	activities.Get("/slug/:slug", handler.GetActivityBySlug)
	activities.Get("/:id", validate.GetById("id"), handler.GetActivity)
	activities.Post("/", protected, admin, validate.Activity(), handler.CreateActivity)
	activities.Put("/:id", protected, admin, validate.GetById("id"), validate.Activity(), handler.UpdateActivity)
	activities.Delete("/:id", protected, admin, validate.GetById("id"), handler.DeleteActivity)

	ai := api.Group("/ai")
	ai.Post("/chat", validate.Chat(), handler.Chat)
	ai.Post("/chat/stream", validate.Chat(), handler.ChatStream)

	uploads := api.Group("/uploads", protected)
	uploads.Post("/signature", validate.UploadSignature(), handler.UploadSignature)
}
