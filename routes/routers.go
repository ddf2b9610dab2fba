package routes

import (
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"staynest/config"
	"staynest/constants"
	"staynest/controllers"
	"staynest/middleware"
	"staynest/response"
	"staynest/services"
	"staynest/services/logger"
)

// SetupRoutes khởi tạo service, controller và đăng ký toàn bộ route
func SetupRoutes(router *gin.Engine, m *melody.Melody) {
	log := logger.NewDefaultLogger(logger.InfoLevel)

	authService := services.NewAuthService(services.AuthServiceOptions{DB: config.DB, Logger: log})
	roomService := services.NewRoomService(services.RoomServiceOptions{DB: config.DB, Redis: config.RedisClient, Logger: log})
	bookingService := services.NewBookingService(services.BookingServiceOptions{DB: config.DB, Logger: log})
	paymentService := services.NewPaymentService(services.PaymentServiceOptions{
		DB:       config.DB,
		Verifier: services.NewPortoneVerifier(),
		Logger:   log,
	})
	reviewService := services.NewReviewService(config.DB)
	faqService := services.NewFAQService(services.FAQServiceOptions{DB: config.DB, Redis: config.RedisClient, Logger: log})
	analyticsService := services.NewAnalyticsService(config.DB)

	// generator nil khi OPENAI_API_KEY không được cấu hình
	var generator services.Generator
	if gpt := services.NewGPTClientFromEnv(); gpt != nil {
		generator = gpt
	}
	supportService := services.NewSupportService(services.SupportServiceOptions{
		DB:        config.DB,
		Redis:     config.RedisClient,
		Generator: generator,
		Logger:    log,
	})

	authController := controllers.NewAuthController(authService)
	roomController := controllers.NewRoomController(roomService)
	bookingController := controllers.NewBookingController(bookingService)
	paymentController := controllers.NewPaymentController(paymentService)
	reviewController := controllers.NewReviewController(reviewService)
	chatController := controllers.NewChatController(supportService)
	faqController := controllers.NewFAQController(faqService)
	adminController := controllers.NewAdminController(analyticsService)

	services.RegisterChatSocket(m, supportService, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/ws/chat", func(c *gin.Context) {
		if err := m.HandleRequest(c.Writer, c.Request); err != nil {
			log.Error("ws: handle request: %v", err)
		}
	})

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.POST("/google", authController.GoogleLogin)
			auth.POST("/logout", authController.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), authController.Me)
		}

		api.GET("/rooms", roomController.ListRooms)
		api.GET("/rooms/:id", roomController.GetRoom)
		api.GET("/rooms/:id/booked-dates", roomController.GetBookedDates)
		api.GET("/rooms/:id/reviews", reviewController.ListRoomReviews)

		api.GET("/faqs", faqController.ListPublicFAQs)
		api.POST("/chat", chatController.Chat)

		authorized := api.Group("", middleware.AuthMiddleware())
		{
			authorized.POST("/bookings", middleware.RequirePermission(constants.ActionCreateBooking), bookingController.CreateBooking)
			authorized.GET("/bookings", bookingController.ListMyBookings)
			authorized.POST("/bookings/:id/cancel", bookingController.CancelBooking)
			authorized.POST("/bookings/:id/review", middleware.RequirePermission(constants.ActionReviewBooking), reviewController.SubmitReview)
			authorized.POST("/payments/verify", middleware.RequirePermission(constants.ActionVerifyPayment), paymentController.VerifyPayment)
		}

		admin := api.Group("/admin", middleware.AuthMiddleware())
		{
			admin.POST("/rooms", middleware.RequirePermission(constants.ActionManageRooms), roomController.CreateRoom)
			admin.PUT("/rooms/:id", middleware.RequirePermission(constants.ActionManageRooms), roomController.UpdateRoom)
			admin.DELETE("/rooms/:id", middleware.RequirePermission(constants.ActionDeleteRooms), roomController.DeleteRoom)
			admin.POST("/uploads/rooms", middleware.RequirePermission(constants.ActionManageRooms), uploadRoomImage)

			admin.GET("/bookings", middleware.RequirePermission(constants.ActionManageBookings), bookingController.ListAdminBookings)
			admin.PATCH("/bookings/:id", middleware.RequirePermission(constants.ActionManageBookings), bookingController.UpdateBookingStatus)

			admin.GET("/faqs", middleware.RequirePermission(constants.ActionManageFAQ), faqController.ListFAQs)
			admin.POST("/faqs", middleware.RequirePermission(constants.ActionManageFAQ), faqController.CreateFAQ)
			admin.PUT("/faqs/:id", middleware.RequirePermission(constants.ActionManageFAQ), faqController.UpdateFAQ)
			admin.DELETE("/faqs/:id", middleware.RequirePermission(constants.ActionManageFAQ), faqController.DeleteFAQ)
			admin.GET("/faqs/similar", middleware.RequirePermission(constants.ActionManageFAQ), faqController.SuggestSimilar)

			admin.GET("/chatbot-settings", middleware.RequirePermission(constants.ActionManageChatbot), faqController.GetChatbotSettings)
			admin.PUT("/chatbot-settings", middleware.RequirePermission(constants.ActionManageChatbot), faqController.UpdateChatbotSettings)

			admin.GET("/analytics/dashboard", middleware.RequirePermission(constants.ActionViewAnalytics), adminController.Dashboard)
		}
	}
}

// uploadRoomImage đẩy ảnh phòng lên Cloudinary và trả về secure URL
func uploadRoomImage(c *gin.Context) {
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		response.BadRequest(c, "이미지 파일을 선택해주세요.")
		return
	}
	defer file.Close()

	result, err := config.Cloudinary.Upload.Upload(c.Request.Context(), file, uploader.UploadParams{
		Folder: "staynest/rooms",
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, response.Response{Code: 0, Mess: "이미지 업로드 중 오류가 발생했습니다."})
		return
	}

	response.Success(c, gin.H{"url": result.SecureURL})
}
