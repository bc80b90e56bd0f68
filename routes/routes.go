// routes/routes.go
package routes

import (
	"net/http"

	"github.com/karetou/karetou_backend/controllers"
	"github.com/karetou/karetou_backend/middleware"
	"github.com/karetou/karetou_backend/models"
	"github.com/karetou/karetou_backend/utils"
	"github.com/karetou/karetou_backend/websocket"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupRoutes registers every endpoint on the Echo instance.
func SetupRoutes(e *echo.Echo, db *mongo.Client, hub *websocket.Hub) {
	authController := controllers.NewAuthController(db)
	adminController := controllers.NewAdminController(db)
	businessController := controllers.NewBusinessController(db, hub)
	userController := controllers.NewUserController(db)
	notificationController := controllers.NewNotificationController(db)
	dashboardController := controllers.NewDashboardController(db)
	reportController := controllers.NewReportController(db)
	uiController := controllers.NewUIController()

	api := e.Group("/api")

	// Public
	api.POST("/admin/login", authController.Login)
	api.POST("/admin/remember-me", authController.RememberMeLogin)
	api.GET("/admin/validate-token", authController.ValidateToken)
	api.POST("/auth/firebase", authController.FirebaseLogin)
	api.GET("/ui/design-tokens", uiController.GetDesignTokens)
	api.GET("/businesses", businessController.GetPublicBusinesses)
	api.POST("/businesses/:id/view", businessController.RecordView)

	// Websocket auth happens via query token since browsers cannot set
	// headers on the upgrade request
	api.GET("/admin/ws", func(c echo.Context) error {
		result, err := utils.ValidateToken(c.QueryParam("token"), db)
		if err != nil || !result.Valid {
			return c.JSON(http.StatusUnauthorized, models.Response{
				Status:  http.StatusUnauthorized,
				Message: "Invalid or missing token",
			})
		}
		adminID := ""
		if result.Admin != nil {
			adminID = result.Admin.ID.Hex()
		}
		return websocket.HandleWebSocket(c, hub, adminID)
	})

	// Mobile, authenticated
	mobile := api.Group("")
	mobile.Use(middleware.JWTMiddleware())
	mobile.POST("/auth/logout", authController.MobileLogout)
	mobile.POST("/businesses", businessController.RegisterBusiness)
	mobile.GET("/notifications", notificationController.GetNotifications)
	mobile.GET("/notifications/unread-count", notificationController.GetUnreadCount)
	mobile.PUT("/notifications/:id/read", notificationController.MarkAsRead)
	mobile.PUT("/notifications/read-all", notificationController.MarkAllAsRead)
	mobile.PUT("/users/fcm-token", notificationController.UpdateFCMToken)

	// Admin panel, authenticated
	admin := api.Group("/admin")
	admin.Use(middleware.JWTMiddleware())
	admin.Use(middleware.RequireRole(models.RoleAdmin))

	admin.POST("/logout", authController.Logout)
	admin.GET("/dashboard", dashboardController.GetDashboard)
	admin.GET("/history", adminController.GetHistoryLogs)
	admin.GET("/reports/pdf", reportController.GetPDFReport)
	admin.GET("/reports/text", reportController.GetTextReport)

	admin.GET("/businesses", businessController.GetBusinesses)
	admin.GET("/businesses/:id", businessController.GetBusiness)
	admin.POST("/businesses/:id/approve", businessController.ApproveBusiness)
	admin.POST("/businesses/:id/reject", businessController.RejectBusiness)
	admin.PUT("/businesses/:id/toggle-status", businessController.ToggleBusinessStatus)
	admin.POST("/businesses/:id/photos", businessController.UploadBusinessPhoto)

	admin.GET("/users", userController.GetUsers)
	admin.PUT("/users/:id/toggle-status", userController.ToggleUserStatus)
	admin.DELETE("/users/:id", userController.DeleteUser)

	// Admin account management is super-admin territory except listing
	admin.GET("/admins", adminController.GetAdmins)

	superAdmin := admin.Group("/admins")
	superAdmin.Use(middleware.RequireRole(models.RoleSuperAdmin))
	superAdmin.POST("", adminController.CreateAdmin)
	superAdmin.PUT("/:id/toggle-status", adminController.ToggleAdminStatus)
	superAdmin.DELETE("/:id", adminController.DeleteAdmin)
}
