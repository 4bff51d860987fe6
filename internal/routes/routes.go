package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"clinic-backend/internal/handlers"
	"clinic-backend/internal/middleware"
)

// SetupRoutes memasang middleware global dan seluruh route API.
func SetupRoutes(r *gin.Engine, authHandler *handlers.AuthHandler, patientHandler *handlers.PatientHandler, jwtSecret string) {

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware(100, 15*time.Minute))

	// Grouping Auth
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/reset-password", authHandler.ResetPassword)
		// Logout butuh token dari login (satu-satunya route yang dijaga)
		auth.POST("/logout", middleware.AuthMiddleware(jwtSecret), authHandler.Logout)
	}

	// Grouping Pasien
	patients := r.Group("/patients")
	{
		patients.POST("", patientHandler.Create)
		patients.GET("/:id", patientHandler.Get)
		patients.PUT("/:id", patientHandler.Update)
		patients.DELETE("/:id", patientHandler.Delete)
	}

	// Route yang tidak dikenal
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "fail",
			"message": "Route not found",
		})
	})
}
