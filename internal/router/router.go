package router

import (
	"database/sql"

	"tablebook_backend/internal/handlers"
	"tablebook_backend/internal/middleware"
	"tablebook_backend/internal/repositories"
	"tablebook_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application. Read endpoints are
// public; mutating endpoints require a staff token.
func Setup(engine *gin.Engine, db *sql.DB) {
	customerRepo := repositories.NewCustomerRepository(db)
	reservationRepo := repositories.NewReservationRepository(db)
	authRepo := repositories.NewAuthRepository(db)

	customerService := services.NewCustomerService(customerRepo, reservationRepo, db)
	reservationService := services.NewReservationService(reservationRepo, db)
	authService := services.NewAuthService(authRepo, db)

	customerHandler := handlers.NewCustomerHandler(customerService)
	reservationHandler := handlers.NewReservationHandler(reservationService)
	authHandler := handlers.NewAuthHandler(authService)

	apiV1 := engine.Group("/api/v1")

	auth := apiV1.Group("/auth")
	{
		auth.POST("/register", authHandler.RegisterUser)
		auth.POST("/login", authHandler.LoginUser)
		auth.GET("/me", middleware.AuthMiddleware(), authHandler.GetCurrentUser)
	}

	customers := apiV1.Group("/customers")
	{
		customers.GET("", customerHandler.GetCustomers)
		customers.GET("/top", customerHandler.GetTopCustomers)
		customers.GET("/:id", customerHandler.GetCustomerByID)
		customers.GET("/:id/reservations", customerHandler.GetCustomerReservations)
		customers.POST("", middleware.AuthMiddleware(), customerHandler.CreateCustomer)
		customers.PUT("/:id", middleware.AuthMiddleware(), customerHandler.UpdateCustomer)
	}

	reservations := apiV1.Group("/reservations")
	{
		reservations.GET("/:id", reservationHandler.GetReservationByID)
		reservations.POST("", middleware.AuthMiddleware(), reservationHandler.CreateReservation)
		reservations.PUT("/:id", middleware.AuthMiddleware(), reservationHandler.UpdateReservation)
	}
}
