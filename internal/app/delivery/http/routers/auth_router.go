package routers

import (
	"carepulse-service/internal/app/delivery/http/controllers"
	"carepulse-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/admin", authController.CreateAdminSession)
}
