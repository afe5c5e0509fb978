package routers

import (
	"carepulse-service/internal/app/config"
	"carepulse-service/internal/app/delivery/http/controllers"
	"carepulse-service/internal/app/delivery/http/middlewares"
	"carepulse-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	patientController *controllers.PatientController,
	doctorController *controllers.DoctorController,
	appointmentController *controllers.AppointmentController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.CORSAllowedOrigins,
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPatch, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	publicLimiter, passkeyLimiter := middlewares.CreateRateLimiters()
	router.Use(publicLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route(fmt.Sprintf("/%s", constvars.ResourceAuth), func(r chi.Router) {
				r.Use(passkeyLimiter)
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route(fmt.Sprintf("/%s", constvars.ResourceUsers), func(r chi.Router) {
				attachUserRoutes(r, middlewares, patientController)
			})

			r.Route(fmt.Sprintf("/%s", constvars.ResourcePatients), func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController)
			})

			r.Route(fmt.Sprintf("/%s", constvars.ResourceDoctors), func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, doctorController)
			})

			r.Route(fmt.Sprintf("/%s", constvars.ResourceAppointments), func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})
		})
	})
}
