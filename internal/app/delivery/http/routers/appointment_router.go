package routers

import (
	"carepulse-service/internal/app/delivery/http/controllers"
	"carepulse-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Post("/", appointmentController.CreateAppointment)
	router.Get("/{appointment_id}", appointmentController.GetAppointment)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.AdminAuthenticate)
		r.Get("/", appointmentController.GetRecentAppointmentList)
		r.Patch("/{appointment_id}", appointmentController.UpdateAppointment)
	})
}
