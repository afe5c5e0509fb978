package routers

import (
	"carepulse-service/internal/app/delivery/http/controllers"
	"carepulse-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Get("/", doctorController.GetDoctors)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.AdminAuthenticate)
		r.Post("/", doctorController.CreateDoctor)
		r.Delete("/{doctor_id}", doctorController.DeleteDoctor)
	})
}
