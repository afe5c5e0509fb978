package routers

import (
	"carepulse-service/internal/app/delivery/http/controllers"
	"carepulse-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Post("/", patientController.RegisterPatient)
}
