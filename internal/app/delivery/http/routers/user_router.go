package routers

import (
	"carepulse-service/internal/app/delivery/http/controllers"
	"carepulse-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Post("/", patientController.CreateUser)
	router.Get("/{user_id}", patientController.GetUser)
	router.Get("/{user_id}/patient", patientController.GetPatientByUserID)
}
