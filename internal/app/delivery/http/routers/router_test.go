package routers

import (
	"bytes"
	"carepulse-service/internal/app/config"
	"carepulse-service/internal/app/delivery/http/controllers"
	"carepulse-service/internal/app/delivery/http/middlewares"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/dto/responses"
	"carepulse-service/internal/pkg/exceptions"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const adminToken = "admin-token"

type testServer struct {
	router             *chi.Mux
	authUsecase        *MockAuthUsecase
	doctorUsecase      *MockDoctorUsecase
	appointmentUsecase *MockAppointmentUsecase
	patientUsecase     *MockPatientUsecase
}

func newTestServer() *testServer {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:                     "api",
			Version:                            "v1",
			CORSAllowedOrigins:                 []string{"*"},
			MaxRequests:                        1000,
			MaxTimeRequestsPerSeconds:          1,
			RequestTimeoutInSeconds:            5,
			DoctorImageMaxUploadSizeInMB:       1,
			IdentificationDocMaxUploadSizeInMB: 1,
		},
		Admin: config.Admin{SessionMaxAttemptsPerMinute: 1000},
	}

	server := &testServer{
		router:             chi.NewRouter(),
		authUsecase:        new(MockAuthUsecase),
		doctorUsecase:      new(MockDoctorUsecase),
		appointmentUsecase: new(MockAppointmentUsecase),
		patientUsecase:     new(MockPatientUsecase),
	}
	server.authUsecase.On("VerifyAdminToken", mock.Anything, adminToken).Return(constvars.CarePulseAdminSubject, nil).Maybe()
	server.authUsecase.On("VerifyAdminToken", mock.Anything, mock.MatchedBy(func(token string) bool {
		return token != adminToken
	})).Return("", exceptions.ErrTokenInvalidOrExpired(nil)).Maybe()

	middlewareInstance := middlewares.NewMiddlewares(logger, server.authUsecase, internalConfig)
	SetupRoutes(
		server.router,
		internalConfig,
		middlewareInstance,
		controllers.NewAuthController(logger, server.authUsecase, internalConfig),
		controllers.NewPatientController(logger, server.patientUsecase, internalConfig),
		controllers.NewDoctorController(logger, server.doctorUsecase, internalConfig),
		controllers.NewAppointmentController(logger, server.appointmentUsecase, internalConfig),
	)
	return server
}

func (s *testServer) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func jsonRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	return req
}

func TestAuthRoutes(t *testing.T) {
	server := newTestServer()

	t.Run("Admin session with correct passkey", func(t *testing.T) {
		server.authUsecase.On("CreateAdminSession", mock.Anything, &requests.AdminSession{Passkey: "123456"}).
			Return(&responses.AdminSession{Token: adminToken}, nil).Once()

		rr := server.serve(jsonRequest(t, http.MethodPost, "/api/v1/auth/admin", requests.AdminSession{Passkey: "123456"}))

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for a correct passkey")
		body := decodeResponse(t, rr)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, adminToken, data["token"])
	})

	t.Run("Admin session with wrong passkey", func(t *testing.T) {
		server.authUsecase.On("CreateAdminSession", mock.Anything, &requests.AdminSession{Passkey: "000000"}).
			Return(nil, exceptions.ErrInvalidAdminPasskey(nil)).Once()

		rr := server.serve(jsonRequest(t, http.MethodPost, "/api/v1/auth/admin", requests.AdminSession{Passkey: "000000"}))

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 for a wrong passkey")
	})

	t.Run("Malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/admin", bytes.NewBufferString("{"))
		rr := server.serve(req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 for malformed JSON")
	})
}

func TestDoctorRoutes(t *testing.T) {
	server := newTestServer()

	t.Run("List doctors is public", func(t *testing.T) {
		server.doctorUsecase.On("GetDoctors", mock.Anything).Return([]responses.Doctor{}).Once()

		rr := server.serve(httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		body := decodeResponse(t, rr)
		assert.Equal(t, []interface{}{}, body["data"], "an empty list should render as []")
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Create doctor requires admin", func(t *testing.T) {
		rr := server.serve(httptest.NewRequest(http.MethodPost, "/api/v1/doctors", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		server.doctorUsecase.AssertNotCalled(t, "CreateDoctor", mock.Anything, mock.Anything)
	})

	t.Run("Create doctor from multipart form", func(t *testing.T) {
		body := new(bytes.Buffer)
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField(constvars.FormFieldName, "Dr. A"))
		require.NoError(t, writer.WriteField(constvars.FormFieldSpeciality, "Cardiology"))
		part, err := writer.CreateFormFile(constvars.FormFieldImage, "portrait.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("\x89PNG\r\n\x1a\nimage"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		server.doctorUsecase.On("CreateDoctor", mock.Anything, mock.MatchedBy(func(request *requests.CreateDoctor) bool {
			return request.Name == "Dr. A" && request.ImageName == "portrait.png" && len(request.Image) > 0
		})).Return(&responses.Doctor{ID: "665f1c2a9d1e4b0012345678", Name: "Dr. A"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/doctors", body)
		req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+adminToken)
		rr := server.serve(req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Create doctor with oversized image", func(t *testing.T) {
		body := new(bytes.Buffer)
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField(constvars.FormFieldName, "Dr. A"))
		require.NoError(t, writer.WriteField(constvars.FormFieldSpeciality, "Cardiology"))
		part, err := writer.CreateFormFile(constvars.FormFieldImage, "portrait.png")
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte{0x1}, 3<<20))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/doctors", body)
		req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+adminToken)
		rr := server.serve(req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
		server.doctorUsecase.AssertNotCalled(t, "CreateDoctor", mock.Anything, mock.MatchedBy(func(request *requests.CreateDoctor) bool {
			return len(request.Image) > 1<<20
		}))
	})

	t.Run("Create doctor without image", func(t *testing.T) {
		body := new(bytes.Buffer)
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField(constvars.FormFieldName, "Dr. A"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/doctors", body)
		req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+adminToken)
		rr := server.serve(req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Delete doctor", func(t *testing.T) {
		doctorID := primitive.NewObjectID().Hex()
		server.doctorUsecase.On("DeleteDoctor", mock.Anything, doctorID, "portrait.png").Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/doctors/"+doctorID+"?image_id=portrait.png", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+adminToken)
		rr := server.serve(req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Delete doctor with malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/doctors/not-an-id?image_id=portrait.png", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+adminToken)
		rr := server.serve(req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	server.doctorUsecase.AssertExpectations(t)
}

func TestAppointmentRoutes(t *testing.T) {
	server := newTestServer()
	appointmentID := primitive.NewObjectID().Hex()

	t.Run("Create appointment loads doctors in the usecase", func(t *testing.T) {
		server.appointmentUsecase.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*requests.CreateAppointment"), []responses.Doctor(nil)).
			Return(&responses.Appointment{ID: appointmentID, Status: constvars.AppointmentStatusPending, TimeSlot: "14:30"}, nil).Once()

		rr := server.serve(jsonRequest(t, http.MethodPost, "/api/v1/appointments", map[string]interface{}{
			"userId":  "user-1",
			"patient": "patient-1",
			"appointment": map[string]interface{}{
				"primaryPhysician": "Dr. A",
				"schedule":         "2024-06-01T14:30:00",
				"reason":           "Checkup",
				"paymentMethod":    "cash",
				"paymentAmount":    1500,
			},
		}))

		assert.Equal(t, http.StatusCreated, rr.Code)
		data := decodeResponse(t, rr)["data"].(map[string]interface{})
		assert.Equal(t, "14:30", data["timeSlot"])
	})

	t.Run("Unknown doctor maps to 404", func(t *testing.T) {
		server.appointmentUsecase.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*requests.CreateAppointment"), []responses.Doctor(nil)).
			Return(nil, exceptions.ErrDoctorNotFound(nil, "Dr. X")).Once()

		rr := server.serve(jsonRequest(t, http.MethodPost, "/api/v1/appointments", map[string]interface{}{"userId": "user-1"}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Get appointment is public", func(t *testing.T) {
		server.appointmentUsecase.On("GetAppointment", mock.Anything, appointmentID).
			Return(&responses.Appointment{ID: appointmentID}, nil).Once()

		rr := server.serve(httptest.NewRequest(http.MethodGet, "/api/v1/appointments/"+appointmentID, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("List requires admin", func(t *testing.T) {
		rr := server.serve(httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		server.appointmentUsecase.AssertNotCalled(t, "GetRecentAppointmentList", mock.Anything)
	})

	t.Run("List with counts", func(t *testing.T) {
		server.appointmentUsecase.On("GetRecentAppointmentList", mock.Anything).Return(&responses.AppointmentList{
			Documents:      []responses.AppointmentRow{},
			TotalCount:     3,
			ScheduledCount: 1,
			PendingCount:   1,
			CancelledCount: 1,
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+adminToken)
		rr := server.serve(req)

		assert.Equal(t, http.StatusOK, rr.Code)
		data := decodeResponse(t, rr)["data"].(map[string]interface{})
		assert.Equal(t, float64(1), data["scheduledCount"])
		assert.Equal(t, float64(1), data["cancelledCount"])
	})

	t.Run("Update takes the id from the path", func(t *testing.T) {
		server.appointmentUsecase.On("UpdateAppointment", mock.Anything, mock.MatchedBy(func(request *requests.UpdateAppointment) bool {
			return request.AppointmentID == appointmentID && request.Type == constvars.AppointmentTypeSchedule
		})).Return(&responses.Appointment{ID: appointmentID, Status: constvars.AppointmentStatusScheduled}, nil).Once()

		req := jsonRequest(t, http.MethodPatch, "/api/v1/appointments/"+appointmentID, map[string]interface{}{
			"appointmentId": "ignored",
			"type":          constvars.AppointmentTypeSchedule,
			"appointment": map[string]interface{}{
				"primaryPhysician": "Dr. A",
				"schedule":         "2024-06-01T14:30:00",
			},
		})
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+adminToken)
		rr := server.serve(req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Stale update maps to 409", func(t *testing.T) {
		server.appointmentUsecase.On("UpdateAppointment", mock.Anything, mock.MatchedBy(func(request *requests.UpdateAppointment) bool {
			return request.ExpectedVersion != nil && *request.ExpectedVersion == 1
		})).Return(nil, exceptions.ErrAppointmentVersionConflict(nil, appointmentID)).Once()

		req := jsonRequest(t, http.MethodPatch, "/api/v1/appointments/"+appointmentID, map[string]interface{}{
			"type":            constvars.AppointmentTypeCancel,
			"expectedVersion": 1,
		})
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+adminToken)
		rr := server.serve(req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Update with forged token", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPatch, "/api/v1/appointments/"+appointmentID, map[string]interface{}{})
		req.Header.Set(constvars.HeaderAuthorization, "Bearer forged")
		rr := server.serve(req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestUserAndPatientRoutes(t *testing.T) {
	server := newTestServer()
	userID := primitive.NewObjectID().Hex()

	t.Run("Create user", func(t *testing.T) {
		server.patientUsecase.On("CreateUser", mock.Anything, mock.AnythingOfType("*requests.CreateUser")).
			Return(&responses.User{ID: userID, Name: "Ayesha Khan"}, nil).Once()

		rr := server.serve(jsonRequest(t, http.MethodPost, "/api/v1/users", requests.CreateUser{
			Name:  "Ayesha Khan",
			Email: "ayesha@example.com",
			Phone: "03001234567",
		}))

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Get user", func(t *testing.T) {
		server.patientUsecase.On("GetUser", mock.Anything, userID).Return(&responses.User{ID: userID}, nil).Once()

		rr := server.serve(httptest.NewRequest(http.MethodGet, "/api/v1/users/"+userID, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Patient of a user without profile", func(t *testing.T) {
		server.patientUsecase.On("GetPatientByUserID", mock.Anything, userID).Return(nil, exceptions.ErrPatientNotFound(nil, userID)).Once()

		rr := server.serve(httptest.NewRequest(http.MethodGet, "/api/v1/users/"+userID+"/patient", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Register patient with document", func(t *testing.T) {
		patientJSON, err := json.Marshal(map[string]interface{}{
			"userId":           userID,
			"name":             "Ayesha Khan",
			"treatmentConsent": true,
		})
		require.NoError(t, err)

		body := new(bytes.Buffer)
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField(constvars.FormFieldPatient, string(patientJSON)))
		part, err := writer.CreateFormFile(constvars.FormFieldIdentificationDocument, "cnic.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		server.patientUsecase.On("RegisterPatient", mock.Anything, mock.MatchedBy(func(request *requests.RegisterPatient) bool {
			return request.UserID == userID && request.TreatmentConsent && request.IdentificationDocumentName == "cnic.pdf"
		})).Return(&responses.Patient{UserID: userID}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", body)
		req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
		rr := server.serve(req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Register patient without the patient field", func(t *testing.T) {
		body := new(bytes.Buffer)
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", body)
		req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
		rr := server.serve(req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	server.patientUsecase.AssertExpectations(t)
}
