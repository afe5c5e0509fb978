package utils

import (
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct_CreateUser(t *testing.T) {
	t.Run("Valid user", func(t *testing.T) {
		err := ValidateStruct(requests.CreateUser{
			Name:  "Ayesha Khan",
			Email: "ayesha@example.com",
			Phone: "0300 1234567",
		})
		assert.NoError(t, err)
	})

	t.Run("Name with digits", func(t *testing.T) {
		err := ValidateStruct(requests.CreateUser{
			Name:  "Ayesha 2",
			Email: "ayesha@example.com",
			Phone: "03001234567",
		})
		require.Error(t, err)
		messages := exceptions.FormatValidationErrors(err)
		assert.Equal(t, "Name can only contain letters and spaces", messages["name"])
	})

	t.Run("Bad phone and email", func(t *testing.T) {
		err := ValidateStruct(requests.CreateUser{
			Name:  "Ayesha Khan",
			Email: "not-an-email",
			Phone: "3001234567",
		})
		require.Error(t, err)
		messages := exceptions.FormatValidationErrors(err)
		assert.Equal(t, "Invalid email address", messages["email"])
		assert.Equal(t, "Invalid phone number. Use: +92 3XX XXXXXXX or 03XX XXXXXXX", messages["phone"])
	})
}

func TestValidateStruct_RegisterPatientConsents(t *testing.T) {
	request := requests.RegisterPatient{
		UserID:                 "665f1c2a9d1e4b0012345678",
		Name:                   "Ayesha Khan",
		Email:                  "ayesha@example.com",
		Phone:                  "+923001234567",
		BirthDate:              "1990-04-12",
		Gender:                 "Female",
		Address:                "House 12, Street 4, Lahore",
		Occupation:             "Engineer",
		EmergencyContactName:   "Bilal Khan",
		EmergencyContactNumber: "03211234567",
		PrimaryPhysician:       "Dr. A",
		InsuranceProvider:      "State Life",
		InsurancePolicyNumber:  "SL-2231",
		TreatmentConsent:       true,
		DisclosureConsent:      true,
	}

	err := ValidateStruct(request)
	require.Error(t, err)
	messages := exceptions.FormatValidationErrors(err)
	assert.Equal(t, "You must consent to privacy in order to proceed", messages["privacyConsent"])
	assert.Len(t, messages, 1)

	request.PrivacyConsent = true
	assert.NoError(t, ValidateStruct(request))
}
