package models

import (
	"carepulse-service/internal/pkg/dto/responses"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Patient struct {
	ID                        primitive.ObjectID `bson:"_id,omitempty"`
	UserID                    string             `bson:"userId"`
	Name                      string             `bson:"name"`
	Email                     string             `bson:"email"`
	Phone                     string             `bson:"phone"`
	BirthDate                 time.Time          `bson:"birthDate"`
	Gender                    string             `bson:"gender"`
	Address                   string             `bson:"address"`
	Occupation                string             `bson:"occupation"`
	EmergencyContactName      string             `bson:"emergencyContactName"`
	EmergencyContactNumber    string             `bson:"emergencyContactNumber"`
	PrimaryPhysician          string             `bson:"primaryPhysician"`
	InsuranceProvider         string             `bson:"insuranceProvider"`
	InsurancePolicyNumber     string             `bson:"insurancePolicyNumber"`
	Allergies                 string             `bson:"allergies,omitempty"`
	CurrentMedication         string             `bson:"currentMedication,omitempty"`
	FamilyMedicalHistory      string             `bson:"familyMedicalHistory,omitempty"`
	PastMedicalHistory        string             `bson:"pastMedicalHistory,omitempty"`
	IdentificationType        string             `bson:"identificationType,omitempty"`
	IdentificationNumber      string             `bson:"identificationNumber,omitempty"`
	IdentificationDocumentID  string             `bson:"identificationDocumentId,omitempty"`
	IdentificationDocumentURL string             `bson:"identificationDocumentUrl,omitempty"`
	TreatmentConsent          bool               `bson:"treatmentConsent"`
	DisclosureConsent         bool               `bson:"disclosureConsent"`
	PrivacyConsent            bool               `bson:"privacyConsent"`
	CreatedAt                 time.Time          `bson:"createdAt"`
}

func (p Patient) ConvertIntoResponse() responses.Patient {
	return responses.Patient{
		ID:                        p.ID.Hex(),
		UserID:                    p.UserID,
		Name:                      p.Name,
		Email:                     p.Email,
		Phone:                     p.Phone,
		BirthDate:                 p.BirthDate,
		Gender:                    p.Gender,
		Address:                   p.Address,
		Occupation:                p.Occupation,
		EmergencyContactName:      p.EmergencyContactName,
		EmergencyContactNumber:    p.EmergencyContactNumber,
		PrimaryPhysician:          p.PrimaryPhysician,
		InsuranceProvider:         p.InsuranceProvider,
		InsurancePolicyNumber:     p.InsurancePolicyNumber,
		Allergies:                 p.Allergies,
		CurrentMedication:         p.CurrentMedication,
		FamilyMedicalHistory:      p.FamilyMedicalHistory,
		PastMedicalHistory:        p.PastMedicalHistory,
		IdentificationType:        p.IdentificationType,
		IdentificationNumber:      p.IdentificationNumber,
		IdentificationDocumentID:  p.IdentificationDocumentID,
		IdentificationDocumentURL: p.IdentificationDocumentURL,
		TreatmentConsent:          p.TreatmentConsent,
		DisclosureConsent:         p.DisclosureConsent,
		PrivacyConsent:            p.PrivacyConsent,
		CreatedAt:                 p.CreatedAt,
	}
}
