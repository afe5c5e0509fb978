package requests

type RegisterPatient struct {
	UserID                     string `json:"userId" validate:"required"`
	Name                       string `json:"name" validate:"required,min=2,max=50,person_name"`
	Email                      string `json:"email" validate:"required,email"`
	Phone                      string `json:"phone" validate:"required,pk_phone"`
	BirthDate                  string `json:"birthDate" validate:"required,datetime_coercible"`
	Gender                     string `json:"gender" validate:"required,oneof=Male Female Other"`
	Address                    string `json:"address" validate:"required,min=5,max=500"`
	Occupation                 string `json:"occupation" validate:"required,min=2,max=500"`
	EmergencyContactName       string `json:"emergencyContactName" validate:"required,min=2,max=50,person_name"`
	EmergencyContactNumber     string `json:"emergencyContactNumber" validate:"required,pk_phone"`
	PrimaryPhysician           string `json:"primaryPhysician" validate:"required,min=2"`
	InsuranceProvider          string `json:"insuranceProvider" validate:"required,min=2,max=50"`
	InsurancePolicyNumber      string `json:"insurancePolicyNumber" validate:"required,min=2,max=50"`
	Allergies                  string `json:"allergies"`
	CurrentMedication          string `json:"currentMedication"`
	FamilyMedicalHistory       string `json:"familyMedicalHistory"`
	PastMedicalHistory         string `json:"pastMedicalHistory"`
	IdentificationType         string `json:"identificationType"`
	IdentificationNumber       string `json:"identificationNumber"`
	TreatmentConsent           bool   `json:"treatmentConsent" validate:"eq=true"`
	DisclosureConsent          bool   `json:"disclosureConsent" validate:"eq=true"`
	PrivacyConsent             bool   `json:"privacyConsent" validate:"eq=true"`
	IdentificationDocument     []byte `json:"-"`
	IdentificationDocumentName string `json:"-"`
}
