package config

import "carepulse-service/internal/pkg/exceptions"

// Validate reports every missing store or admin identifier in one error.
func (c *InternalConfig) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"DATABASE_ID", c.Store.DatabaseID},
		{"DOCTOR_COLLECTION_ID", c.Store.DoctorCollectionID},
		{"APPOINTMENT_COLLECTION_ID", c.Store.AppointmentCollectionID},
		{"PATIENT_COLLECTION_ID", c.Store.PatientCollectionID},
		{"USER_COLLECTION_ID", c.Store.UserCollectionID},
		{"BUCKET_ID", c.Store.BucketID},
		{"STORAGE_PUBLIC_ENDPOINT", c.Store.PublicEndpoint},
		{"PROJECT_ID", c.Store.ProjectID},
		{"ADMIN_PASSKEY_HASH", c.Admin.PasskeyHash},
		{"JWT_SECRET", c.Admin.JWTSecret},
	}

	var missing []string
	for _, item := range required {
		if item.value == "" {
			missing = append(missing, item.key)
		}
	}
	if len(missing) > 0 {
		return exceptions.ErrConfigurationMissing(missing)
	}
	return nil
}
