package models

import (
	"carepulse-service/internal/pkg/dto/responses"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Appointment struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID             string             `json:"userId" bson:"userId"`
	Patient            string             `json:"patient" bson:"patient"`
	PrimaryPhysician   string             `json:"primaryPhysician" bson:"primaryPhysician"`
	DoctorID           string             `json:"doctorId" bson:"doctorId"`
	Schedule           time.Time          `json:"schedule" bson:"schedule"`
	TimeSlot           string             `json:"timeSlot" bson:"timeSlot"`
	Reason             string             `json:"reason" bson:"reason"`
	Note               string             `json:"note,omitempty" bson:"note,omitempty"`
	Status             string             `json:"status" bson:"status"`
	CancellationReason string             `json:"cancellationReason,omitempty" bson:"cancellationReason,omitempty"`
	PaymentMethod      string             `json:"paymentMethod" bson:"paymentMethod"`
	PaymentAmount      float64            `json:"paymentAmount" bson:"paymentAmount"`
	TransactionID      string             `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	Version            int                `json:"version" bson:"version"`

	TimeModel `bson:",inline"`
}

func (a Appointment) ConvertIntoResponse() responses.Appointment {
	return responses.Appointment{
		ID:                 a.ID.Hex(),
		UserID:             a.UserID,
		Patient:            a.Patient,
		PrimaryPhysician:   a.PrimaryPhysician,
		DoctorID:           a.DoctorID,
		Schedule:           a.Schedule,
		TimeSlot:           a.TimeSlot,
		Reason:             a.Reason,
		Note:               a.Note,
		Status:             a.Status,
		CancellationReason: a.CancellationReason,
		PaymentMethod:      a.PaymentMethod,
		PaymentAmount:      a.PaymentAmount,
		TransactionID:      a.TransactionID,
		Version:            a.Version,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// AppointmentUpdate holds the fields a status action may overwrite. Nil pointers are left untouched.
type AppointmentUpdate struct {
	PrimaryPhysician   *string
	DoctorID           *string
	Schedule           *time.Time
	TimeSlot           *string
	Reason             *string
	Note               *string
	Status             *string
	CancellationReason *string
	UpdatedAt          time.Time
}

func (u AppointmentUpdate) ConvertToBsonM() bson.M {
	set := bson.M{"updatedAt": u.UpdatedAt}
	if u.PrimaryPhysician != nil {
		set["primaryPhysician"] = *u.PrimaryPhysician
	}
	if u.DoctorID != nil {
		set["doctorId"] = *u.DoctorID
	}
	if u.Schedule != nil {
		set["schedule"] = *u.Schedule
	}
	if u.TimeSlot != nil {
		set["timeSlot"] = *u.TimeSlot
	}
	if u.Reason != nil {
		set["reason"] = *u.Reason
	}
	if u.Note != nil {
		set["note"] = *u.Note
	}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	if u.CancellationReason != nil {
		set["cancellationReason"] = *u.CancellationReason
	}
	return set
}
