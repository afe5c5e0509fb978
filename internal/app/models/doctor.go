package models

import (
	"carepulse-service/internal/pkg/dto/responses"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Doctor struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Speciality string             `json:"speciality" bson:"speciality"`
	Image      string             `json:"image" bson:"image"`
	ImageID    string             `json:"imageId" bson:"imageId"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

func (d Doctor) ConvertIntoResponse() responses.Doctor {
	return responses.Doctor{
		ID:         d.ID.Hex(),
		Name:       d.Name,
		Speciality: d.Speciality,
		Image:      d.Image,
		ImageID:    d.ImageID,
		CreatedAt:  d.CreatedAt,
	}
}
