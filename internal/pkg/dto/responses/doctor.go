package responses

import "time"

type Doctor struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Speciality string    `json:"speciality"`
	Image      string    `json:"image"`
	ImageID    string    `json:"imageId"`
	CreatedAt  time.Time `json:"createdAt"`
}
