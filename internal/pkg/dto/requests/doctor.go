package requests

type CreateDoctor struct {
	Name       string `json:"name" validate:"required"`
	Speciality string `json:"speciality" validate:"required"`
	Image      []byte `json:"image" validate:"required"`
	ImageName  string `json:"imageName" validate:"required"`
}
