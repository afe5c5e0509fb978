package requests

type CreateUser struct {
	Name  string `json:"name" validate:"required,min=2,max=50,person_name"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,pk_phone"`
}
