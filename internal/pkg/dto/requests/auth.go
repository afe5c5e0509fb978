package requests

type AdminSession struct {
	Passkey string `json:"passkey" validate:"required"`
}
