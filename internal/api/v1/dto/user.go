package dto

// UserCreateDTO is the signup request body. PasswordConfirmation is an
// optional plain field compared against Password by the handler before the
// hash is computed.
type UserCreateDTO struct {
	FirstName            string `json:"firstName" validate:"required"`
	LastName             string `json:"lastName" validate:"required"`
	EmailAddress         string `json:"emailAddress" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8,max=20"`
	PasswordConfirmation string `json:"passwordConfirmation,omitempty"`
}

// UserResponseDTO is the authenticated caller's own projection. It never
// carries the password hash or timestamps.
type UserResponseDTO struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}
