package models

type User struct {
	ID        int    `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	City      string `json:"city"`
	Language  string `json:"language"`
}

type UserPayload struct {
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname" validate:"required"`
	Email     string `json:"email" validate:"required"`
	City      string `json:"city" validate:"required"`
	Language  string `json:"language" validate:"required"`
}

func (p UserPayload) User(id int) User {
	return User{
		ID:        id,
		Firstname: p.Firstname,
		Lastname:  p.Lastname,
		Email:     p.Email,
		City:      p.City,
		Language:  p.Language,
	}
}
