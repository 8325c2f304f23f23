package users

// User is a stored account. Immutable after creation.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateUserDTO holds the data required to persist a new user.
type CreateUserDTO struct {
	Name  string
	Email string
}

func (c CreateUserDTO) toModel() *User {
	return &User{
		Name:  c.Name,
		Email: c.Email,
	}
}
