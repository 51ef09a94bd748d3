package dto

type LoginDTO struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// Identity - аутентифицированный пользователь текущего запроса.
type Identity struct {
	UserID   int64
	Username string
}

type LoginPage struct {
	Username string
	Error    string
}
