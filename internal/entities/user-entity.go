package entities

// AppUser - учётная запись для входа в приложение (таблица app_user).
type AppUser struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
