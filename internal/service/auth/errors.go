package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при любой ошибке проверки email/пароля
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidInput возвращается при некорректных данных нового администратора
	ErrInvalidInput = errors.New("auth: invalid input data")

	// ErrAdminExists возвращается, если администратор с таким email уже есть
	ErrAdminExists = errors.New("auth: admin already exists")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
