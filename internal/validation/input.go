package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Константы валидации
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72 // ограничение bcrypt
	MinNameLength     = 1
	MaxNameLength     = 100
	CodeLength        = 6
	MaxLocationLength = 100
	MaxGoalsCount     = 20
	MaxGoalLength     = 100
	MinAge            = 1
	MaxAge            = 150
)

var (
	localPartRegex = regexp.MustCompile(`^[a-z0-9._+-]+$`)
	domainRegex    = regexp.MustCompile(`^[a-z0-9.-]+\.[a-z]{2,}$`)
	codeRegex      = regexp.MustCompile(`^[0-9]{6}$`)
)

// ValidateEmail проверяет формат email.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email обязателен")
	}

	email = strings.ToLower(strings.TrimSpace(email))

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return fmt.Errorf("некорректный формат email")
	}

	localPart, domainPart := parts[0], parts[1]

	if len(localPart) == 0 || len(localPart) > 64 {
		return fmt.Errorf("локальная часть email должна быть от 1 до 64 символов")
	}
	if len(domainPart) == 0 || len(domainPart) > 255 {
		return fmt.Errorf("доменная часть email должна быть от 1 до 255 символов")
	}

	if !localPartRegex.MatchString(localPart) {
		return fmt.Errorf("локальная часть email содержит недопустимые символы")
	}
	if !domainRegex.MatchString(domainPart) {
		return fmt.Errorf("доменная часть email имеет некорректный формат")
	}

	return nil
}

// ValidatePassword проверяет длину пароля.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("пароль должен быть не менее %d символов", MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return fmt.Errorf("пароль должен быть не более %d символов", MaxPasswordLength)
	}
	return nil
}

// ValidateName проверяет имя пользователя.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	length := utf8.RuneCountInString(name)
	if length < MinNameLength {
		return fmt.Errorf("имя обязательно")
	}
	if length > MaxNameLength {
		return fmt.Errorf("имя должно быть не более %d символов", MaxNameLength)
	}
	return nil
}

// ValidateCode проверяет, что код состоит ровно из шести цифр.
func ValidateCode(code string) error {
	if !codeRegex.MatchString(code) {
		return fmt.Errorf("код должен состоять из %d цифр", CodeLength)
	}
	return nil
}
