package security

import (
	"blog-web-server/internal/util"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword хэширует пароль bcrypt (cost 10).
// Исходный пароль нигде не сохраняется и не логируется.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", util.LogError("не удалось создать хэш пароля", err)
	}
	return string(hash), nil
}

// CheckPassword сравнивает пароль с хэшем через bcrypt,
// а не через повторное хэширование и сравнение строк
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
