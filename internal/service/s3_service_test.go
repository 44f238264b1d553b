package service_test

import (
	"blog-web-server/internal/service"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 1. Ключ обложки: общий префикс, расширение в нижнем регистре, имя клиента не протекает
func TestCoverKey_Convention(t *testing.T) {
	key := service.CoverKey("Мой Котик.JPEG")

	assert.True(t, strings.HasPrefix(key, "posts/"))
	assert.True(t, strings.HasSuffix(key, ".jpeg"))
	assert.NotContains(t, key, "Котик")
}

// 2. Два разных вызова не коллидируют даже для одного имени файла
func TestCoverKey_Unique(t *testing.T) {
	assert.NotEqual(t, service.CoverKey("cover.png"), service.CoverKey("cover.png"))
}
