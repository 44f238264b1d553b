package model

// Role : закрытое перечисление уровней доступа.
// Каждый пользователь всегда имеет минимум RoleUser.
type Role string

const (
	RoleUser   Role = "User"
	RoleEditor Role = "Editor"
	RoleAdmin  Role = "Admin"
)

// ValidRole проверяет, что строка входит в перечисление
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleUser, RoleEditor, RoleAdmin:
		return true
	}
	return false
}

// NormalizeRoles отбрасывает неизвестные роли, убирает дубликаты
// и гарантирует наличие RoleUser
func NormalizeRoles(roles []string) []string {
	seen := map[string]bool{string(RoleUser): true}
	result := []string{string(RoleUser)}

	for _, r := range roles {
		if !ValidRole(r) || seen[r] {
			continue
		}
		seen[r] = true
		result = append(result, r)
	}

	return result
}

// HasAnyRole : дизъюнктивная проверка — достаточно пересечения по одной роли,
// иерархии ролей нет
func HasAnyRole(have []string, required []Role) bool {
	for _, r := range have {
		for _, req := range required {
			if Role(r) == req {
				return true
			}
		}
	}
	return false
}
