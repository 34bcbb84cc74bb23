package models

import "github.com/pkg/errors"

type AccountRole string

const (
	AccountRoleSuperAdmin AccountRole = "SUPER_ADMIN"
	AccountRoleAdmin      AccountRole = "ADMIN"
	AccountRoleEmployee   AccountRole = "EMPLOYEE"
)

var roleHumanName = map[AccountRole]string{
	AccountRoleSuperAdmin: "Суперадмин системы",
	AccountRoleAdmin:      "Администратор",
	AccountRoleEmployee:   "Сотрудник",
}

func (r AccountRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

// IsElevated - роль с правом управления чужими записями и сессиями
func (r AccountRole) IsElevated() bool {
	return r == AccountRoleAdmin || r == AccountRoleSuperAdmin
}

// ParseAccountRole - проверка роли на границе апи, допускаются только известные роли
func ParseAccountRole(value string) (AccountRole, error) {
	role := AccountRole(value)
	if _, exist := roleHumanName[role]; !exist {
		return "", errors.Errorf("неизвестная роль: %s", value)
	}
	return role, nil
}
