package util

import (
	"slices"

	"github.com/SeakMengs/MaintCert/internal/constant"
)

var rolePermissions = map[constant.UserRole][]constant.Permission{
	constant.UserRoleAdmin: {
		constant.CertificateCreate,
		constant.CertificateRead,
		constant.CertificateUpdateStatus,
	},
	constant.UserRoleTechnician: {
		constant.CertificateCreate,
		constant.CertificateRead,
	},
}

// checks if the role grants every permission
func HasPermission(role constant.UserRole, permissions ...constant.Permission) bool {
	granted := rolePermissions[role]
	for _, permission := range permissions {
		if !slices.Contains(granted, permission) {
			return false
		}
	}
	return true
}

func HasRole(role constant.UserRole, allowed ...constant.UserRole) bool {
	return slices.Contains(allowed, role)
}
