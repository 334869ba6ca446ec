package constant

type UserRole string

const (
	UserRoleAdmin      UserRole = "admin"
	UserRoleTechnician UserRole = "tecnico"
)

type Permission string

const (
	CertificateCreate       Permission = "certificate:create"
	CertificateRead         Permission = "certificate:read"
	CertificateUpdateStatus Permission = "certificate:update_status"
)

func (r UserRole) IsValid() bool {
	return r == UserRoleAdmin || r == UserRoleTechnician
}
