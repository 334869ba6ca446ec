package constant

type CertificateType string

const (
	CertificateTypeCCTV     CertificateType = "cctv"
	CertificateTypeHardware CertificateType = "hardware"
	CertificateTypeRacks    CertificateType = "racks"
)

var certificatePrefixes = map[CertificateType]string{
	CertificateTypeCCTV:     "CCTV",
	CertificateTypeHardware: "HW",
	CertificateTypeRacks:    "RK",
}

var certificateLabels = map[CertificateType]string{
	CertificateTypeCCTV:     "Mantenimiento de Sistema CCTV",
	CertificateTypeHardware: "Mantenimiento de Hardware Computacional",
	CertificateTypeRacks:    "Mantenimiento de Racks de Comunicaciones",
}

func (t CertificateType) IsValid() bool {
	_, ok := certificatePrefixes[t]
	return ok
}

// Prefix used in the certificate number, e.g. CCTV-001-11-2025
func (t CertificateType) Prefix() string {
	return certificatePrefixes[t]
}

func (t CertificateType) Label() string {
	if label, ok := certificateLabels[t]; ok {
		return label
	}
	return string(t)
}

type CertificateStatus string

const (
	CertificateStatusPending  CertificateStatus = "pendiente"
	CertificateStatusIssued   CertificateStatus = "emitido"
	CertificateStatusRejected CertificateStatus = "rechazado"
)

func (s CertificateStatus) IsValid() bool {
	switch s {
	case CertificateStatusPending, CertificateStatusIssued, CertificateStatusRejected:
		return true
	}
	return false
}

// Only a pending certificate can move, and only to issued or rejected
func (s CertificateStatus) CanTransitionTo(next CertificateStatus) bool {
	return s == CertificateStatusPending && (next == CertificateStatusIssued || next == CertificateStatusRejected)
}
