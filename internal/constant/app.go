package constant

import "time"

const (
	QUERY_TIMEOUT_DURATION = 10 * time.Second

	REQUEST_SUCCESSFUL   = "Request successful"
	REQUEST_UNSUCCESSFUL = "Request unsuccessful"

	JWT_TYPE_ACCESS = "access"

	// Single company deployment, the company record always has this id
	COMPANY_ID uint = 1
)

const (
	DefaultPageSize uint = 20
	MaxPageSize     uint = 100
)
