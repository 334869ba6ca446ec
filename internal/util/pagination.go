package util

import "github.com/SeakMengs/MaintCert/internal/constant"

// NormalizePage defaults a zero page to 1 and keeps pageSize within (0, MaxPageSize]
func NormalizePage(page, pageSize uint) (uint, uint) {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = constant.DefaultPageSize
	}
	if pageSize > constant.MaxPageSize {
		pageSize = constant.MaxPageSize
	}
	return page, pageSize
}

func CalculateTotalPage(totalItems int64, pageSize uint) int {
	_, pageSize = NormalizePage(1, pageSize)
	if totalItems == 0 {
		return 1
	}
	size := int64(pageSize)
	return int((totalItems + size - 1) / size)
}
