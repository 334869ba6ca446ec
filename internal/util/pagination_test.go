package util

import "testing"

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		total    int64
		pageSize uint
		want     int
	}{
		{0, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{45, 0, 3},
	}

	for _, tt := range tests {
		if got := CalculateTotalPage(tt.total, tt.pageSize); got != tt.want {
			t.Errorf("CalculateTotalPage(%d, %d) = %d, want %d", tt.total, tt.pageSize, got, tt.want)
		}
	}
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		page, pageSize         uint
		wantPage, wantPageSize uint
	}{
		{0, 0, 1, 20},
		{3, 15, 3, 15},
		{2, 500, 2, 100},
	}

	for _, tt := range tests {
		page, pageSize := NormalizePage(tt.page, tt.pageSize)
		if page != tt.wantPage || pageSize != tt.wantPageSize {
			t.Errorf("NormalizePage(%d, %d) = %d, %d, want %d, %d", tt.page, tt.pageSize, page, pageSize, tt.wantPage, tt.wantPageSize)
		}
	}
}
