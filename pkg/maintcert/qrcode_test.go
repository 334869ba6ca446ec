package maintcert

import (
	"bytes"
	"testing"
)

func TestValidationURL(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"https://example.cl/validar?code=%s", "https://example.cl/validar?code=ABCD2345EF"},
		{"https://example.cl/validar", "https://example.cl/validar?code=ABCD2345EF"},
		{"https://example.cl/validar?lang=es", "https://example.cl/validar?lang=es&code=ABCD2345EF"},
		{"https://example.cl/valida%20cert/%s", "https://example.cl/valida%20cert/ABCD2345EF"},
		{"https://example.cl/v/%s?ref=%25s", "https://example.cl/v/ABCD2345EF?ref=%25s"},
	}

	for _, tt := range tests {
		if got := ValidationURL(tt.pattern, "ABCD2345EF"); got != tt.want {
			t.Errorf("ValidationURL(%v) = %v, want %v", tt.pattern, got, tt.want)
		}
	}
}

func TestGenerateValidationQRCode(t *testing.T) {
	png, err := GenerateValidationQRCode("https://example.cl/validar?code=%s", "ABCD2345EF", 128)
	if err != nil {
		t.Fatalf("GenerateValidationQRCode() error = %v", err)
	}

	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("expected png output")
	}
}
