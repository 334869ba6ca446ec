package maintcert

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// The first %s of pattern is replaced by the code, other % sequences are kept as is.
// A pattern without %s gets ?code= appended
func ValidationURL(pattern, code string) string {
	if strings.Contains(pattern, "%s") {
		return strings.Replace(pattern, "%s", code, 1)
	}

	sep := "?"
	if strings.Contains(pattern, "?") {
		sep = "&"
	}
	return pattern + sep + "code=" + code
}

// Encode the public validation url of a certificate as a PNG qr code
// If the qr code is printed on a pdf, size 256 should be enough
func GenerateValidationQRCode(pattern, code string, size int) ([]byte, error) {
	png, err := qrcode.Encode(ValidationURL(pattern, code), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}
