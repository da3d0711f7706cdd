package docs

import (
	"fmt"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"
)

// VerifyURL builds the public verification link encoded into a generated
// document's QR code. Anyone scanning it lands on the portal's verification
// page for that filing.
func VerifyURL(baseURL, kind, referenceCode string) string {
	return fmt.Sprintf("%s/verify-utilization?type=%s&ref=%s",
		baseURL, url.QueryEscape(kind), url.QueryEscape(referenceCode))
}

// VerifyQR renders the verification link as a PNG QR code.
func VerifyQR(link string, size int) ([]byte, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode verification QR: %w", err)
	}
	return png, nil
}
