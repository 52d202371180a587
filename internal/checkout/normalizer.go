package checkout

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"asaas-integration-service/internal/dto"

	"github.com/shopspring/decimal"
)

// Request is the strict shape the payment service works with: a decimal
// value and digit-only document/phone fields.
type Request struct {
	Name        string
	CpfCnpj     string
	Email       string
	Phone       string
	OrderID     string
	Value       decimal.Decimal
	Description string
}

type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

var (
	nonDigitRe    = regexp.MustCompile(`[^0-9]`)
	nonMonetaryRe = regexp.MustCompile(`[^0-9.,]`)
	bareBase64Re  = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)
)

// Normalize validates the raw checkout payload and converts it into a
// Request. All missing required fields are reported together, not just the
// first one found.
func Normalize(raw dto.CheckoutRequest) (*Request, error) {
	var missing []string
	for _, f := range []struct {
		name  string
		empty bool
	}{
		{"name", strings.TrimSpace(raw.Name) == ""},
		{"cpfCnpj", strings.TrimSpace(raw.CpfCnpj) == ""},
		{"email", strings.TrimSpace(raw.Email) == ""},
		{"phone", strings.TrimSpace(raw.Phone) == ""},
		{"orderId", strings.TrimSpace(raw.OrderID) == ""},
		{"value", valueMissing(raw.Value)},
	} {
		if f.empty {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	description := strings.TrimSpace(raw.Description)
	if description == "" {
		orderRef := raw.OrderID
		if orderRef == "" {
			orderRef = "novo"
		}
		description = fmt.Sprintf("Pedido #%s", orderRef)
	}

	return &Request{
		Name:        strings.TrimSpace(raw.Name),
		CpfCnpj:     Digits(raw.CpfCnpj),
		Email:       strings.TrimSpace(raw.Email),
		Phone:       Digits(raw.Phone),
		OrderID:     strings.TrimSpace(raw.OrderID),
		Value:       NormalizeValue(raw.Value),
		Description: description,
	}, nil
}

// valueMissing mirrors the frontend's falsy check on the raw field: absent,
// blank text and a literal zero all count as "not provided".
func valueMissing(v any) bool {
	switch n := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(n) == ""
	case float64:
		return n == 0 || math.IsNaN(n)
	case int:
		return n == 0
	default:
		return false
	}
}

// Digits strips everything that is not a decimal digit.
func Digits(s string) string {
	return nonDigitRe.ReplaceAllString(s, "")
}

// NormalizeValue accepts the amount as a number or free-form text and
// produces a non-negative decimal. Text keeps only digits, commas and
// periods; a comma is treated as the decimal separator, with periods acting
// as thousands separators ("1.234,56" -> 1234.56). Unparsable input
// normalizes to zero, never an error.
func NormalizeValue(v any) decimal.Decimal {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
			return decimal.Zero
		}
		return decimal.NewFromFloat(n)
	case int:
		if n < 0 {
			return decimal.Zero
		}
		return decimal.NewFromInt(int64(n))
	case decimal.Decimal:
		if n.IsNegative() {
			return decimal.Zero
		}
		return n
	case string:
		return parseMonetaryText(n)
	default:
		return decimal.Zero
	}
}

func parseMonetaryText(s string) decimal.Decimal {
	cleaned := nonMonetaryRe.ReplaceAllString(s, "")
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
		// anything after a second comma is noise
		if i := strings.Index(cleaned, ","); i >= 0 {
			cleaned = cleaned[:i]
		}
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// RepairQrImage makes sure a QR image string is a displayable data URI. A
// bare base64 payload gets the png prefix added; anything unrecognizable is
// dropped rather than shown broken.
func RepairQrImage(img string) string {
	if img == "" || strings.HasPrefix(img, "data:image") {
		return img
	}
	if bareBase64Re.MatchString(img) {
		return "data:image/png;base64," + img
	}
	return ""
}
