package checkout_test

import (
	"testing"

	"asaas-integration-service/internal/checkout"
	"asaas-integration-service/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "plain number", input: 123.45, expected: "123.45"},
		{name: "integer", input: 50, expected: "50"},
		{name: "brazilian format", input: "1.234,56", expected: "1234.56"},
		{name: "currency prefix", input: "R$ 99,90", expected: "99.9"},
		{name: "plain decimal text", input: "99.90", expected: "99.9"},
		{name: "comma only", input: "10,00", expected: "10"},
		{name: "garbage", input: "abc", expected: "0"},
		{name: "empty string", input: "", expected: "0"},
		{name: "nil", input: nil, expected: "0"},
		{name: "negative number", input: -5.0, expected: "0"},
		{name: "sign is stripped from text", input: "-5,00", expected: "5"},
		{name: "boolean", input: true, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkout.NormalizeValue(tt.input)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, got)
		})
	}
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "12345678900", checkout.Digits("123.456.789-00"))
	assert.Equal(t, "5511999998888", checkout.Digits("+55 (11) 99999-8888"))
	assert.Equal(t, "", checkout.Digits("no digits here"))
}

func TestNormalize(t *testing.T) {
	raw := dto.CheckoutRequest{
		Name:    "Maria Silva",
		CpfCnpj: "123.456.789-00",
		Email:   "maria@example.com",
		Phone:   "(11) 98888-7777",
		OrderID: "order-42",
		Value:   "1.234,56",
	}

	req, err := checkout.Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, "12345678900", req.CpfCnpj)
	assert.Equal(t, "11988887777", req.Phone)
	assert.True(t, req.Value.Equal(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "Pedido #order-42", req.Description)
}

func TestNormalize_KeepsExplicitDescription(t *testing.T) {
	raw := dto.CheckoutRequest{
		Name:        "Maria Silva",
		CpfCnpj:     "12345678900",
		Email:       "maria@example.com",
		Phone:       "11988887777",
		OrderID:     "order-42",
		Value:       10.0,
		Description: "Assinatura anual",
	}

	req, err := checkout.Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, "Assinatura anual", req.Description)
}

func TestNormalize_ReportsAllMissingFields(t *testing.T) {
	raw := dto.CheckoutRequest{
		Name:  "Maria Silva",
		Email: "maria@example.com",
	}

	_, err := checkout.Normalize(raw)
	require.Error(t, err)

	var vErr *checkout.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ElementsMatch(t, []string{"cpfCnpj", "phone", "orderId", "value"}, vErr.Missing)
}

func TestNormalize_ZeroValueIsMissing(t *testing.T) {
	raw := dto.CheckoutRequest{
		Name:    "Maria Silva",
		CpfCnpj: "12345678900",
		Email:   "maria@example.com",
		Phone:   "11988887777",
		OrderID: "order-42",
		Value:   0.0,
	}

	_, err := checkout.Normalize(raw)
	var vErr *checkout.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"value"}, vErr.Missing)
}

func TestRepairQrImage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already a data uri",
			input:    "data:image/png;base64,iVBORw0KGgo=",
			expected: "data:image/png;base64,iVBORw0KGgo=",
		},
		{
			name:     "bare base64 gets wrapped",
			input:    "iVBORw0KGgoAAAANSUhEUg==",
			expected: "data:image/png;base64,iVBORw0KGgoAAAANSUhEUg==",
		},
		{
			name:     "unrecognizable content is dropped",
			input:    "<svg>not base64</svg>",
			expected: "",
		},
		{
			name:     "empty stays empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, checkout.RepairQrImage(tt.input))
		})
	}
}
