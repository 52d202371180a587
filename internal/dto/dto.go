package dto

import "asaas-integration-service/internal/model"

// CheckoutRequest is the loosely-typed payload sent by the checkout flow.
// Value arrives either as a JSON number or as free-form text ("1.234,56",
// "R$ 99,90"); cpfCnpj and phone may carry formatting punctuation.
type CheckoutRequest struct {
	Name        string `json:"name"`
	CpfCnpj     string `json:"cpfCnpj"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	OrderID     string `json:"orderId"`
	Value       any    `json:"value"`
	Description string `json:"description,omitempty"`
}

// PaymentResult mirrors what the checkout frontend expects. qrCode and
// copyPasteKey intentionally expose the same payload under both names.
type PaymentResult struct {
	Customer       *model.AsaasCustomer  `json:"customer"`
	Payment        *model.AsaasCharge    `json:"payment"`
	PixQrCode      *model.AsaasPixQrCode `json:"pixQrCode"`
	PaymentData    *model.PixPayment     `json:"paymentData"`
	QrCodeImage    string                `json:"qrCodeImage"`
	QrCode         string                `json:"qrCode"`
	CopyPasteKey   string                `json:"copyPasteKey"`
	ExpirationDate string                `json:"expirationDate"`
}

type PaymentStatusResult struct {
	PaymentID string `json:"paymentId"`
	Status    string `json:"status"`
	UpdatedAt string `json:"updatedAt"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
