package model

import "github.com/shopspring/decimal"

// Wire types for the Asaas REST API. Only the fields this service reads are
// declared; the gateway sends more.

type AsaasCustomer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	CpfCnpj string `json:"cpfCnpj"`
	Phone   string `json:"mobilePhone"`
}

type AsaasCharge struct {
	ID                string          `json:"id"`
	Status            string          `json:"status"`
	Value             decimal.Decimal `json:"value"`
	BillingType       string          `json:"billingType"`
	Description       string          `json:"description"`
	ExternalReference string          `json:"externalReference"`
	DueDate           string          `json:"dueDate"`
	InvoiceURL        string          `json:"invoiceUrl"`
}

type AsaasPixQrCode struct {
	Success        bool   `json:"success"`
	EncodedImage   string `json:"encodedImage"`
	Payload        string `json:"payload"`
	ExpirationDate string `json:"expirationDate"`
}

type AsaasErrorItem struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type AsaasErrorResponse struct {
	Errors []AsaasErrorItem `json:"errors"`
}
