package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"asaas-integration-service/internal/config"
	"asaas-integration-service/internal/model"

	"github.com/shopspring/decimal"
)

type AsaasClient interface {
	CreateCustomer(ctx context.Context, name, cpfCnpj, email, phone string) (*model.AsaasCustomer, error)
	CreatePixCharge(ctx context.Context, customerID string, value decimal.Decimal, description, externalReference string) (*model.AsaasCharge, error)
	GetPixQrCode(ctx context.Context, chargeID string) (*model.AsaasPixQrCode, error)
	GetCharge(ctx context.Context, chargeID string) (*model.AsaasCharge, error)
}

// GatewayError carries the upstream status code and raw body of a
// non-success Asaas response so handlers can surface the detail.
type GatewayError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("asaas %s failed: status=%d body=%s", e.Op, e.StatusCode, e.Body)
}

type asaasClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	apiKey     string
}

func NewAsaasClient(asaasCfg *config.Asaas) AsaasClient {
	return &asaasClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: asaasCfg.BaseURL(),
		apiKey:     asaasCfg.APIKey(),
	}
}

func (c *asaasClientImpl) CreateCustomer(ctx context.Context, name, cpfCnpj, email, phone string) (*model.AsaasCustomer, error) {
	payload := map[string]string{
		"name":        name,
		"cpfCnpj":     cpfCnpj,
		"email":       email,
		"mobilePhone": phone,
	}

	var customer model.AsaasCustomer
	if err := c.do(ctx, http.MethodPost, "/customers", payload, "create customer", &customer); err != nil {
		return nil, err
	}
	if customer.ID == "" {
		return nil, fmt.Errorf("asaas create customer: response missing customer id")
	}

	return &customer, nil
}

func (c *asaasClientImpl) CreatePixCharge(ctx context.Context, customerID string, value decimal.Decimal, description, externalReference string) (*model.AsaasCharge, error) {
	payload := map[string]any{
		"customer":    customerID,
		"billingType": "PIX",
		// json.Number keeps the exact decimal text while still encoding as
		// a JSON number, which is what the gateway expects
		"value":             json.Number(value.String()),
		"description":       description,
		"externalReference": externalReference,
		"dueDate":           time.Now().Format("2006-01-02"),
	}

	var charge model.AsaasCharge
	if err := c.do(ctx, http.MethodPost, "/payments", payload, "create charge", &charge); err != nil {
		return nil, err
	}
	if charge.ID == "" || charge.Status == "" {
		return nil, fmt.Errorf("asaas create charge: response missing id or status")
	}

	return &charge, nil
}

func (c *asaasClientImpl) GetPixQrCode(ctx context.Context, chargeID string) (*model.AsaasPixQrCode, error) {
	var qrCode model.AsaasPixQrCode
	path := fmt.Sprintf("/payments/%s/pixQrCode", chargeID)
	if err := c.do(ctx, http.MethodGet, path, nil, "get pix qr code", &qrCode); err != nil {
		return nil, err
	}

	return &qrCode, nil
}

func (c *asaasClientImpl) GetCharge(ctx context.Context, chargeID string) (*model.AsaasCharge, error) {
	var charge model.AsaasCharge
	path := fmt.Sprintf("/payments/%s", chargeID)
	if err := c.do(ctx, http.MethodGet, path, nil, "get charge", &charge); err != nil {
		return nil, err
	}
	if charge.Status == "" {
		return nil, fmt.Errorf("asaas get charge: response missing status")
	}

	return &charge, nil
}

func (c *asaasClientImpl) do(ctx context.Context, method, path string, payload any, op string, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal %s payload: %w", op, err)
		}
		body = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseApiURL+path, body)
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("access_token", c.apiKey)
	req.Header.Set("Cache-Control", "no-cache, no-store, must-revalidate")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return &GatewayError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       string(b),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}

	return nil
}
