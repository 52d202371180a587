package config_test

import (
	"testing"

	"asaas-integration-service/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestAsaasAPIKeyResolution(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Asaas
		expected string
	}{
		{
			name:     "sandbox key preferred in sandbox",
			cfg:      config.Asaas{SandboxAPIKey: "sb-key", SharedAPIKey: "shared"},
			expected: "sb-key",
		},
		{
			name:     "production key preferred in production",
			cfg:      config.Asaas{UseProduction: true, ProductionAPIKey: "prod-key", SandboxAPIKey: "sb-key"},
			expected: "prod-key",
		},
		{
			name:     "falls back to shared key",
			cfg:      config.Asaas{SharedAPIKey: "shared"},
			expected: "shared",
		},
		{
			name:     "sandbox key never used in production",
			cfg:      config.Asaas{UseProduction: true, SandboxAPIKey: "sb-key", SharedAPIKey: "shared"},
			expected: "shared",
		},
		{
			name:     "empty when nothing configured",
			cfg:      config.Asaas{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.APIKey())
		})
	}
}

func TestAsaasBaseURL(t *testing.T) {
	cfg := config.Asaas{
		SandboxBaseURL:    "https://sandbox.asaas.com/api/v3",
		ProductionBaseURL: "https://api.asaas.com/v3",
	}

	assert.Equal(t, "https://sandbox.asaas.com/api/v3", cfg.BaseURL())

	cfg.UseProduction = true
	assert.Equal(t, "https://api.asaas.com/v3", cfg.BaseURL())
}
