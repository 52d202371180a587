package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	DatabaseURL string `env:"DATABASE_URL"`

	Asaas Asaas `envPrefix:"ASAAS_"`
}

type Asaas struct {
	UseProduction bool `env:"USE_PRODUCTION" envDefault:"false"`

	// Environment-specific keys; APIKey falls back to SharedAPIKey when the
	// key for the selected environment is not set.
	SandboxAPIKey    string `env:"SANDBOX_API_KEY"`
	ProductionAPIKey string `env:"PRODUCTION_API_KEY"`
	SharedAPIKey     string `env:"API_KEY"`

	// Base URL overrides, mainly for pointing tests at a fake gateway.
	SandboxBaseURL    string `env:"SANDBOX_BASE_URL" envDefault:"https://sandbox.asaas.com/api/v3"`
	ProductionBaseURL string `env:"PRODUCTION_BASE_URL" envDefault:"https://api.asaas.com/v3"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

// APIKey resolves the key for the active environment, preferring the
// environment-specific key and falling back to the shared one.
func (a *Asaas) APIKey() string {
	key := a.SandboxAPIKey
	if a.UseProduction {
		key = a.ProductionAPIKey
	}
	if key == "" {
		key = a.SharedAPIKey
	}
	return key
}

func (a *Asaas) BaseURL() string {
	if a.UseProduction {
		return a.ProductionBaseURL
	}
	return a.SandboxBaseURL
}
