package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		SnapshotStore: SnapshotStore{Driver: DriverPostgres, PageSize: 1000},
		Auth:          Auth{Enabled: true, Secret: "segredo"},
		Dashboard:     Dashboard{DefaultWindowDays: 28, DefaultPageSize: 20},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "configuração padrão",
			mutate: func(c *Config) {},
		},
		{
			name:    "page size zero",
			mutate:  func(c *Config) { c.SnapshotStore.PageSize = 0 },
			wantErr: "SNAPSHOT_STORE_PAGE_SIZE",
		},
		{
			name:    "driver desconhecido",
			mutate:  func(c *Config) { c.SnapshotStore.Driver = "mongo" },
			wantErr: "SNAPSHOT_STORE_DRIVER",
		},
		{
			name:    "driver hosted sem URL",
			mutate:  func(c *Config) { c.SnapshotStore.Driver = DriverHosted },
			wantErr: "HOSTED_STORE_URL",
		},
		{
			name: "driver hosted com URL",
			mutate: func(c *Config) {
				c.SnapshotStore.Driver = DriverHosted
				c.Hosted.URL = "https://store.example.com"
			},
		},
		{
			name:    "auth habilitado sem segredo",
			mutate:  func(c *Config) { c.Auth.Secret = "" },
			wantErr: "AUTH_SECRET",
		},
		{
			name: "auth desabilitado dispensa segredo",
			mutate: func(c *Config) {
				c.Auth.Enabled = false
				c.Auth.Secret = ""
			},
		},
		{
			name:    "janela padrão fora das permitidas",
			mutate:  func(c *Config) { c.Dashboard.DefaultWindowDays = 30 },
			wantErr: "DASHBOARD_DEFAULT_WINDOW_DAYS",
		},
		{
			name:    "page size do dashboard negativo",
			mutate:  func(c *Config) { c.Dashboard.DefaultPageSize = -1 },
			wantErr: "DASHBOARD_DEFAULT_PAGE_SIZE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfig_ValidateAcumulaErros(t *testing.T) {
	cfg := validConfig()
	cfg.SnapshotStore.PageSize = 0
	cfg.Auth.Secret = ""

	err := cfg.Validate()

	assert.ErrorContains(t, err, "SNAPSHOT_STORE_PAGE_SIZE")
	assert.ErrorContains(t, err, "AUTH_SECRET")
}
