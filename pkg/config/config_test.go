package config_test

import (
	"flag"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/caseboard/caseboard-backend/pkg/config"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

var update = flag.Bool("update", false, "update golden files")

func newFakeConfig() config.Config {
	return config.Config{
		Server: config.Server{
			Hostname: "localhost",
			Address:  "127.0.0.1",
			Port:     "8080",
		},
		Postgres: config.Postgres{
			UserName:     "caseboard",
			Password:     "fake_password",
			Host:         "http://localhost",
			Port:         "5432",
			DatabaseName: "caseboard",
			SSLMode:      "disable",
			Configuration: config.PostgresConfiguration{
				MaxIdleConnections: 10,
				MaxOpenConnections: 5,
			},
		},
		OpenSearch: config.OpenSearch{
			Addresses: []string{"http://localhost:9200"},
			Username:  "admin",
			Password:  "fake_password",
		},
		Neo4j: config.Neo4j{
			URI:      "bolt://localhost:7687",
			Username: "neo4j",
			Password: "fake_password",
			Enabled:  true,
		},
		Redis: config.Redis{
			Address:  "localhost:6379",
			Password: "fake_password",
			DB:       0,
		},
		Upload: config.Upload{
			Enabled:              true,
			Folder:               "/var/lib/caseboard/upload",
			IngestTimeoutSeconds: 360,
		},
		Cookies: config.Cookies{
			Session: config.CookieSettings{
				Name:     "session",
				MaxAge:   3600,
				Path:     "/",
				Domain:   "localhost",
				SameSite: "Lax",
				Secure:   false,
				HttpOnly: true,
			},
		},
		LogLevel: "info",
		Debug:    false,
	}
}

func updateGoldenFiles(t *testing.T, filePath string, cfg config.Config) []byte {
	t.Helper()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Errorf("marshal config: %v", err)
	}

	err = os.WriteFile(filePath, data, 0o600)
	if err != nil {
		t.Errorf("write golden file: %v", err)
	}

	return data
}

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		config    config.Config
		expectErr bool
	}{
		{
			name:      "Valid config",
			config:    newFakeConfig(),
			expectErr: false,
		},
		{
			name: "Missing postgres user",
			config: func() config.Config {
				cfg := newFakeConfig()
				cfg.Postgres.UserName = ""

				return cfg
			}(),
			expectErr: true,
		},
		{
			name: "Invalid cookie same site",
			config: func() config.Config {
				cfg := newFakeConfig()
				cfg.Cookies.Session.SameSite = "whenever"

				return cfg
			}(),
			expectErr: true,
		},
		{
			name: "Disabled upload needs no folder",
			config: func() config.Config {
				cfg := newFakeConfig()
				cfg.Upload = config.Upload{Enabled: false}

				return cfg
			}(),
			expectErr: false,
		},
		{
			name: "Enabled upload needs a folder",
			config: func() config.Config {
				cfg := newFakeConfig()
				cfg.Upload.Folder = ""

				return cfg
			}(),
			expectErr: true,
		},
		{
			name: "Disabled neo4j needs no uri",
			config: func() config.Config {
				cfg := newFakeConfig()
				cfg.Neo4j = config.Neo4j{Enabled: false}

				return cfg
			}(),
			expectErr: false,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if err != nil && !tc.expectErr {
				t.Errorf("unexpected error: %v", err)
			}

			if err == nil && tc.expectErr {
				t.Errorf("expected error, got none")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	if *update {
		t.Log("Updating golden files")
		updateGoldenFiles(t, "testdata/config.yaml", newFakeConfig())
		t.Log("Done updating golden files")

		return
	}

	testCases := []struct {
		name      string
		config    string
		path      string
		envPrefix string
		loader    config.Loader
		binder    config.Binder
		envs      map[string]string
		expect    config.Config
		expectErr bool
	}{
		{
			name:      "Standard config",
			config:    "config",
			path:      "testdata",
			loader:    config.NewFileSystemLoader(),
			expect:    newFakeConfig(),
			expectErr: false,
		},
		{
			name:      "Standard config with env prefix overrides",
			config:    "config",
			path:      "testdata",
			envPrefix: "caseboard",
			loader:    config.NewFileSystemLoader(),
			expect: func() config.Config {
				cfg := newFakeConfig()
				cfg.Server.Address = "example.com"

				return cfg
			}(),
			envs: map[string]string{
				"CASEBOARD_SERVER_ADDRESS": "example.com",
			},
		},
		{
			name:      "Standard config with env overrides and binder",
			config:    "config",
			path:      "testdata",
			envPrefix: "caseboard",
			loader:    config.NewFileSystemLoader(),
			binder: config.NewEnvBinder(map[string]string{
				"SOME_RANDOM_DB_PASSWORD": "postgres.password",
			}),
			expect: func() config.Config {
				cfg := newFakeConfig()
				cfg.Postgres.Password = "from_the_environment"

				return cfg
			}(),
			envs: map[string]string{
				"SOME_RANDOM_DB_PASSWORD": "from_the_environment",
			},
		},
		{
			name:      "Missing config file",
			config:    "nosuchconfig",
			path:      "testdata",
			loader:    config.NewFileSystemLoader(),
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.envs {
				t.Setenv(k, v)
			}

			cfg, err := tc.loader.Load(tc.config, tc.path, tc.envPrefix, tc.binder)
			if err != nil && !tc.expectErr {
				t.Errorf("unexpected error: %v", err)
			}

			if err == nil && tc.expectErr {
				t.Errorf("expected error, got none")
			}

			if !tc.expectErr {
				if diff := cmp.Diff(tc.expect, cfg); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func getWorkingDir(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Errorf("get working dir: %v", err)
	}

	return wd
}

func TestProcessConfigPath(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		path      string
		expect    config.FileParts
		expectErr bool
	}{
		{
			name: "Valid config path",
			path: "testdata/config.yaml",
			expect: config.FileParts{
				FileName: "config",
				Path:     filepath.Join(getWorkingDir(t), "testdata"),
			},
			expectErr: false,
		},
		{
			name:      "Wrong extension",
			path:      "testdata/config.json",
			expectErr: true,
		},
		{
			name:      "No extension",
			path:      "testdata/config",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			parts, err := config.ProcessConfigPath(tc.path)
			if err != nil && !tc.expectErr {
				t.Errorf("unexpected error: %v", err)
			}

			if err == nil && tc.expectErr {
				t.Errorf("expected error, got none")
			}

			if !tc.expectErr {
				if diff := cmp.Diff(tc.expect, parts); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestCookieSettingsGetSameSite(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		sameSite string
		expect   http.SameSite
	}{
		{
			name:     "Strict",
			sameSite: "Strict",
			expect:   http.SameSiteStrictMode,
		},
		{
			name:     "Lax",
			sameSite: "Lax",
			expect:   http.SameSiteLaxMode,
		},
		{
			name:     "None",
			sameSite: "None",
			expect:   http.SameSiteNoneMode,
		},
		{
			name:     "Unknown falls back to the browser default",
			sameSite: "whenever",
			expect:   http.SameSiteDefaultMode,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			settings := config.CookieSettings{SameSite: tc.sameSite}
			if got := settings.GetSameSite(); got != tc.expect {
				t.Errorf("expected %v, got %v", tc.expect, got)
			}
		})
	}
}
