package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./wayfarer.db" {
			t.Errorf("expected database path ./wayfarer.db, got %s", config.Database.Path)
		}

		if config.Server.Port != 3000 {
			t.Errorf("expected server port 3000, got %d", config.Server.Port)
		}

		if config.API.BaseURL != "https://api.wayfarer.app" {
			t.Errorf("expected API base URL https://api.wayfarer.app, got %s", config.API.BaseURL)
		}

		if config.Credentials.Identity.ClientID != "your_identity_client_id" {
			t.Errorf("expected identity client_id your_identity_client_id, got %s", config.Credentials.Identity.ClientID)
		}
	})

	t.Run("APIConfig Timeout", func(t *testing.T) {
		if (APIConfig{}).Timeout() != 15*time.Second {
			t.Error("expected zero timeout to default to 15s")
		}
		if (APIConfig{TimeoutSeconds: 30}).Timeout() != 30*time.Second {
			t.Error("expected configured timeout to be honored")
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("SaveConfig RoundTrip", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		config := DefaultConfig()
		config.API.BaseURL = "https://staging.wayfarer.app"
		config.Credentials.Identity.AccessToken = "abc123"

		if err := SaveConfig(configPath, config); err != nil {
			t.Fatalf("failed to save config: %v", err)
		}

		loaded, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load saved config: %v", err)
		}

		if loaded.API.BaseURL != "https://staging.wayfarer.app" {
			t.Errorf("expected saved base URL, got %s", loaded.API.BaseURL)
		}
		if loaded.Credentials.Identity.AccessToken != "abc123" {
			t.Errorf("expected saved access token, got %s", loaded.Credentials.Identity.AccessToken)
		}
	})

	t.Run("LoadConfig Missing File", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); !errors.Is(err, ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}
	})

	t.Run("LoadConfig Invalid TOML", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")
		if err := os.WriteFile(configPath, []byte("not [valid toml"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		if _, err := LoadConfig(configPath); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestIdentityConfig(t *testing.T) {
	t.Run("Token Absent", func(t *testing.T) {
		identity := IdentityConfig{}
		if identity.Token() != nil {
			t.Error("expected nil token when no credentials stored")
		}
	})

	t.Run("Token RoundTrip", func(t *testing.T) {
		expiry := time.Now().Add(time.Hour).Truncate(time.Second)
		identity := IdentityConfig{}

		err := identity.Update(&oauth2.Token{
			AccessToken:  "access",
			RefreshToken: "refresh",
			Expiry:       expiry,
		})
		if err != nil {
			t.Fatalf("failed to update identity config: %v", err)
		}

		token := identity.Token()
		if token == nil {
			t.Fatal("expected token to be present")
		}
		if token.AccessToken != "access" {
			t.Errorf("expected access token 'access', got %s", token.AccessToken)
		}
		if token.RefreshToken != "refresh" {
			t.Errorf("expected refresh token 'refresh', got %s", token.RefreshToken)
		}
		if !token.Expiry.Equal(expiry) {
			t.Errorf("expected expiry %v, got %v", expiry, token.Expiry)
		}
	})

	t.Run("Update Rejects Empty Token", func(t *testing.T) {
		identity := IdentityConfig{}
		if err := identity.Update(nil); err == nil {
			t.Error("expected error for nil token")
		}
		if err := identity.Update(&oauth2.Token{}); err == nil {
			t.Error("expected error for empty access token")
		}
	})

	t.Run("Update Keeps Refresh Token", func(t *testing.T) {
		identity := IdentityConfig{RefreshToken: "original"}
		if err := identity.Update(&oauth2.Token{AccessToken: "new"}); err != nil {
			t.Fatalf("failed to update identity config: %v", err)
		}
		if identity.RefreshToken != "original" {
			t.Errorf("expected refresh token to be preserved, got %s", identity.RefreshToken)
		}
	})

	t.Run("Forget", func(t *testing.T) {
		identity := IdentityConfig{AccessToken: "a", RefreshToken: "r", Expiry: "2026-01-01T00:00:00Z"}
		identity.Forget()
		if identity.Token() != nil {
			t.Error("expected no token after Forget")
		}
	})

	t.Run("OAuthConfig", func(t *testing.T) {
		identity := IdentityConfig{
			ClientID:    "id",
			RedirectURI: "http://localhost:3000/callback",
			AuthURL:     "https://id.example.com/authorize",
			TokenURL:    "https://id.example.com/token",
		}

		config := identity.OAuthConfig()
		if config.ClientID != "id" {
			t.Errorf("expected client id 'id', got %s", config.ClientID)
		}
		if config.Endpoint.AuthURL != "https://id.example.com/authorize" {
			t.Errorf("unexpected auth URL %s", config.Endpoint.AuthURL)
		}
	})
}
