package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/desertthunder/wayfarer/internal/server"
	"github.com/desertthunder/wayfarer/internal/shared"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

// AuthLogin runs the OAuth2 authorization code flow against the identity
// provider and stores the resulting tokens in the config file.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	identity := &r.config.Credentials.Identity

	if identity.ClientID == "" || identity.ClientSecret == "" {
		return fmt.Errorf("%w: set credentials.identity.client_id and client_secret in %s", shared.ErrMissingCredentials, configPath)
	}

	token, err := r.doOAuth(identity.OAuthConfig())
	if err != nil {
		return err
	}

	if err := identity.Update(token); err != nil {
		return fmt.Errorf("failed to store tokens: %w", err)
	}

	if err := shared.SaveConfig(configPath, r.config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	r.logger.Info("authentication successful")
	return r.writePlain("✓ Signed in\n")
}

// AuthStatus reports whether identity tokens are stored and still valid.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	token := r.config.Credentials.Identity.Token()
	if token == nil {
		r.writePlain("✗ Not signed in\n")
		return r.writePlain("Run 'wayfarer auth login' to authenticate.\n")
	}

	r.writePlain("✓ Signed in\n")
	if !token.Expiry.IsZero() {
		if token.Expiry.Before(time.Now()) {
			r.writePlain("Access token: expired %s (refreshed on next request)\n", token.Expiry.Format(time.RFC1123))
		} else {
			r.writePlain("Access token: valid until %s\n", token.Expiry.Format(time.RFC1123))
		}
	}

	if cache, err := r.openStore(); err == nil {
		if snapshot, err := cache.Load(); err == nil && snapshot.Profile != nil {
			r.writePlain("Profile: %s\n", snapshot.Profile.DisplayName())
		}
	}

	return nil
}

// AuthLogout discards stored tokens and clears the local snapshot cache.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	r.config.Credentials.Identity.Forget()
	if err := shared.SaveConfig(configPath, r.config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	cache, err := r.openStore()
	if err != nil {
		return err
	}
	if err := cache.Clear(); err != nil {
		return fmt.Errorf("failed to clear local cache: %w", err)
	}

	r.logger.Info("signed out")
	return r.writePlain("✓ Signed out and cleared local trip state\n")
}

// doOAuth executes the OAuth2 authorization flow with a local HTTP server
func (r *Runner) doOAuth(oauthConfig *oauth2.Config) (*oauth2.Token, error) {
	state, err := shared.GenerateState()
	if err != nil {
		return nil, fmt.Errorf("failed to generate state token: %w", err)
	}

	authURL := oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	oauthHandler := server.NewOAuthHandler(oauthConfig, state)
	router := server.NewBasicRouter()
	router.Use(server.Logging(r.logger))
	router.Handler(oauthHandler)

	serverAddr := fmt.Sprintf("%s:%d", r.config.Server.Host, r.config.Server.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("starting OAuth callback server at %v", serverAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	time.Sleep(100 * time.Millisecond)

	r.writePlain("→ Opening browser to sign in...\n")
	if err := shared.OpenBrowser(authURL); err != nil {
		r.logger.Warnf("failed to open browser automatically %v", err)
		r.writePlainln("⚠ Could not open browser automatically.")
		r.writePlain("Please open this URL in your browser:\n%s\n\n", authURL)
	}

	r.writePlain("→ Waiting for authorization (2 minute timeout)...\n")

	timeout := time.NewTimer(2 * time.Minute)
	defer timeout.Stop()

	var result server.OAuthResult

	select {
	case result = <-oauthHandler.Result():
		// Got result from callback
	case err := <-serverErrors:
		return nil, fmt.Errorf("server error: %w", err)
	case <-timeout.C:
		return nil, fmt.Errorf("%w: authorization timed out after 2 minutes", shared.ErrTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	if result.Error() != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, result.Error())
	}

	if result.Token == nil {
		return nil, fmt.Errorf("%w: no token received", shared.ErrAuthFailed)
	}

	return result.Token, nil
}
