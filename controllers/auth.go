package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"gitea.com/go-chi/session"
	"github.com/jpkuehn/S3.Forms/authenticator"
	"github.com/rs/zerolog"
)

type AuthController struct {
	logger zerolog.Logger
}

func NewAuthController(logger zerolog.Logger) *AuthController {
	return &AuthController{logger: logger}
}

// Login initiates the authentication process
func (ac *AuthController) Login(auth authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Generate random state
		state, err := generateRandomState()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		// Save the state in the session to validate in callback
		sess := session.GetSession(r)
		sess.Set("state", state)

		http.Redirect(w, r, auth.GetAuthURL(state), http.StatusTemporaryRedirect)
	}
}

// Callback handles the callback from the identity provider
func (ac *AuthController) Callback(auth authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Get session
		sess := session.GetSession(r)

		// Verify state
		storedState, ok := sess.Get("state").(string)
		if !ok {
			http.Error(w, "State not found in session", http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("state") != storedState {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			return
		}

		// Exchange the code for a token
		token, err := auth.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
		if err != nil {
			http.Error(w, "Failed to exchange authorization code for a token: "+err.Error(), http.StatusUnauthorized)
			return
		}

		// Verify the ID token and extract profile information
		claims, err := auth.GetClaims(r.Context(), token)
		if err != nil {
			http.Error(w, "Failed to verify ID Token: "+err.Error(), http.StatusInternalServerError)
			return
		}

		sub := claims.Subject()
		if sub == "" {
			http.Error(w, "ID token has no subject", http.StatusUnauthorized)
			return
		}
		sess.Set("user_id", sub)
		sess.Set("user_nickname", claims.DisplayName())

		// Clear the state from session
		sess.Delete("state")

		ac.logger.Info().Str("user_id", sub).Msg("Backoffice user logged in")

		redirect := "/backoffice/forms"
		if target, ok := sess.Get("redirect_after_login").(string); ok && target != "" {
			redirect = target
			sess.Delete("redirect_after_login")
		}
		http.Redirect(w, r, redirect, http.StatusSeeOther)
	}
}

// Logout clears the backoffice session
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	sess.Delete("user_id")
	sess.Delete("user_nickname")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
