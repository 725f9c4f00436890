package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpkuehn/S3.Forms/authenticator"
)

type fakeProvider struct {
	claims authenticator.Claims
	err    error
}

func (p *fakeProvider) GetAuthURL(state string) string {
	return "https://id.example.com/authorize?state=" + url.QueryEscape(state)
}

func (p *fakeProvider) ExchangeCode(_ context.Context, code string) (*authenticator.Token, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &authenticator.Token{AccessToken: "access-" + code, IDToken: "id-token"}, nil
}

func (p *fakeProvider) GetClaims(context.Context, *authenticator.Token) (authenticator.Claims, error) {
	return p.claims, nil
}

func newAuthRouter(t *testing.T, provider authenticator.Provider) *chi.Mux {
	sessionHandler, err := session.Sessioner(session.Options{Provider: "memory", CookieName: "test_session"})
	require.NoError(t, err)

	c := NewAuthController(zerolog.Nop())
	r := chi.NewRouter()
	r.Use(sessionHandler)
	r.Get("/login", c.Login(provider))
	r.Get("/callback", c.Callback(provider))
	r.Get("/logout", c.Logout)
	r.Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
		if id, ok := session.GetSession(r).Get("user_id").(string); ok {
			w.Write([]byte(id))
		}
	})
	return r
}

// login starts a login and returns the session cookies and the issued state
func login(t *testing.T, r http.Handler) ([]*http.Cookie, string) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)

	location, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	return w.Result().Cookies(), location.Query().Get("state")
}

func serveWithCookies(r http.Handler, target string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginCallback(t *testing.T) {
	r := newAuthRouter(t, &fakeProvider{claims: authenticator.Claims{"sub": "oidc|42", "name": "Ada"}})

	cookies, state := login(t, r)
	require.NotEmpty(t, state)

	w := serveWithCookies(r, "/callback?code=abc&state="+url.QueryEscape(state), cookies)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/backoffice/forms", w.Header().Get("Location"))

	w = serveWithCookies(r, "/whoami", cookies)
	assert.Equal(t, "oidc|42", w.Body.String())

	w = serveWithCookies(r, "/logout", cookies)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	w = serveWithCookies(r, "/whoami", cookies)
	assert.Empty(t, w.Body.String())
}

func TestCallbackRejectsStateMismatch(t *testing.T) {
	r := newAuthRouter(t, &fakeProvider{claims: authenticator.Claims{"sub": "oidc|42"}})

	cookies, _ := login(t, r)
	w := serveWithCookies(r, "/callback?code=abc&state=forged", cookies)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCallbackWithoutLogin(t *testing.T) {
	r := newAuthRouter(t, &fakeProvider{})

	w := serveWithCookies(r, "/callback?code=abc&state=x", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCallbackExchangeFailure(t *testing.T) {
	r := newAuthRouter(t, &fakeProvider{err: errors.New("invalid_grant")})

	cookies, state := login(t, r)
	w := serveWithCookies(r, "/callback?code=abc&state="+url.QueryEscape(state), cookies)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCallbackWithoutSubject(t *testing.T) {
	r := newAuthRouter(t, &fakeProvider{claims: authenticator.Claims{"name": "Ada"}})

	cookies, state := login(t, r)
	w := serveWithCookies(r, "/callback?code=abc&state="+url.QueryEscape(state), cookies)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
