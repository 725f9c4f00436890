package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"
	"github.com/jpkuehn/S3.Forms/userctx"
)

// RequireAuth ensures the backoffice user is authenticated
// If not authenticated, redirects to /login and stores the intended destination
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		userID, ok := sess.Get("user_id").(string)

		if !ok || userID == "" {
			// Store the intended destination for redirect after login
			sess.Set("redirect_after_login", r.URL.Path)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		// Add user ID to request context for use in handlers
		ctx := userctx.SetUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
