package middleware

import (
	"net/http"
	"sort"
	"strings"

	"gitea.com/go-chi/session"
	"github.com/jpkuehn/S3.Forms/userctx"
	"github.com/rs/zerolog"
)

// ClientInfo adds the submitting client's IP address, culture and member key to the request context.
// It must run after session.Sessioner.
func ClientInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := userctx.SetClientIP(r.Context(), getIPAddress(r))
		if culture := getCulture(r); culture != "" {
			ctx = userctx.SetCulture(ctx, culture)
		}
		if member, ok := session.GetSession(r).Get("user_id").(string); ok {
			ctx = userctx.SetMemberKey(ctx, member)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestLogger logs all POST/PUT/DELETE requests.
// Only the names of posted fields are logged, never their values.
func RequestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Only log mutation operations
			if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodDelete {
				logger.Info().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("ip", getIPAddress(r)).
					Str("user_agent", r.UserAgent()).
					Str("user_id", userctx.GetUserID(r.Context())).
					Str("content_type", r.Header.Get("Content-Type")).
					Msg("Request")
			}

			next.ServeHTTP(w, r)

			if fields := postedFieldNames(r); len(fields) > 0 {
				logger.Debug().Str("path", r.URL.Path).Strs("fields", fields).Msg("Posted fields")
			}
		})
	}
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr
	ip := r.RemoteAddr
	// Remove port if present
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return strings.Trim(ip, "[]")
}

// getCulture returns the first language tag of the Accept-Language header
func getCulture(r *http.Request) string {
	header := r.Header.Get("Accept-Language")
	if header == "" {
		return ""
	}
	first := strings.Split(header, ",")[0]
	tag := strings.TrimSpace(strings.Split(first, ";")[0])
	if tag == "*" {
		return ""
	}
	return tag
}

// postedFieldNames lists the names of fields parsed by the handler
func postedFieldNames(r *http.Request) []string {
	seen := make(map[string]bool)
	for key := range r.PostForm {
		seen[key] = true
	}
	if r.MultipartForm != nil {
		for key := range r.MultipartForm.File {
			seen[key] = true
		}
	}
	names := make([]string, 0, len(seen))
	for key := range seen {
		names = append(names, key)
	}
	sort.Strings(names)
	return names
}
