package userctx

import "context"

// Context key type
type contextKey string

const clientIPKey contextKey = "client_ip"
const memberKeyKey contextKey = "member_key"
const cultureKey contextKey = "culture"
const UserIDKey contextKey = "user_id"

// SetClientIP adds the submitting client's IP address to request context
func SetClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// GetClientIP retrieves the client IP from request context
func GetClientIP(ctx context.Context) string {
	ip, ok := ctx.Value(clientIPKey).(string)
	if !ok {
		return ""
	}
	return ip
}

// SetMemberKey adds the logged-in member's key to request context
func SetMemberKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, memberKeyKey, key)
}

// GetMemberKey retrieves the member key from request context
func GetMemberKey(ctx context.Context) string {
	key, ok := ctx.Value(memberKeyKey).(string)
	if !ok {
		return ""
	}
	return key
}

// SetCulture adds the request culture to context
func SetCulture(ctx context.Context, culture string) context.Context {
	return context.WithValue(ctx, cultureKey, culture)
}

// GetCulture retrieves the request culture, defaulting to en-US
func GetCulture(ctx context.Context) string {
	culture, ok := ctx.Value(cultureKey).(string)
	if !ok || culture == "" {
		return "en-US"
	}
	return culture
}

// SetUserID adds the backoffice user ID to request context
func SetUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, UserIDKey, id)
}

// GetUserID retrieves the backoffice user ID from request context
func GetUserID(ctx context.Context) string {
	if userID := ctx.Value(UserIDKey); userID != nil {
		if id, ok := userID.(string); ok {
			return id
		}
	}
	return ""
}
