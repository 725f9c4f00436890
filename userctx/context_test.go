package userctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestValues(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", GetClientIP(ctx))
	assert.Equal(t, "", GetMemberKey(ctx))
	assert.Equal(t, "en-US", GetCulture(ctx))
	assert.Equal(t, "", GetUserID(ctx))

	ctx = SetClientIP(ctx, "192.0.2.10")
	ctx = SetMemberKey(ctx, "member-1")
	ctx = SetCulture(ctx, "nl-NL")
	ctx = SetUserID(ctx, "oidc|42")

	assert.Equal(t, "192.0.2.10", GetClientIP(ctx))
	assert.Equal(t, "member-1", GetMemberKey(ctx))
	assert.Equal(t, "nl-NL", GetCulture(ctx))
	assert.Equal(t, "oidc|42", GetUserID(ctx))
}
