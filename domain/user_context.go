package domain

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// UserContext is the authenticated caller attached to a request.
type UserContext struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}

// コンテキストキー
type contextKey string

const UserContextKey contextKey = "user_context"

func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(UserContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, fmt.Errorf("user context not found")
	}
	if user.UserID == uuid.Nil {
		return nil, fmt.Errorf("invalid user context")
	}
	return user, nil
}

func SetUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}
