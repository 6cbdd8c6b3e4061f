package utils

import "context"

type contextKey string

const (
	userIdKey        contextKey = "userId"
	usernameKey      contextKey = "username"
	correlationIdKey contextKey = "correlationId"
)

func SetUserIdInContext(ctx context.Context, userId int) context.Context {
	return context.WithValue(ctx, userIdKey, userId)
}

func GetUserIdFromContext(ctx context.Context) (int, bool) {
	v, ok := ctx.Value(userIdKey).(int)
	return v, ok
}

func SetUsernameInContext(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

func GetUsernameFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(usernameKey).(string)
	return v, ok
}

func SetCorrelationIdInContext(ctx context.Context, correlationId string) context.Context {
	return context.WithValue(ctx, correlationIdKey, correlationId)
}

func GetCorrelationIdFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(correlationIdKey).(string)
	return v, ok
}
