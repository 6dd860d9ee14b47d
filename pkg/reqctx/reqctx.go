package reqctx

import "context"

type ctxKey int

const (
	credentialKey ctxKey = iota
	requestIDKey
)

// WithCredential сохраняет непрозрачный заголовок Authorization входящего запроса
func WithCredential(ctx context.Context, credential string) context.Context {
	return context.WithValue(ctx, credentialKey, credential)
}

// Credential возвращает сохраненный заголовок Authorization или пустую строку
func Credential(ctx context.Context) string {
	v, _ := ctx.Value(credentialKey).(string)
	return v
}

// WithRequestID сохраняет идентификатор запроса
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID возвращает идентификатор запроса или пустую строку
func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)
	return v
}
