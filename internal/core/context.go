package core

import "context"

type contextKey string

const (
	ctxKeyClientIP contextKey = "client_ip"
	ctxKeySource   contextKey = "source"
)

// Conversion sources recorded in logs.
const (
	SourceWeb = "web"
	SourceAPI = "api"
	SourceCLI = "cli"
)

// ContextWithClientIP adds the client IP to context for conversion logging.
func ContextWithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ctxKeyClientIP, ip)
}

// ContextWithSource records which surface (web form, JSON API, CLI)
// requested a conversion.
func ContextWithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, ctxKeySource, source)
}

// ClientIPFromContext extracts the client IP from context.
func ClientIPFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyClientIP).(string); ok {
		return v
	}
	return ""
}

// SourceFromContext extracts the conversion source from context.
func SourceFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeySource).(string); ok {
		return v
	}
	return ""
}
