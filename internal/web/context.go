package web

import (
	"context"
	"net/http"

	"github.com/JonMunkholm/fancyfont/internal/core"
	mw "github.com/JonMunkholm/fancyfont/internal/web/middleware"
)

// WithRequestMetadata adds the client IP and conversion source to ctx for
// conversion logging.
func WithRequestMetadata(ctx context.Context, r *http.Request, source string) context.Context {
	ctx = core.ContextWithClientIP(ctx, mw.ClientIP(r)) // resolved by TrustedRealIP
	return core.ContextWithSource(ctx, source)
}
