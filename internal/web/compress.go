package web

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// newCompressor returns chi's compression middleware with zstd and gzip
// encoders from klauspost/compress. zstd is preferred when the client
// accepts both.
func newCompressor(level int) func(http.Handler) http.Handler {
	c := middleware.NewCompressor(level)
	c.SetEncoder("gzip", func(w io.Writer, level int) io.Writer {
		gw, err := gzip.NewWriterLevel(w, level)
		if err != nil {
			slog.Error("gzip encoder", "level", level, "error", err)
			return nil
		}
		return gw
	})
	c.SetEncoder("zstd", func(w io.Writer, level int) io.Writer {
		zw, err := zstd.NewWriter(w,
			zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
			zstd.WithEncoderConcurrency(1),
		)
		if err != nil {
			slog.Error("zstd encoder", "level", level, "error", err)
			return nil
		}
		return zw
	})
	return c.Handler
}
