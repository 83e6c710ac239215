package middleware

import (
	"net/http"

	"dootrec/pkg/utils"

	"go.uber.org/zap"
)

// Viewer attaches the configured viewer id to every request. There is no
// sign-in; the viewer is whichever fixture user the config names.
func Viewer(viewerID string, logger *zap.Logger) func(http.Handler) http.Handler {
	if viewerID == "" {
		logger.Warn("No viewer configured, pages render as anonymous")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if viewerID == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := utils.SetViewerContext(r.Context(), viewerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
