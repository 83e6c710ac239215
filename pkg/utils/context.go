package utils

import (
	"context"
)

type contextKey string

const (
	ViewerIDKey contextKey = "viewer_id"
)

// GetViewerIDFromContext returns the id of the user browsing the site.
func GetViewerIDFromContext(ctx context.Context) (string, bool) {
	viewerVal := ctx.Value(ViewerIDKey)
	if viewerVal == nil {
		return "", false
	}

	viewerID, ok := viewerVal.(string)
	if !ok || viewerID == "" {
		return "", false
	}

	return viewerID, true
}

func SetViewerContext(ctx context.Context, viewerID string) context.Context {
	return context.WithValue(ctx, ViewerIDKey, viewerID)
}
