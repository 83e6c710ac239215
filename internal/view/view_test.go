package view

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dootrec/internal/dto/request"
	"dootrec/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New("DootRec", zap.NewNop())
	require.NoError(t, err)
	r.now = func() time.Time { return time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC) }
	return r
}

func TestNew_ParsesEveryPage(t *testing.T) {
	r := newTestRenderer(t)

	for _, name := range []string{
		PageHome, PageExplore, PageGenres, PageCommunity, PageProfile,
		PageReview, PageReviewForm, PageWatchlist, PageNotFound,
	} {
		assert.Contains(t, r.pages, name)
	}
	assert.NotContains(t, r.pages, "layout")
}

func TestRender_LayoutAndToast(t *testing.T) {
	r := newTestRenderer(t)
	rec := httptest.NewRecorder()

	r.Render(rec, http.StatusNotFound, PageNotFound, Page{
		Title:   "Not found",
		Active:  PageReview,
		Toast:   response.NewErrorToast("Missing Information", "Please enter a movie title."),
		Content: NotFoundView{Message: "Review not found.", BackHref: "/", BackLabel: "Back to home"},
	})

	body := rec.Body.String()
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, "Review not found.")
	assert.Contains(t, body, "&copy; 2025 DootRec. All rights reserved.")
	assert.Contains(t, body, `class="toast destructive"`)
	assert.Contains(t, body, "Missing Information")
	for _, item := range Nav {
		assert.Contains(t, body, `href="`+item.Href+`"`)
	}
}

func TestRender_ReviewFormShowsInlineErrors(t *testing.T) {
	r := newTestRenderer(t)
	rec := httptest.NewRecorder()

	r.Render(rec, http.StatusUnprocessableEntity, PageReviewForm, Page{
		Content: ReviewFormView{
			Form: request.SubmitReviewRequest{MovieTitle: "Arrival", Genres: []string{"Sci-Fi"}},
			Errors: map[string]string{
				"ott_link": "OTT link is required",
			},
		},
	})

	body := rec.Body.String()
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, body, `value="Arrival"`)
	assert.Contains(t, body, "OTT link is required")
	assert.Contains(t, body, `name="genres" value="Sci-Fi"`)
	assert.NotContains(t, body, "Movie title is required")
}

func TestRender_EscapesContent(t *testing.T) {
	r := newTestRenderer(t)
	rec := httptest.NewRecorder()

	r.Render(rec, http.StatusOK, PageNotFound, Page{
		Content: NotFoundView{Message: "<script>alert(1)</script>", BackHref: "/"},
	})

	assert.NotContains(t, rec.Body.String(), "<script>alert(1)</script>")
	assert.Contains(t, rec.Body.String(), "&lt;script&gt;")
}

func TestRender_UnknownPage(t *testing.T) {
	r := newTestRenderer(t)
	rec := httptest.NewRecorder()

	r.Render(rec, http.StatusOK, "missing", Page{})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
