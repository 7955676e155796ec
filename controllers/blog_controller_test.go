package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soham2710/bulemo/models"
)

func TestBlogCreateRequiresAuth(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(router, http.MethodPost, "/blogs", map[string]string{
		"title":   "No Auth",
		"content": "body",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBlogCreateAndFetch(t *testing.T) {
	router, _ := newTestAPI(t)
	token := adminToken(t, router)

	w := doJSON(router, http.MethodPost, "/blogs", map[string]interface{}{
		"title":         "Digital Transformation Roadmap",
		"content":       "## Heading\n\nBody text.",
		"excerpt":       "A short summary.",
		"status":        "published",
		"featuredImage": "/uploads/roadmap.png",
		"tags":          []string{"strategy", "cloud"},
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	require.True(t, env.Success)

	var created struct {
		ID   uint   `json:"id"`
		Slug string `json:"slug"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "digital-transformation-roadmap", created.Slug)
	require.NotZero(t, created.ID)

	// Fetch by slug, unauthenticated.
	w = doJSON(router, http.MethodGet, "/blogs/digital-transformation-roadmap", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var post models.BlogPost
	env = decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &post))
	assert.Equal(t, created.ID, post.ID)
	assert.Equal(t, "admin", post.Author, "author comes from the session identity")

	// Fetch by id too.
	w = doJSON(router, http.MethodGet, fmt.Sprintf("/blogs/%d", created.ID), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBlogCreateValidationAndDuplicate(t *testing.T) {
	router, _ := newTestAPI(t)
	token := adminToken(t, router)

	w := doJSON(router, http.MethodPost, "/blogs", map[string]string{"title": "Only Title"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/blogs", map[string]string{
		"title":   "Unique Insights",
		"content": "body",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate slug answers 400, not 409 — the contract existing clients rely on.
	w = doJSON(router, http.MethodPost, "/blogs", map[string]string{
		"title":   "Unique   Insights!",
		"content": "other body",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "A blog with this title already exists", env.Message)
}

func TestBlogDraftHiddenFromPublicList(t *testing.T) {
	router, _ := newTestAPI(t)
	token := adminToken(t, router)

	w := doJSON(router, http.MethodPost, "/blogs", map[string]string{
		"title":   "Hidden Draft",
		"content": "body",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	// Public list: empty. Draft detail: 404 (not 403 — existence stays hidden).
	w = doJSON(router, http.MethodGet, "/blogs", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Pagination)
	assert.EqualValues(t, 0, env.Pagination.Total)

	w = doJSON(router, http.MethodGet, "/blogs/hidden-draft", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Admin sees it in both places.
	w = doJSON(router, http.MethodGet, "/blogs", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	env = decodeEnvelope(t, w)
	require.NotNil(t, env.Pagination)
	assert.EqualValues(t, 1, env.Pagination.Total)

	w = doJSON(router, http.MethodGet, "/blogs/hidden-draft", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBlogListPaginationEnvelope(t *testing.T) {
	router, _ := newTestAPI(t)
	token := adminToken(t, router)

	for i := 0; i < 12; i++ {
		w := doJSON(router, http.MethodPost, "/blogs", map[string]string{
			"title":   fmt.Sprintf("Published Piece %d", i),
			"content": "body",
			"status":  "published",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(router, http.MethodGet, "/blogs?page=2&limit=5", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Pagination)
	assert.EqualValues(t, 12, env.Pagination.Total)
	assert.Equal(t, 2, env.Pagination.Page)
	assert.Equal(t, 5, env.Pagination.Limit)
	assert.Equal(t, 3, env.Pagination.TotalPages)

	// Non-numeric parameters fall back to defaults.
	w = doJSON(router, http.MethodGet, "/blogs?page=abc&limit=xyz", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	env = decodeEnvelope(t, w)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 1, env.Pagination.Page)
	assert.Equal(t, 10, env.Pagination.Limit)
}

func TestBlogUpdateAndDelete(t *testing.T) {
	router, _ := newTestAPI(t)
	token := adminToken(t, router)

	w := doJSON(router, http.MethodPost, "/blogs", map[string]string{
		"title":   "Before Rename",
		"content": "body",
		"status":  "published",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	// Update recomputes the slug.
	w = doJSON(router, http.MethodPut, fmt.Sprintf("/blogs/%d", created.ID), map[string]string{
		"title": "After Rename",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	env = decodeEnvelope(t, w)
	var updated struct {
		Slug string `json:"slug"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "after-rename", updated.Slug)

	// Invalid ids are 400, unknown ids 404.
	w = doJSON(router, http.MethodPut, "/blogs/not-a-number", map[string]string{"title": "X"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(router, http.MethodPut, "/blogs/99999", map[string]string{"title": "X"}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodDelete, "/blogs/not-a-number", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/blogs/%d", created.ID), nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/blogs/%d", created.ID), nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBlogWritesRejectNonAdminToken(t *testing.T) {
	router, _ := newTestAPI(t)

	w := doJSON(router, http.MethodPut, "/blogs/1", map[string]string{"title": "X"}, "invalid-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodDelete, "/blogs/1", nil, "invalid-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
