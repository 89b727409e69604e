package store

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendor-booking-portal/internal/models"
)

func newCookieStore() *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte("test-secret-key-with-32-bytes!!"))
	store.Options = &sessions.Options{Path: "/", MaxAge: 3600, HttpOnly: true}
	return store
}

// carryCookies returns a request bearing the cookies set on rr
func carryCookies(rr *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rr.Result().Cookies() {
		req.AddCookie(cookie)
	}
	return req
}

func TestSessionWorkspaceStore_RoundTrip(t *testing.T) {
	st := NewSessionWorkspaceStore(newCookieStore(), "portal_session")

	ws, err := st.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, models.FirstStep, ws.Step)
	assert.Equal(t, models.ModeSingle, ws.Cart.Mode)

	id := 11
	ws.Draft = &models.Product{ID: &id, Name: "Sunset Jazz", Kind: models.KindEvent}
	ws.Kind = models.KindEvent
	ws.Step = 5
	ws.Cart.Mode = models.ModeBulk
	ws.Cart.ProductID = 11
	ws.Cart.Items = append(ws.Cart.Items, models.CartItem{ID: "line-1", Quantity: 2, Total: 2100})

	rr := httptest.NewRecorder()
	require.NoError(t, st.Save(rr, httptest.NewRequest(http.MethodPost, "/", nil), ws))

	loaded, err := st.Load(carryCookies(rr))
	require.NoError(t, err)
	assert.Equal(t, 11, loaded.Draft.IDValue())
	assert.Equal(t, "Sunset Jazz", loaded.Draft.Name)
	assert.Equal(t, models.KindEvent, loaded.Kind)
	assert.Equal(t, 5, loaded.Step)
	assert.Equal(t, models.ModeBulk, loaded.Cart.Mode)
	assert.Equal(t, 2100.0, loaded.Cart.Summary().TotalPrice)

	cleared := httptest.NewRecorder()
	require.NoError(t, st.Clear(cleared, carryCookies(rr)))

	fresh, err := st.Load(carryCookies(cleared))
	require.NoError(t, err)
	assert.Nil(t, fresh.Draft)
	assert.Equal(t, models.FirstStep, fresh.Step)
}

func TestDecodeWorkspace_Normalizes(t *testing.T) {
	ws, err := decodeWorkspace([]byte(`{"kind": "course", "step": 0, "cart": {"mode": "group", "items": null}}`))
	require.NoError(t, err)

	assert.Equal(t, models.DefaultProductKind, ws.Kind)
	assert.Equal(t, models.FirstStep, ws.Step)
	assert.Equal(t, models.ModeSingle, ws.Cart.Mode)
	assert.NotNil(t, ws.Cart.Items)

	_, err = decodeWorkspace([]byte(`not json`))
	assert.Error(t, err)
}

func TestSessionWorkspaceStore_FilesystemHoldsLargestDraft(t *testing.T) {
	sessionStore := NewFilesystemSessions(t.TempDir(), &sessions.Options{Path: "/", MaxAge: 3600, HttpOnly: true},
		[]byte("test-secret-key-with-32-bytes!!"))
	st := NewSessionWorkspaceStore(sessionStore, "portal_session")

	id := 7
	ws := models.NewWorkspace()
	ws.Kind = models.KindEvent
	ws.Step = 3
	ws.Draft = &models.Product{
		ID:          &id,
		Category:    strings.Repeat("c", 100),
		Subcategory: strings.Repeat("s", 100),
		Kind:        models.KindEvent,
		Name:        strings.Repeat("n", 200),
		// the validator counts runes, so two-byte runes give the largest payload
		Description: strings.Repeat("é", 5000),
		Location: &models.Location{
			Product: id,
			Address: strings.Repeat("a", 255),
			City:    strings.Repeat("m", 100),
			Country: strings.Repeat("k", 100),
		},
	}
	for i := 1; i <= 20; i++ {
		ws.Draft.Media = append(ws.Draft.Media, models.Media{
			ID: i, Product: id, MediaType: models.MediaImage,
			File: fmt.Sprintf("https://cdn.example.com/media/%d/%s.jpg", i, strings.Repeat("f", 64)),
		})
	}
	for i := 0; i < 3; i++ {
		ws.Cart.Items = append(ws.Cart.Items, models.CartItem{
			ID: fmt.Sprintf("line-%d", i), Name: strings.Repeat("x", 200), Quantity: 1, Total: 1050,
		})
	}

	rr := httptest.NewRecorder()
	require.NoError(t, st.Save(rr, httptest.NewRequest(http.MethodPost, "/", nil), ws))

	for _, cookie := range rr.Result().Cookies() {
		assert.Less(t, len(cookie.Value), 4096, "the cookie only carries the session id")
	}

	loaded, err := st.Load(carryCookies(rr))
	require.NoError(t, err)
	assert.Equal(t, ws.Draft.Description, loaded.Draft.Description)
	assert.Len(t, loaded.Draft.Media, 20)
	assert.Len(t, loaded.Cart.Items, 3)
}
