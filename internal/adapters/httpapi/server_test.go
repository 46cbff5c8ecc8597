package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cropai/internal/application"
	"cropai/internal/config"
	"cropai/internal/domain"
	"cropai/internal/domain/entities"
	"cropai/internal/infrastructure/i18n"
	"cropai/internal/infrastructure/session"
)

type memUserRepo struct {
	nextID uint
	users  map[string]*entities.User
}

func (m *memUserRepo) Create(_ context.Context, user *entities.User) error {
	if _, ok := m.users[user.Username]; ok {
		return domain.ErrUsernameTaken
	}
	m.nextID++
	user.ID = m.nextID
	m.users[user.Username] = user
	return nil
}

func (m *memUserRepo) FindByID(_ context.Context, id uint) (*entities.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memUserRepo) FindByUsername(_ context.Context, username string) (*entities.User, error) {
	if user, ok := m.users[username]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *memUserRepo) UpdateLanguage(_ context.Context, id uint, code string) error {
	for _, user := range m.users {
		if user.ID == id {
			user.Language = code
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type memFieldRepo struct {
	nextID uint
	fields []entities.Field
}

func (m *memFieldRepo) Create(_ context.Context, field *entities.Field) error {
	m.nextID++
	field.ID = m.nextID
	m.fields = append(m.fields, *field)
	return nil
}

func (m *memFieldRepo) FindByUserID(_ context.Context, userID uint) ([]entities.Field, error) {
	var out []entities.Field
	for _, f := range m.fields {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

type memPredictionRepo struct {
	predictions []entities.Prediction
}

func (m *memPredictionRepo) Create(_ context.Context, p *entities.Prediction) error {
	p.ID = uint(len(m.predictions) + 1)
	m.predictions = append(m.predictions, *p)
	return nil
}

func (m *memPredictionRepo) FindRecentByUserID(_ context.Context, userID uint, limit int) ([]entities.Prediction, error) {
	var out []entities.Prediction
	for i := len(m.predictions) - 1; i >= 0 && len(out) < limit; i-- {
		if m.predictions[i].UserID == userID {
			out = append(out, m.predictions[i])
		}
	}
	return out, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	resolver := i18n.New(context.Background(), i18n.EmbeddedSource(), i18n.Options{Logger: zap.NewNop()})
	require.False(t, resolver.Degraded())

	users := &memUserRepo{users: make(map[string]*entities.User)}
	cfg := &config.Config{Environment: "test", HTTPAddr: ":0", SessionTTL: time.Hour}
	return NewServer(cfg, zap.NewNop(), Deps{
		Accounts:    application.NewAccountService(users),
		Fields:      application.NewFieldService(&memFieldRepo{}),
		Predictions: application.NewPredictionService(&memPredictionRepo{}, zap.NewNop()),
		Locales:     application.NewLocaleService(resolver),
		Sessions:    session.NewStore(time.Hour),
		Users:       users,
	})
}

type client struct {
	t      *testing.T
	server *Server
	cookie *http.Cookie
}

func (c *client) do(method, path, body string, header map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	c.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	w := httptest.NewRecorder()
	c.server.Handler().ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == SessionCookie {
			c.cookie = cookie
		}
	}

	var payload map[string]any
	if w.Body.Len() > 0 {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &payload))
	}
	return w, payload
}

func data(payload map[string]any) map[string]any {
	d, _ := payload["data"].(map[string]any)
	return d
}

func TestLanguagesListsCatalogWithEnglishFirst(t *testing.T) {
	c := &client{t: t, server: newTestServer(t)}

	w, payload := c.do(http.MethodGet, "/api/v1/languages", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	d := data(payload)
	assert.Equal(t, "en", d["current"])
	assert.Equal(t, "ltr", d["direction"])

	languages, ok := d["languages"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, languages)
	first := languages[0].(map[string]any)
	assert.Equal(t, "en", first["code"])
}

func TestSetLanguagePersistsAcrossRequests(t *testing.T) {
	c := &client{t: t, server: newTestServer(t)}

	w, payload := c.do(http.MethodPut, "/api/v1/language", `{"language":"hi"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	d := data(payload)
	assert.Equal(t, "hi", d["language"])
	assert.Contains(t, d["message"], "हिन्दी")

	w, payload = c.do(http.MethodGet, "/api/v1/languages", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hi", data(payload)["current"])
}

func TestSetLanguageUnknownCodeFallsBack(t *testing.T) {
	c := &client{t: t, server: newTestServer(t)}

	w, payload := c.do(http.MethodPut, "/api/v1/language", `{"language":"xx"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "en", data(payload)["language"])
}

func TestAcceptLanguageHeaderSeedsLocale(t *testing.T) {
	c := &client{t: t, server: newTestServer(t)}

	w, payload := c.do(http.MethodGet, "/api/v1/languages", "", map[string]string{
		"Accept-Language": "hi-IN,hi;q=0.9,en;q=0.8",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hi", data(payload)["current"])
}

func TestStoredPreferenceBeatsAcceptLanguage(t *testing.T) {
	c := &client{t: t, server: newTestServer(t)}

	w, _ := c.do(http.MethodPut, "/api/v1/language", `{"language":"or"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, payload := c.do(http.MethodGet, "/api/v1/languages", "", map[string]string{
		"Accept-Language": "hi-IN",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "or", data(payload)["current"])
}

func TestCatalogEndpoint(t *testing.T) {
	c := &client{t: t, server: newTestServer(t)}

	w, payload := c.do(http.MethodGet, "/api/v1/catalog/hi", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	d := data(payload)
	assert.Equal(t, "hi", d["language"])
	catalog, ok := d["catalog"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, catalog, "app_name")

	w, _ = c.do(http.MethodGet, "/api/v1/catalog/zz", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPredictValidation(t *testing.T) {
	c := &client{t: t, server: newTestServer(t)}

	w, _ := c.do(http.MethodPost, "/api/v1/predict",
		`{"crop_type":"quinoa","area":2,"rainfall":1500,"temperature":27,"soil_ph":6.5,"fertilizer":60,"pest_control":8}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = c.do(http.MethodPost, "/api/v1/predict",
		`{"crop_type":"rice","area":2,"rainfall":1500,"temperature":27,"soil_ph":6.5,"fertilizer":60,"pest_control":11}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPredictReturnsLocalizedAdvice(t *testing.T) {
	c := &client{t: t, server: newTestServer(t)}

	w, payload := c.do(http.MethodPost, "/api/v1/predict",
		`{"crop_type":"rice","area":2,"rainfall":1500,"temperature":27,"soil_ph":6.5,"fertilizer":60,"pest_control":8}`,
		map[string]string{"Accept-Language": "hi"})
	require.Equal(t, http.StatusOK, w.Code)

	d := data(payload)
	assert.InDelta(t, 5.0, d["yield"].(float64), 1e-9)
	assert.Contains(t, d["summary"], "अनुमानित उपज")

	recs, ok := d["recommendations"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, recs)
	first := recs[0].(map[string]any)
	// Resolved text, not a dotted translation key.
	assert.NotContains(t, first["message"], "advice.")
}

func TestAuthAndDashboardFlow(t *testing.T) {
	c := &client{t: t, server: newTestServer(t)}

	w, _ := c.do(http.MethodGet, "/api/v1/dashboard", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = c.do(http.MethodPost, "/api/v1/auth/register",
		`{"username":"asha","email":"asha@example.com","password":"harvest2024","name":"Asha","language":"hi"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w, payload := c.do(http.MethodPost, "/api/v1/fields",
		`{"name":"North plot","crop_type":"rice","area":1.5}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "North plot", data(payload)["name"])

	w, payload = c.do(http.MethodGet, "/api/v1/dashboard", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	d := data(payload)
	// Language preference registered with the account applies here.
	assert.Contains(t, d["welcome"], "स्वागत")

	fields, ok := d["fields"].([]any)
	require.True(t, ok)
	assert.Len(t, fields, 1)

	w, _ = c.do(http.MethodPost, "/api/v1/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = c.do(http.MethodGet, "/api/v1/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginLocalizedFailure(t *testing.T) {
	c := &client{t: t, server: newTestServer(t)}

	w, payload := c.do(http.MethodPost, "/api/v1/auth/login",
		`{"username":"ghost","password":"whatever"}`,
		map[string]string{"Accept-Language": "hi"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, payload["error"], "अमान्य")
}
