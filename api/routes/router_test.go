package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mlefevre-dev/vitrine-backend/internal/content"
	"github.com/mlefevre-dev/vitrine-backend/pkg/config"
	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
	"github.com/mlefevre-dev/vitrine-backend/pkg/logger"
	"github.com/mlefevre-dev/vitrine-backend/pkg/redis"
)

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping(context.Context) error { return p.err }

func testConfig(env string) *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: env, Port: "8080"},
		JWT: config.JWTConfig{
			Secret:            "router-test-secret",
			Issuer:            "vitrine-test",
			ExpirationMinutes: 30,
		},
		AuthRateLimit: config.AuthRateLimitConfig{
			LoginWindow:     time.Minute,
			LoginEmailLimit: 5,
			LoginIPLimit:    20,
		},
		Uploads: config.UploadsConfig{
			Dir:            "public/uploads",
			PublicBasePath: "/uploads",
			MaxUploadMB:    1,
		},
	}
}

func newTestRouter(t *testing.T, env string) http.Handler {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file:routertest?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(
		&models.CarouselImage{}, &models.TeamMember{}, &models.FaqItem{},
		&models.CompanyValue{}, &models.Milestone{}, &models.ContactItem{},
		&models.PubliciteVideo{},
	))

	logg := logger.New(logger.Options{ServiceName: "routes-test", Output: io.Discard})
	return NewRouter(Deps{
		Config:  testConfig(env),
		Logger:  logg,
		DB:      &stubPinger{},
		Redis:   &redis.Client{},
		Content: content.NewServices(conn, nil, logg),
	})
}

func do(r http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRouterHealthLive(t *testing.T) {
	r := newTestRouter(t, "test")

	rec := do(r, http.MethodGet, "/health/live", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test", rec.Header().Get("X-Vitrine-Env"))
}

func TestRouterReadyFailsWhenRedisDown(t *testing.T) {
	r := newTestRouter(t, "test")

	// The zero-value redis client has no connection behind it, so readiness
	// must report the dependency as unavailable.
	rec := do(r, http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "DEPENDENCY_ERROR")
}

func TestRouterPublicReadsAreOpen(t *testing.T) {
	r := newTestRouter(t, "test")

	for _, path := range []string{
		"/api/carousel", "/api/team", "/api/faq", "/api/values",
		"/api/milestones", "/api/contact", "/api/publicite",
	} {
		rec := do(r, http.MethodGet, path, "")
		assert.Equalf(t, http.StatusOK, rec.Code, "GET %s", path)
	}
}

func TestRouterMutationsRequireAuth(t *testing.T) {
	r := newTestRouter(t, "test")

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/faq"},
		{http.MethodPut, "/api/faq/1"},
		{http.MethodPatch, "/api/faq/1"},
		{http.MethodDelete, "/api/faq/1"},
		{http.MethodPost, "/api/faq/1/move"},
		{http.MethodPost, "/api/faq/reindex"},
		{http.MethodPost, "/api/upload"},
		{http.MethodPost, "/api/auth/logout"},
	}
	for _, tc := range cases {
		rec := do(r, tc.method, tc.path, `{}`)
		assert.Equalf(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
		assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
	}
}

func TestRouterRegisterHiddenInProduction(t *testing.T) {
	prod := newTestRouter(t, "production")
	rec := do(prod, http.MethodPost, "/api/auth/register", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	dev := newTestRouter(t, "test")
	rec = do(dev, http.MethodPost, "/api/auth/register", `{}`)
	assert.NotEqual(t, http.StatusNotFound, rec.Code)
}

func TestRouterUnknownRoute(t *testing.T) {
	r := newTestRouter(t, "test")

	rec := do(r, http.MethodGet, "/api/nothing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
