package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgAuth "github.com/mlefevre-dev/vitrine-backend/pkg/auth"
	"github.com/mlefevre-dev/vitrine-backend/pkg/auth/session"
	"github.com/mlefevre-dev/vitrine-backend/pkg/config"
	"github.com/mlefevre-dev/vitrine-backend/pkg/db/models"
	"github.com/mlefevre-dev/vitrine-backend/pkg/enums"
	pkgerrors "github.com/mlefevre-dev/vitrine-backend/pkg/errors"
	"github.com/mlefevre-dev/vitrine-backend/pkg/security"
)

type fakeUserRepo struct {
	byEmail    map[string]*models.User
	lastLogins map[uuid.UUID]time.Time
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{
		byEmail:    map[string]*models.User{},
		lastLogins: map[uuid.UUID]time.Time{},
	}
	for _, u := range users {
		r.byEmail[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.byEmail[user.Email] = user
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	r.lastLogins[id] = at
	return nil
}

type fakeSessionManager struct {
	tokens  map[string]string
	nextTok int
}

func newFakeSessionManager() *fakeSessionManager {
	return &fakeSessionManager{tokens: map[string]string{}}
}

func (m *fakeSessionManager) Generate(_ context.Context, accessID string) (string, error) {
	m.nextTok++
	token := "refresh-" + uuid.NewString()
	m.tokens[accessID] = token
	return token, nil
}

func (m *fakeSessionManager) Rotate(_ context.Context, oldAccessID, provided string) (string, string, error) {
	stored, ok := m.tokens[oldAccessID]
	if !ok || stored != provided {
		return "", "", session.ErrInvalidRefreshToken
	}
	delete(m.tokens, oldAccessID)
	newID := session.NewAccessID()
	token := "refresh-" + uuid.NewString()
	m.tokens[newID] = token
	return newID, token, nil
}

func (m *fakeSessionManager) Revoke(_ context.Context, accessID string) error {
	delete(m.tokens, accessID)
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "secret",
		Issuer:            "vitrine",
		ExpirationMinutes: 30,
	}
}

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
	}
}

func mustHashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password, testPasswordConfig())
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

func buildTestService(t *testing.T, sessions *fakeSessionManager, users ...*models.User) (Service, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo(users...)
	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		SessionManager: sessions,
		JWTConfig:      testJWTConfig(),
		PasswordConfig: testPasswordConfig(),
		AllowRegister:  true,
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc, repo
}

func adminUser(t *testing.T, password string) *models.User {
	t.Helper()
	return &models.User{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: mustHashPassword(t, password),
		Name:         "Admin",
		Role:         enums.RoleAdmin,
		IsActive:     true,
	}
}

func TestServiceLoginIssuesTokenPair(t *testing.T) {
	password := "motdepasse-admin"
	user := adminUser(t, password)
	sessions := newFakeSessionManager()
	svc, repo := buildTestService(t, sessions, user)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "Admin@Example.com",
		Password: password,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected user id %s in claims, got %s", user.ID, claims.UserID)
	}
	if claims.Role != enums.RoleAdmin {
		t.Fatalf("expected admin role claim, got %s", claims.Role)
	}
	if stored, ok := sessions.tokens[claims.ID]; !ok || stored != resp.RefreshToken {
		t.Fatalf("expected refresh token stored under jti %s", claims.ID)
	}
	if _, ok := repo.lastLogins[user.ID]; !ok {
		t.Fatalf("expected last login to be recorded")
	}
	if resp.User == nil || resp.User.Email != user.Email {
		t.Fatalf("expected user dto in response")
	}
}

func TestServiceLoginRejectsBadCredentials(t *testing.T) {
	user := adminUser(t, "bon-mot-de-passe")
	svc, _ := buildTestService(t, newFakeSessionManager(), user)

	cases := []LoginRequest{
		{Email: user.Email, Password: "mauvais"},
		{Email: "unknown@example.com", Password: "whatever"},
		{Email: "", Password: "whatever"},
	}
	for _, req := range cases {
		_, err := svc.Login(context.Background(), req)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
			t.Fatalf("expected unauthorized for %q, got %v", req.Email, err)
		}
		if typed.Message() != invalidCredentialsMessage {
			t.Fatalf("expected constant credentials message, got %q", typed.Message())
		}
	}
}

func TestServiceLoginRejectsInactiveUser(t *testing.T) {
	password := "compte-inactif"
	user := adminUser(t, password)
	user.IsActive = false
	svc, _ := buildTestService(t, newFakeSessionManager(), user)

	_, err := svc.Login(context.Background(), LoginRequest{Email: user.Email, Password: password})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized for inactive user, got %v", err)
	}
}

func TestServiceRefreshRotatesSession(t *testing.T) {
	password := "motdepasse-admin"
	user := adminUser(t, password)
	sessions := newFakeSessionManager()
	svc, _ := buildTestService(t, sessions, user)

	login, err := svc.Login(context.Background(), LoginRequest{Email: user.Email, Password: password})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	oldClaims, err := pkgAuth.ParseAccessToken(testJWTConfig(), login.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}

	resp, err := svc.Refresh(context.Background(), RefreshRequest{
		AccessToken:  login.AccessToken,
		RefreshToken: login.RefreshToken,
	})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	newClaims, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	if err != nil {
		t.Fatalf("parse rotated token: %v", err)
	}
	if newClaims.UserID != user.ID || newClaims.Role != enums.RoleAdmin {
		t.Fatalf("rotated token lost identity claims")
	}
	if newClaims.ID == oldClaims.ID {
		t.Fatalf("expected a fresh jti after rotation")
	}
	if _, ok := sessions.tokens[oldClaims.ID]; ok {
		t.Fatalf("expected old session to be invalidated")
	}

	// The consumed refresh token must not work twice.
	_, err = svc.Refresh(context.Background(), RefreshRequest{
		AccessToken:  login.AccessToken,
		RefreshToken: login.RefreshToken,
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized on replay, got %v", err)
	}
}

func TestServiceRefreshAcceptsExpiredAccessToken(t *testing.T) {
	password := "motdepasse-admin"
	user := adminUser(t, password)
	sessions := newFakeSessionManager()
	svc, _ := buildTestService(t, sessions, user)

	accessID := session.NewAccessID()
	refreshToken, err := sessions.Generate(context.Background(), accessID)
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	staleIssuedAt := time.Now().UTC().Add(-2 * time.Hour)
	staleToken, err := pkgAuth.MintAccessToken(testJWTConfig(), staleIssuedAt, pkgAuth.AccessTokenPayload{
		UserID: user.ID,
		Role:   enums.RoleAdmin,
		JTI:    accessID,
	})
	if err != nil {
		t.Fatalf("mint stale token: %v", err)
	}
	if _, err := pkgAuth.ParseAccessToken(testJWTConfig(), staleToken); err == nil {
		t.Fatalf("expected stale token to fail strict parsing")
	}

	resp, err := svc.Refresh(context.Background(), RefreshRequest{
		AccessToken:  staleToken,
		RefreshToken: refreshToken,
	})
	if err != nil {
		t.Fatalf("refresh with expired access token: %v", err)
	}
	if _, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.AccessToken); err != nil {
		t.Fatalf("expected a valid rotated access token: %v", err)
	}
}

func TestServiceRefreshRejectsGarbageAccessToken(t *testing.T) {
	svc, _ := buildTestService(t, newFakeSessionManager())

	_, err := svc.Refresh(context.Background(), RefreshRequest{
		AccessToken:  "not-a-jwt",
		RefreshToken: "whatever",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestServiceLogoutRevokesSession(t *testing.T) {
	password := "motdepasse-admin"
	user := adminUser(t, password)
	sessions := newFakeSessionManager()
	svc, _ := buildTestService(t, sessions, user)

	login, err := svc.Login(context.Background(), LoginRequest{Email: user.Email, Password: password})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), login.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}

	if err := svc.Logout(context.Background(), claims.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := sessions.tokens[claims.ID]; ok {
		t.Fatalf("expected session to be revoked")
	}

	err = svc.Logout(context.Background(), "")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized for empty access id, got %v", err)
	}
}

func TestServiceRegister(t *testing.T) {
	svc, repo := buildTestService(t, newFakeSessionManager())

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "Nouveau@Example.com",
		Password: "motdepasse-editeur",
		Name:     "Nouvelle Editrice",
		Role:     "editor",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.User.Role != enums.Role("editor") {
		t.Fatalf("expected editor role, got %s", resp.User.Role)
	}
	stored, ok := repo.byEmail["nouveau@example.com"]
	if !ok {
		t.Fatalf("expected email to be lowercased on create")
	}
	if stored.PasswordHash == "motdepasse-editeur" {
		t.Fatalf("password must be hashed before persisting")
	}

	_, err = svc.Register(context.Background(), RegisterRequest{
		Email:    "nouveau@example.com",
		Password: "autre-mot-de-passe",
		Name:     "Doublon",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict on duplicate email, got %v", err)
	}
}

func TestServiceRegisterDisabled(t *testing.T) {
	repo := newFakeUserRepo()
	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		SessionManager: newFakeSessionManager(),
		JWTConfig:      testJWTConfig(),
		PasswordConfig: testPasswordConfig(),
		AllowRegister:  false,
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	_, err = svc.Register(context.Background(), RegisterRequest{
		Email:    "ops@example.com",
		Password: "motdepasse-ops",
		Name:     "Ops",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden when registration disabled, got %v", err)
	}
}
