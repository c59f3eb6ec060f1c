package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shoplite/internal/config"
	"github.com/shoplite/internal/constants"
	"github.com/shoplite/internal/models"
	"github.com/shoplite/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Role{}, &models.User{}, &models.ProductImage{}, &models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			SecretKey:   "auth-service-test-secret",
			ExpireHours: 1,
		},
	}
}

func setupAuthServiceTest(t *testing.T) (*AuthService, repository.UserRepository, *gorm.DB) {
	t.Helper()
	db := openServiceTestDB(t)
	userRepo := repository.NewUserRepository(db)
	return NewAuthService(testConfig(), userRepo), userRepo, db
}

func createTestUser(t *testing.T, db *gorm.DB, auth *AuthService, email, password, roleName string) *models.User {
	t.Helper()
	var role models.Role
	if err := db.Where("name = ?", roleName).First(&role).Error; err != nil {
		role = models.Role{Name: roleName}
		if err := db.Create(&role).Error; err != nil {
			t.Fatalf("create role failed: %v", err)
		}
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	user := &models.User{
		Email:        email,
		Name:         "tester",
		PasswordHash: hash,
		RoleID:       role.ID,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	user.Role = &role
	return user
}

func TestLoginUnknownEmail(t *testing.T) {
	auth, _, _ := setupAuthServiceTest(t)

	_, _, err := auth.Login("nobody@example.com", "whatever")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	auth, _, db := setupAuthServiceTest(t)
	createTestUser(t, db, auth, "alice@example.com", "secret123", constants.RoleUser)

	_, _, err := auth.Login("alice@example.com", "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials got %v", err)
	}
}

func TestLoginSuccessTokenRoundTrip(t *testing.T) {
	auth, _, db := setupAuthServiceTest(t)
	created := createTestUser(t, db, auth, "alice@example.com", "secret123", constants.RoleAdmin)

	user, token, err := auth.Login("alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("user id want %d got %d", created.ID, user.ID)
	}
	if token == "" {
		t.Fatalf("token should not be empty")
	}

	claims, err := auth.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != created.ID {
		t.Fatalf("claims user_id want %d got %d", created.ID, claims.UserID)
	}
	if claims.Role.Name != constants.RoleAdmin {
		t.Fatalf("claims role want admin got %s", claims.Role.Name)
	}
	if claims.ExpiresAt == nil {
		t.Fatalf("token should carry expiry when expire_hours > 0")
	}
}

func TestGenerateJWTWithoutExpiry(t *testing.T) {
	db := openServiceTestDB(t)
	cfg := testConfig()
	cfg.JWT.ExpireHours = 0
	auth := NewAuthService(cfg, repository.NewUserRepository(db))
	user := createTestUser(t, db, auth, "bob@example.com", "secret123", constants.RoleUser)

	token, err := auth.GenerateJWT(user)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}
	claims, err := auth.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.ExpiresAt != nil {
		t.Fatalf("token should not carry expiry when expire_hours is 0")
	}
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	auth, _, db := setupAuthServiceTest(t)
	user := createTestUser(t, db, auth, "alice@example.com", "secret123", constants.RoleUser)

	token, err := auth.GenerateJWT(user)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	otherCfg := testConfig()
	otherCfg.JWT.SecretKey = "a-different-secret"
	other := NewAuthService(otherCfg, repository.NewUserRepository(db))
	if _, err := other.ParseJWT(token); err == nil {
		t.Fatalf("token signed with another secret should be rejected")
	}
}

func TestChangePassword(t *testing.T) {
	auth, userRepo, db := setupAuthServiceTest(t)
	user := createTestUser(t, db, auth, "alice@example.com", "old-password", constants.RoleUser)

	if err := auth.ChangePassword(user.ID+100, "old-password", "new-password"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown user want ErrNotFound got %v", err)
	}
	if err := auth.ChangePassword(user.ID, "bad-old", "new-password"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("wrong old password want ErrInvalidPassword got %v", err)
	}
	if err := auth.ChangePassword(user.ID, "old-password", "old-password"); !errors.Is(err, ErrSamePassword) {
		t.Fatalf("identical passwords want ErrSamePassword got %v", err)
	}

	if err := auth.ChangePassword(user.ID, "old-password", "new-password"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	updated, err := userRepo.GetByID(user.ID)
	if err != nil || updated == nil {
		t.Fatalf("reload user failed: %v", err)
	}
	if err := auth.VerifyPassword(updated.PasswordHash, "new-password"); err != nil {
		t.Fatalf("new password should verify: %v", err)
	}
	if err := auth.VerifyPassword(updated.PasswordHash, "old-password"); err == nil {
		t.Fatalf("old password should no longer verify")
	}
}
