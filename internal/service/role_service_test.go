package service

import (
	"context"
	"testing"

	"github.com/shoplite/internal/constants"
	"github.com/shoplite/internal/models"
	"github.com/shoplite/internal/repository"
)

func TestRoleListWithoutCache(t *testing.T) {
	db := openServiceTestDB(t)
	for _, name := range []string{constants.RoleUser, constants.RoleAdmin} {
		if err := db.Create(&models.Role{Name: name}).Error; err != nil {
			t.Fatalf("create role %s failed: %v", name, err)
		}
	}

	svc := NewRoleService(repository.NewRoleRepository(db))
	roles, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list roles failed: %v", err)
	}
	if len(roles) != 2 {
		t.Fatalf("roles want 2 got %d", len(roles))
	}

	names := make(map[string]bool, len(roles))
	for _, role := range roles {
		names[role.Name] = true
	}
	if !names[constants.RoleUser] || !names[constants.RoleAdmin] {
		t.Fatalf("roles should contain user and admin, got %v", names)
	}
}
