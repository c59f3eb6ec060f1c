package models

import (
	"errors"
	"strings"

	"github.com/shoplite/internal/constants"
	"github.com/shoplite/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDefaultData 初始化内置角色与默认管理员账号（幂等）
func SeedDefaultData(adminEmail, adminPassword string) error {
	for _, name := range []string{constants.RoleUser, constants.RoleAdmin} {
		if err := ensureRole(name); err != nil {
			return err
		}
	}
	return ensureDefaultAdmin(adminEmail, adminPassword)
}

func ensureRole(name string) error {
	var role Role
	err := DB.Where("name = ?", name).First(&role).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err := DB.Create(&Role{Name: name}).Error; err != nil {
		return err
	}
	logger.Infow("default_role_created", "role", name)
	return nil
}

func ensureDefaultAdmin(email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		email = constants.DefaultAdminEmail
	}
	if password == "" {
		password = constants.DefaultAdminPassword
	}

	var count int64
	if err := DB.Model(&User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var adminRole Role
	if err := DB.Where("name = ?", constants.RoleAdmin).First(&adminRole).Error; err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := User{
		Email:        email,
		Name:         constants.DefaultAdminName,
		PasswordHash: string(hash),
		RoleID:       adminRole.ID,
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	if password == constants.DefaultAdminPassword {
		logger.Warnw("default_admin_created_with_default_password", "email", email)
		logger.Warnw("default_admin_password_change_required", "email", email)
	} else {
		logger.Warnw("default_admin_created", "email", email, "password_hidden", true)
	}
	return nil
}
