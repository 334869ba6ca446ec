package repository

import (
	"context"
	"fmt"
	"strings"

	constant "github.com/SeakMengs/MaintCert/internal/constant"
	"github.com/SeakMengs/MaintCert/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRepository struct {
	*baseRepository
}

func (ur UserRepository) GetById(ctx context.Context, tx *gorm.DB, userId uint) (*model.User, error) {
	ur.logger.Debugf("Get user by id: %d \n", userId)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var user model.User
	if err := db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userId).First(&user).Error; err != nil {
		return nil, classifyError(err)
	}

	return &user, nil
}

func (ur UserRepository) GetByUsername(ctx context.Context, tx *gorm.DB, username string) (*model.User, error) {
	ur.logger.Debugf("Get user by username: %s \n", username)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var user model.User
	if err := db.WithContext(ctx).Model(&model.User{}).Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		return nil, classifyError(err)
	}

	return &user, nil
}

// Create hashes the plain password with bcrypt before storing the user
func (ur UserRepository) Create(ctx context.Context, tx *gorm.DB, newUser model.User, plainPassword string) (*model.User, error) {
	ur.logger.Debugf("Create user: %s with role %s \n", newUser.Username, newUser.Rol)

	if strings.TrimSpace(newUser.Username) == "" || plainPassword == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}
	if !newUser.Rol.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, newUser.Rol)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	newUser.Password = string(hash)
	newUser.Activo = true

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.User{}).Create(&newUser).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("%w: user %s already exists", ErrInvalidInput, newUser.Username)
		}
		return nil, classifyError(err)
	}

	return &newUser, nil
}

// Authenticate returns ErrNotFound for unknown users, inactive users and wrong passwords alike
func (ur UserRepository) Authenticate(ctx context.Context, tx *gorm.DB, username, password string) (*model.User, error) {
	user, err := ur.GetByUsername(ctx, tx, username)
	if err != nil {
		return nil, err
	}

	if !user.Activo {
		return nil, ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrNotFound
	}

	return user, nil
}
