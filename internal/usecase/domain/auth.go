// Package domain contains application Usecases orchestrating domain logic by user.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"freelance-flow/internal/entities"

	"golang.org/x/crypto/bcrypt"
)

type credentials struct {
	Username string `validate:"required,min=3,max=64"`
	Password string `validate:"required,min=6,max=72"`
}

// Register creates an account with a bcrypt-hashed password.
func (u *Usecase) Register(ctx context.Context, username, password string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if username != strings.TrimSpace(username) {
		return nil, fmt.Errorf("%w: username must not start or end with whitespace", entities.ErrInvalidArgument)
	}

	creds := credentials{Username: username, Password: password}
	if err := u.check(creds); err != nil {
		return nil, err
	}
	if len(password) > 72 {
		return nil, fmt.Errorf("%w: password longer than 72 bytes", entities.ErrInvalidArgument)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := u.repo.CreateUser(ctx, creds.Username, string(hash))
	if err != nil {
		return nil, err
	}
	u.log.Infow("user registered", "user_id", user.ID)
	return user, nil
}

// Login returns the user matching username and password. Every failure that
// depends on the credentials is reported as ErrInvalidCredentials.
func (u *Usecase) Login(ctx context.Context, username, password string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if username == "" || password == "" {
		return nil, entities.ErrInvalidCredentials
	}

	user, err := u.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, entities.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, entities.ErrInvalidCredentials
	}
	return user, nil
}
