package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/P0n40/Shiftdailyreportapp/internal/kv"
	"golang.org/x/crypto/bcrypt"
)

const userPrefix = "user:"

// Account is a stored login account. Passwords are kept as bcrypt
// hashes only.
type Account struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}

type AuthService struct {
	store kv.Store
}

func NewAuthService(store kv.Store) *AuthService {
	return &AuthService{store: store}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*Account, error) {
	raw, ok, err := s.store.Get(ctx, userPrefix+username)
	if err != nil {
		return nil, fmt.Errorf("load account: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	var a Account
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decode account: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return nil, fmt.Errorf("wrong password")
	}
	return &a, nil
}

// EnsureAccount creates the account when it does not exist yet.
// Existing accounts are left untouched.
func (s *AuthService) EnsureAccount(ctx context.Context, username, password, name, role string) error {
	key := userPrefix + username
	_, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("check account: %w", err)
	}
	if ok {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	buf, err := json.Marshal(Account{
		Username:     username,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
	})
	if err != nil {
		return fmt.Errorf("encode account: %w", err)
	}
	if err := s.store.Set(ctx, key, buf); err != nil {
		return fmt.Errorf("store account: %w", err)
	}
	return nil
}
