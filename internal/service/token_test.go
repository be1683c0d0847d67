package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenManager_GenerateAndParse(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)
	userID := uuid.New()

	token, err := manager.Generate(userID)
	if err != nil {
		t.Fatalf("generate вернул ошибку: %v", err)
	}

	parsedID, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("parse вернул ошибку: %v", err)
	}
	if parsedID != userID {
		t.Fatalf("ожидался userID %s, получили %s", userID, parsedID)
	}
}

func TestTokenManager_ParseExpired(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Minute)

	token, err := manager.Generate(uuid.New())
	if err != nil {
		t.Fatalf("generate вернул ошибку: %v", err)
	}

	_, err = manager.Parse(token)
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("ожидалась ошибка ErrSessionExpired, получили %v", err)
	}
}

func TestTokenManager_ParseWrongSecret(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	token, err := other.Generate(uuid.New())
	if err != nil {
		t.Fatalf("generate вернул ошибку: %v", err)
	}

	_, err = manager.Parse(token)
	if !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("токен с чужой подписью должен отклоняться, получили %v", err)
	}
}

func TestTokenManager_ParseGarbage(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := manager.Parse(token); !errors.Is(err, ErrSessionInvalid) {
			t.Fatalf("мусор %q должен отклоняться, получили %v", token, err)
		}
	}
}
