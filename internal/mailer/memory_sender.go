package mailer

import (
	"context"
	"sync"
)

// MemoryEmail — письмо, сохранённое MemorySender.
type MemoryEmail struct {
	To      string
	Subject string
	HTML    string
}

// MemorySender накапливает письма в памяти. Используется в тестах.
type MemorySender struct {
	mu     sync.Mutex
	Emails []MemoryEmail
	// FailWith заставляет Send возвращать эту ошибку (имитация сбоя доставки).
	FailWith error
}

// NewMemorySender создаёт отправителя в память.
func NewMemorySender() *MemorySender {
	return &MemorySender{}
}

// Send сохраняет письмо либо возвращает сконфигурированную ошибку.
func (s *MemorySender) Send(_ context.Context, to, subject, html string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return s.FailWith
	}

	s.Emails = append(s.Emails, MemoryEmail{To: to, Subject: subject, HTML: html})
	return nil
}

// Last возвращает последнее сохранённое письмо или nil.
func (s *MemorySender) Last() *MemoryEmail {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.Emails) == 0 {
		return nil
	}
	return &s.Emails[len(s.Emails)-1]
}
