package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResendSender_Send(t *testing.T) {
	var received resendPayload
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("не удалось декодировать тело: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := NewResendSender(server.Client(), server.URL, "test-key", "noreply@foodoscope.com")
	err := sender.Send(context.Background(), "user@example.com", "Тема", "<p>тело</p>")
	if err != nil {
		t.Fatalf("send вернул ошибку: %v", err)
	}

	if authHeader != "Bearer test-key" {
		t.Errorf("ожидался Bearer заголовок, получили %q", authHeader)
	}
	if received.From != "noreply@foodoscope.com" {
		t.Errorf("неверный from: %q", received.From)
	}
	if len(received.To) != 1 || received.To[0] != "user@example.com" {
		t.Errorf("неверный to: %v", received.To)
	}
	if received.Subject != "Тема" || received.HTML != "<p>тело</p>" {
		t.Errorf("неверное содержимое письма: %+v", received)
	}
}

func TestResendSender_SendAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from"}`))
	}))
	defer server.Close()

	sender := NewResendSender(server.Client(), server.URL, "test-key", "bad-from")
	err := sender.Send(context.Background(), "user@example.com", "Тема", "<p>тело</p>")
	if err == nil {
		t.Fatalf("ожидалась ошибка при статусе 422")
	}
}
