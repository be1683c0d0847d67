package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ResendSender отправляет письма через HTTP API Resend.
type ResendSender struct {
	client *http.Client
	apiURL string
	apiKey string
	from   string
}

// NewResendSender создаёт отправителя. Если client == nil, используется
// http.DefaultClient.
func NewResendSender(client *http.Client, apiURL, apiKey, from string) *ResendSender {
	if client == nil {
		client = http.DefaultClient
	}
	return &ResendSender{
		client: client,
		apiURL: apiURL,
		apiKey: apiKey,
		from:   from,
	}
}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send выполняет один POST к API без повторных попыток.
func (s *ResendSender) Send(ctx context.Context, to, subject, html string) error {
	payload := resendPayload{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	}

	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(payload); err != nil {
		return fmt.Errorf("mailer: не удалось сериализовать письмо: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, &body)
	if err != nil {
		return fmt.Errorf("mailer: не удалось создать запрос: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("mailer: не удалось отправить запрос: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("mailer: API вернул статус %d: %s", resp.StatusCode, detail)
	}

	return nil
}
