package mailer

import (
	"context"
	"fmt"
)

// Sender отправляет одно письмо. Реализации: Resend API, лог, память (тесты).
type Sender interface {
	Send(ctx context.Context, to, subject, html string) error
}

// Mailer формирует письма аутентификации и отправляет их через Sender.
// Адрес отправителя — забота конкретного Sender.
type Mailer struct {
	sender Sender
}

// New создаёт Mailer с заданным отправителем.
func New(sender Sender) *Mailer {
	return &Mailer{sender: sender}
}

// SendVerificationCode отправляет письмо с кодом подтверждения email.
func (m *Mailer) SendVerificationCode(ctx context.Context, to, code string) error {
	body := fmt.Sprintf(
		"<p>Ваш код подтверждения: <strong>%s</strong></p><p>Код действителен 10 минут.</p>",
		code,
	)
	return m.sender.Send(ctx, to, "Подтвердите ваш email", body)
}

// SendPasswordResetCode отправляет письмо с кодом восстановления пароля.
func (m *Mailer) SendPasswordResetCode(ctx context.Context, to, code string) error {
	body := fmt.Sprintf(
		"<p>Ваш код восстановления пароля: <strong>%s</strong></p><p>Код действителен 30 минут.</p>",
		code,
	)
	return m.sender.Send(ctx, to, "Восстановление пароля", body)
}
