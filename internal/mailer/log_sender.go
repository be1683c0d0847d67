package mailer

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/foodoscope/foodoscope-backend/internal/logger"
)

// LogSender пишет письма в лог вместо отправки. Для development окружения:
// содержимое писем (включая коды) попадает в лог целиком.
type LogSender struct{}

// NewLogSender создаёт лог-отправителя.
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send логирует письмо и всегда завершается успешно.
func (s *LogSender) Send(_ context.Context, to, subject, html string) error {
	logger.WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
		"body":    html,
	}).Info("mailer: письмо не отправлено, только залогировано")
	return nil
}
