package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"portfolio-cms/internal/platform/config"
	"portfolio-cms/internal/platform/errors"
	"portfolio-cms/internal/platform/logging"
)

// Notifier sends plain-text notification mail over SMTP. When mail is not
// configured it is a silent no-op, so callers never need to branch.
type Notifier struct {
	cfg    config.MailConfig
	logger *logging.Logger
	send   func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

func NewNotifier(cfg config.MailConfig, logger *logging.Logger) *Notifier {
	return &Notifier{
		cfg:    cfg,
		logger: logger,
		send:   smtp.SendMail,
	}
}

// Enabled reports whether the notifier will actually send anything.
func (n *Notifier) Enabled() bool {
	return n.cfg.Enabled()
}

// Notify delivers a single message. Failures are returned but callers are
// expected to treat delivery as best-effort.
func (n *Notifier) Notify(subject, body string) error {
	if !n.Enabled() {
		return nil
	}

	headers := []string{
		fmt.Sprintf("From: %s", n.cfg.From),
		fmt.Sprintf("To: %s", n.cfg.To),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
	}
	msg := strings.Join(headers, "\r\n") + "\r\n\r\n" + body

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	if err := n.send(addr, auth, n.cfg.From, []string{n.cfg.To}, []byte(msg)); err != nil {
		return errors.Wrap(errors.KindMail, "mail.notify", "failed to send notification", err)
	}

	n.logger.Debug("notification mail sent to %s", n.cfg.To)
	return nil
}
