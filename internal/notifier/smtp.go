package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Mazium/TicketEase/config"

	"go.uber.org/zap"
)

// SMTPNotifier delivers HTML mail through a plain SMTP relay.
type SMTPNotifier struct {
	log *zap.SugaredLogger
	cfg config.SMTPConfig
}

// NewSMTP constructs a notifier from SMTP configuration.
func NewSMTP(log *zap.SugaredLogger, cfg config.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{
		log: log.Named("notifier.smtp"),
		cfg: cfg,
	}
}

// SendHTMLEmail sends one message. Message bodies are never logged: welcome
// mail carries the generated credential in cleartext.
func (n *SMTPNotifier) SendHTMLEmail(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", n.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	if err := smtp.SendMail(addr, auth, n.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		n.log.Errorw("failed to send email", "error", err, "to", to, "subject", subject)
		return fmt.Errorf("send mail: %w", err)
	}

	n.log.Infow("email sent", "to", to, "subject", subject)
	return nil
}
