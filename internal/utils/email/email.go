package email

import (
	"bytes"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/Dan9191/econosfera/internal/config"
	"github.com/Dan9191/econosfera/internal/report"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// BuildReportEmail composes a message with the report as text body and a CSV attachment
func BuildReportEmail(from, to string, r report.Report, now time.Time) (*email.Email, error) {
	e := email.NewEmail()
	e.From = from
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Econosfera: %s", r.Title)

	body := "Hola,\n\nAdjuntamos el reporte generado en Econosfera.\n\n"
	body += r.Text()
	body += fmt.Sprintf("\nGenerado el %s\n\nEconosfera", now.Format("2006-01-02 15:04"))
	e.Text = []byte(body)

	var csv bytes.Buffer
	if err := r.WriteCSV(&csv); err != nil {
		return nil, fmt.Errorf("failed to render report csv: %w", err)
	}
	if _, err := e.Attach(&csv, attachmentName(r.Title, now), "text/csv"); err != nil {
		return nil, fmt.Errorf("failed to attach report: %w", err)
	}
	return e, nil
}

func attachmentName(title string, now time.Time) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, title)
	return fmt.Sprintf("%s-%s.csv", strings.Trim(slug, "-"), now.Format("20060102"))
}

// SendReport emails a rendered report
func (s *Sender) SendReport(to string, r report.Report) error {
	e, err := BuildReportEmail(s.cfg.SenderEmail, to, r, time.Now())
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send report to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
