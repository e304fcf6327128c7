package infra

import (
	"fmt"
	"net/smtp"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer sends low-stock alert mail through the configured SMTP relay. All
// sends pass through a circuit breaker so a dead relay doesn't stall the
// worker pool.
type Mailer struct {
	cfg *config.Config
	cb  *CircuitBreaker
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{cfg: cfg, cb: NewCircuitBreaker(DefaultCBConfig())}
}

func (m *Mailer) Enviar(asunto, cuerpo string) error {
	if m.cfg.SMTPHost == "" || m.cfg.AlertEmail == "" {
		return fmt.Errorf("smtp no configurado")
	}

	return m.cb.Execute(func() error {
		e := email.NewEmail()
		e.From = fmt.Sprintf("POS Aura Creativa <%s>", m.cfg.SMTPUser)
		e.To = []string{m.cfg.AlertEmail}
		e.Subject = asunto
		e.Text = []byte(cuerpo)

		addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)
		auth := smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPassword, m.cfg.SMTPHost)
		return e.Send(addr, auth)
	})
}

// Estado exposes the breaker state for the health endpoint.
func (m *Mailer) Estado() string {
	return m.cb.State().String()
}
