// Package mail envía las notificaciones del módulo de inspecciones por SMTP.
package mail

import (
	"bytes"
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/Inspecciones-api/internal/application/inspection"
)

var (
	_ inspection.NotificationDispatcher = (*SMTPDispatcher)(nil)
	_ inspection.NotificationDispatcher = (*LogDispatcher)(nil)
)

// SMTPConfig datos del servidor de correo.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// SMTPDispatcher arma el correo con la plantilla de la notificación y lo envía con gomail.
type SMTPDispatcher struct {
	from      string
	templates map[inspection.NotificationKind]mailTemplate
	send      func(msgs ...*gomail.Message) error
	log       zerolog.Logger
}

// NewSMTPDispatcher construye el despachador con las plantillas del módulo.
func NewSMTPDispatcher(cfg SMTPConfig, log zerolog.Logger) (*SMTPDispatcher, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	return &SMTPDispatcher{
		from:      cfg.From,
		templates: templates,
		send:      dialer.DialAndSend,
		log:       log,
	}, nil
}

// Send implementa inspection.NotificationDispatcher. Un solo correo con todos los destinatarios.
func (d *SMTPDispatcher) Send(ctx context.Context, kind inspection.NotificationKind, recipients []string, payload map[string]string) error {
	msg, err := d.compose(kind, recipients, payload)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() { done <- d.send(msg) }()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send mail %s: %w", kind, err)
		}
		d.log.Debug().Str("kind", string(kind)).Strs("to", recipients).Msg("correo enviado")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("send mail %s: %w", kind, ctx.Err())
	}
}

func (d *SMTPDispatcher) compose(kind inspection.NotificationKind, recipients []string, payload map[string]string) (*gomail.Message, error) {
	tpl, ok := d.templates[kind]
	if !ok {
		return nil, fmt.Errorf("plantilla de correo desconocida: %s", kind)
	}
	if len(recipients) == 0 {
		return nil, fmt.Errorf("correo %s sin destinatarios", kind)
	}
	var subject, body bytes.Buffer
	if err := tpl.subject.Execute(&subject, payload); err != nil {
		return nil, fmt.Errorf("render subject %s: %w", kind, err)
	}
	if err := tpl.body.Execute(&body, payload); err != nil {
		return nil, fmt.Errorf("render body %s: %w", kind, err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", d.from)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", subject.String())
	m.SetBody("text/html", body.String())
	return m, nil
}

// LogDispatcher solo registra la notificación; se usa cuando no hay SMTP configurado.
type LogDispatcher struct {
	log zerolog.Logger
}

// NewLogDispatcher construye el despachador de solo log.
func NewLogDispatcher(log zerolog.Logger) *LogDispatcher {
	return &LogDispatcher{log: log}
}

// Send implementa inspection.NotificationDispatcher.
func (d *LogDispatcher) Send(ctx context.Context, kind inspection.NotificationKind, recipients []string, payload map[string]string) error {
	d.log.Info().
		Str("kind", string(kind)).
		Strs("to", recipients).
		Str("inspection_id", payload["inspection_id"]).
		Msg("notificación (SMTP no configurado)")
	return nil
}
