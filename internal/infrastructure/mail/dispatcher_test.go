package mail

import (
	"bytes"
	"context"
	"errors"
	"mime"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/Inspecciones-api/internal/application/inspection"
)

func newTestDispatcher(t *testing.T, send func(msgs ...*gomail.Message) error) *SMTPDispatcher {
	t.Helper()
	d, err := NewSMTPDispatcher(SMTPConfig{Host: "localhost", Port: 25, From: "inspecciones@example.com"}, zerolog.Nop())
	require.NoError(t, err)
	d.send = send
	return d
}

func payload() map[string]string {
	return map[string]string{
		"inspection_id":     "5",
		"quote_num":         "Q100",
		"customer_name":     "ACME <LTDA>",
		"completed_by_name": "Ana Gómez",
		"sales_person_name": "Luis Pérez",
	}
}

func TestSend_VendedorAsignado(t *testing.T) {
	var sent []*gomail.Message
	d := newTestDispatcher(t, func(msgs ...*gomail.Message) error {
		sent = append(sent, msgs...)
		return nil
	})

	err := d.Send(context.Background(), inspection.NotifySalesPerson, []string{"luis@example.com"}, payload())

	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"luis@example.com"}, sent[0].GetHeader("To"))
	require.Len(t, sent[0].GetHeader("Subject"), 1)
	subject, err := new(mime.WordDecoder).DecodeHeader(sent[0].GetHeader("Subject")[0])
	require.NoError(t, err)
	assert.Equal(t, "Inspección 5 completada (cotización Q100)", subject)

	var raw bytes.Buffer
	_, err = sent[0].WriteTo(&raw)
	require.NoError(t, err)
	assert.Contains(t, raw.String(), "Hola Luis P")
	assert.Contains(t, raw.String(), "ACME &lt;LTDA&gt;")
}

func TestSend_EquipoConVariosDestinatarios(t *testing.T) {
	var sent []*gomail.Message
	d := newTestDispatcher(t, func(msgs ...*gomail.Message) error {
		sent = append(sent, msgs...)
		return nil
	})

	err := d.Send(context.Background(), inspection.NotifySalesTeam, []string{"a@example.com", "b@example.com"}, payload())

	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, sent[0].GetHeader("To"))
}

func TestSend_Errores(t *testing.T) {
	d := newTestDispatcher(t, func(msgs ...*gomail.Message) error { return errors.New("535 auth failed") })

	assert.ErrorContains(t, d.Send(context.Background(), inspection.NotifySalesTeam, []string{"a@example.com"}, payload()), "535")
	assert.Error(t, d.Send(context.Background(), inspection.NotificationKind("otra"), []string{"a@example.com"}, payload()))
	assert.Error(t, d.Send(context.Background(), inspection.NotifySalesTeam, nil, payload()))
}

func TestSend_RespetaElTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	d := newTestDispatcher(t, func(msgs ...*gomail.Message) error {
		<-release
		return nil
	})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := d.Send(ctx, inspection.NotifySalesTeam, []string{"a@example.com"}, payload())

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
