package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"retail-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

func TestNew_PicksImplementation(t *testing.T) {
	log := zap.NewNop()

	m, err := New(utils.EmailConfig{}, log)
	require.NoError(t, err)
	_, isLog := m.(*logMailer)
	assert.True(t, isLog)

	m, err = New(utils.EmailConfig{Host: "smtp.example.com", Port: 587, User: "shop", Password: "secret"}, log)
	require.NoError(t, err)
	_, isSMTP := m.(*smtpMailer)
	assert.True(t, isSMTP)
}

func newTestSMTPMailer(t *testing.T) *smtpMailer {
	t.Helper()
	m, err := NewSMTPMailer(utils.EmailConfig{
		Host: "smtp.example.com",
		Port: 2525,
		From: "shop@example.com",
	}, zap.NewNop())
	require.NoError(t, err)
	return m.(*smtpMailer)
}

func render(t *testing.T, msg *mail.Msg) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestSMTPMailer_Send(t *testing.T) {
	m := newTestSMTPMailer(t)

	var sent []*mail.Msg
	m.send = func(ctx context.Context, msgs ...*mail.Msg) error {
		sent = append(sent, msgs...)
		return nil
	}

	require.NoError(t, m.Send(context.Background(), "user@example.com", "Hello", "Body"))
	require.Len(t, sent, 1)

	raw := render(t, sent[0])
	assert.Contains(t, raw, "From: <shop@example.com>")
	assert.Contains(t, raw, "To: <user@example.com>")
	assert.Contains(t, raw, "Subject: Hello")
	assert.Contains(t, raw, "Body")
}

func TestSMTPMailer_EncodesNonASCIISubject(t *testing.T) {
	m := newTestSMTPMailer(t)

	var sent *mail.Msg
	m.send = func(ctx context.Context, msgs ...*mail.Msg) error {
		sent = msgs[0]
		return nil
	}

	require.NoError(t, m.Send(context.Background(), "user@example.com", "Заказ оформлен", "Спасибо"))
	raw := render(t, sent)
	assert.NotContains(t, raw, "Заказ оформлен")
	assert.Contains(t, raw, "Subject: =?UTF-8?")
}

func TestSMTPMailer_SendErrors(t *testing.T) {
	m := newTestSMTPMailer(t)
	m.send = func(context.Context, ...*mail.Msg) error { return errors.New("refused") }

	assert.Error(t, m.Send(context.Background(), "user@example.com", "Hello", "Body"))
	assert.Error(t, m.Send(context.Background(), "not an address", "Hello", "Body"))
}
