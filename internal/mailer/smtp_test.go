package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okorolev/auth-server/internal/config"
)

func TestNewSMTP(t *testing.T) {
	m, err := NewSMTP(config.SMTP{
		Host: "localhost",
		Port: 1025,
		From: "no-reply@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, m)
	require.Equal(t, "no-reply@example.com", m.from)
}

func TestNewSMTP_WithAuth(t *testing.T) {
	m, err := NewSMTP(config.SMTP{
		Host:     "smtp.example.com",
		Port:     587,
		User:     "mailer",
		Password: "secret",
		From:     "auth@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, m)
}

func TestSend_InvalidRecipient(t *testing.T) {
	m, err := NewSMTP(config.SMTP{
		Host: "localhost",
		Port: 1025,
		From: "no-reply@example.com",
	})
	require.NoError(t, err)

	err = m.Send(context.Background(), "not-an-address", "subject", "<p>body</p>")
	require.Error(t, err)
}
