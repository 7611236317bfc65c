package email

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewMailer(t *testing.T) {
	logger := discardLogger()

	t.Run("noop provider sends nothing and never fails", func(t *testing.T) {
		m, err := NewMailer(MailerConfig{Provider: "noop"}, logger)
		require.NoError(t, err)
		require.NoError(t, m.Send(context.Background(), "ana@example.com", "Confirmare", "<p>x</p>", "x"))
	})

	t.Run("empty provider defaults to noop", func(t *testing.T) {
		m, err := NewMailer(MailerConfig{}, logger)
		require.NoError(t, err)
		require.NotNil(t, m)
	})

	t.Run("unknown provider is rejected", func(t *testing.T) {
		_, err := NewMailer(MailerConfig{Provider: "smtp"}, logger)
		require.Error(t, err)
	})
}

func TestFormatSource(t *testing.T) {
	assert.Equal(t, "no-reply@credinta.live", formatSource("", "no-reply@credinta.live"))
	assert.Equal(t, "Calarași Warriors <no-reply@credinta.live>",
		formatSource("Calarași Warriors", "no-reply@credinta.live"))
}
