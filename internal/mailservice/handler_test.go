package mailservice

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSendPublishedNotification(t *testing.T) {
	mockMC := new(MockMessageConsumer)
	mockMailer := new(MockMailer)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())

	s := &MailService{
		mb:     mockMC,
		m:      mockMailer,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}

	s.SendPublishedNotification()

	assert.Eventually(t, func() bool {
		return mockMailer.IsCalled()
	}, 2*time.Second, 50*time.Millisecond, "expected the notification email to be sent")

	assert.Equal(t, "author@example.com", mockMailer.GetEmail(), "expected email to be sent to the post author")

	t.Cleanup(func() {
		s.Close()
	})
}
