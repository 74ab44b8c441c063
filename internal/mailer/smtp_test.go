package mailer

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/mail.v2"
)

type fakeSender struct {
	failures int
	calls    int
	sent     []*mail.Message
}

func (f *fakeSender) DialAndSend(m ...*mail.Message) error {
	f.calls++
	if f.calls <= f.failures {
		return errors.New("connection refused")
	}
	f.sent = append(f.sent, m...)
	return nil
}

type notification struct {
	Username  string
	Name      string
	Contact   *string
	Message   string
	CreatedAt time.Time
}

func TestSMTPMailer_RendersFeedbackNotification(t *testing.T) {
	fake := &fakeSender{}
	m := &SMTPMailer{sender: fake, fromEmail: "noreply@cheb.place"}

	contact := "+7 900 000-00-00"
	err := m.Send(FeedbackNotificationTemplate, "Admin", "admin@cheb.place", notification{
		Username:  "Admin",
		Name:      "Olga",
		Contact:   &contact,
		Message:   "The map <b>pin</b> is off",
		CreatedAt: time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, fake.sent, 1)

	msg := fake.sent[0]
	assert.Equal(t, []string{"New feedback from Olga"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	assert.True(t, strings.Contains(raw, "2024-05-01 10:30"))
	assert.False(t, strings.Contains(raw, "<b>pin</b>"), "user input is escaped")
}

func TestSMTPMailer_Retries(t *testing.T) {
	fake := &fakeSender{failures: 2}
	m := &SMTPMailer{sender: fake, fromEmail: "noreply@cheb.place"}

	err := m.Send(FeedbackNotificationTemplate, "Admin", "admin@cheb.place", notification{Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, 3, fake.calls)
}

func TestSMTPMailer_GivesUp(t *testing.T) {
	fake := &fakeSender{failures: 10}
	m := &SMTPMailer{sender: fake, fromEmail: "noreply@cheb.place"}

	err := m.Send(FeedbackNotificationTemplate, "Admin", "admin@cheb.place", notification{Name: "x"})
	assert.Error(t, err)
	assert.Equal(t, maxRetires, fake.calls)
}

func TestNewSMTP_RequiresHostAndSender(t *testing.T) {
	_, err := NewSMTP("", 587, "", "", "a@b.c")
	assert.Error(t, err)
	_, err = NewSMTP("smtp.example.com", 587, "", "", "")
	assert.Error(t, err)
}
