package mailer

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/mail.v2"
)

type sender interface {
	DialAndSend(m ...*mail.Message) error
}

type SMTPMailer struct {
	sender    sender
	fromEmail string
	backoff   time.Duration
}

func NewSMTP(host string, port int, username, password, fromEmail string) (*SMTPMailer, error) {
	if host == "" {
		return nil, errors.New("smtp host is required")
	}
	if fromEmail == "" {
		return nil, errors.New("sender address is required")
	}

	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = 10 * time.Second

	return &SMTPMailer{
		sender:    dialer,
		fromEmail: fromEmail,
		backoff:   time.Second,
	}, nil
}

// Send renders templateFile with data and delivers it, retrying with a
// linear backoff. The template must define "subject" and "body".
func (m *SMTPMailer) Send(templateFile, username, email string, data any) error {
	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		return err
	}

	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", data); err != nil {
		return err
	}

	body := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(body, "body", data); err != nil {
		return err
	}

	message := mail.NewMessage()
	message.SetAddressHeader("From", m.fromEmail, FromName)
	message.SetAddressHeader("To", email, username)
	message.SetHeader("Subject", subject.String())
	message.SetBody("text/html", body.String())

	var lastErr error
	for i := 0; i < maxRetires; i++ {
		if lastErr = m.sender.DialAndSend(message); lastErr == nil {
			return nil
		}
		time.Sleep(m.backoff * time.Duration(i+1))
	}

	return fmt.Errorf("failed to send email after %d attempts, error: %v", maxRetires, lastErr)
}
