package mailer

import "embed"

const (
	FromName                     = "Cheb Place"
	maxRetires                   = 3
	FeedbackNotificationTemplate = "feedback_notification.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, username, email string, data any) error
}
