package main

import (
	"fmt"

	"chebplace/internal/domain/feedback"
	"chebplace/internal/mailer"
)

// background runs fn on its own goroutine; run waits for these before the
// process exits.
func (app *application) background(fn func()) {
	app.wg.Add(1)

	go func() {
		defer app.wg.Done()

		defer func() {
			if err := recover(); err != nil {
				app.logger.Errorw("background task panicked", "error", fmt.Sprint(err))
			}
		}()

		fn()
	}()
}

// notifyFeedback mails the site admin about new feedback when a mailer and
// a recipient are configured.
func (app *application) notifyFeedback(fb feedback.Feedback) {
	if app.mailer == nil || app.config.mail.notifyEmail == "" {
		return
	}

	app.background(func() {
		data := struct {
			feedback.Feedback
			Username string
		}{
			Feedback: fb,
			Username: "admin",
		}

		err := app.mailer.Send(mailer.FeedbackNotificationTemplate, "admin", app.config.mail.notifyEmail, data)
		if err != nil {
			app.logger.Errorw("failed to send feedback notification", "feedback_id", fb.ID, "error", err.Error())
			return
		}
		app.logger.Infow("feedback notification sent", "feedback_id", fb.ID)
	})
}
