package mail

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/e-Xiua/admin-events-api/services"
)

// MailService sends notification commands as plain-text emails over SMTP.
type MailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailService() *MailService {
	host := os.Getenv("SMTP_HOST")
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASSWORD")
	return &MailService{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
	}
}

// Send delivers one notification command to its recipient.
func (m *MailService) Send(command services.NotificationCommand) error {
	subject, body := composeNotification(command)

	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", command.Recipient)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", body)
	return m.dialer.DialAndSend(message)
}

func composeNotification(command services.NotificationCommand) (subject, body string) {
	switch command.Intent {
	case services.IntentCancellation:
		subject = "Event Cancelled"
		body = fmt.Sprintf("We regret to inform you that the event %s was cancelled.", command.EventTitle)
	default:
		subject = "Event Modified"
		body = fmt.Sprintf("Dear user, please be advised that the event %s was modified.\nThank you.", command.EventTitle)
	}
	return subject, body
}
