package service

import (
	"fmt"

	mail "github.com/go-mail/mail/v2"

	"github.com/dravedigitals/careerguard/server/models"
)

// Mailer sends best-effort notification email over SMTP. A nil *Mailer is
// valid and sends nothing.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	to       string
}

func NewMailer(host string, port int, username, password, to string) *Mailer {
	if host == "" || to == "" {
		return nil
	}
	return &Mailer{host: host, port: port, username: username, password: password, to: to}
}

func (m *Mailer) To() string {
	if m == nil {
		return ""
	}
	return m.to
}

// NotifyContact emails the configured recipient about a new contact
// submission. Callers treat failure as non-fatal.
func (m *Mailer) NotifyContact(c *models.Contact) (subject string, err error) {
	if m == nil {
		return "", nil
	}
	subject = fmt.Sprintf("New contact from %s (%s)", c.Name, c.Service)
	msg := mail.NewMessage()
	msg.SetHeader("From", m.username)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", fmt.Sprintf(
		"Name: %s\nEmail: %s\nPhone: %s\nService: %s\nPriority: %s\n\n%s\n",
		c.Name, c.Email, c.Phone, c.Service, c.Priority, c.Message,
	))
	d := mail.NewDialer(m.host, m.port, m.username, m.password)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	if err := d.DialAndSend(msg); err != nil {
		return "", err
	}
	return subject, nil
}
