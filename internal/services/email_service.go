package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"crmlite/internal/models"
)

// EmailService sends the welcome mail a freshly promoted client
// receives. It implements Notifier; lead creation sends nothing.
type EmailService interface {
	Notifier
	SendWelcomeEmail(email, name string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendWelcomeEmail(email, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome aboard!")

	body := fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Your account with us is now active.</p>
		<p>Your account manager will reach out shortly with next steps.</p>
		<p>Best regards,<br>The Team</p>
	`, name)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}

func (s *emailService) LeadCreated(_ *models.Lead) error { return nil }

func (s *emailService) LeadConverted(_ *models.Lead, client *models.Client) error {
	return s.SendWelcomeEmail(client.Email, client.Name)
}
