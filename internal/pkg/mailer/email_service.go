package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendCancellationConfirmed(toEmail string) error
	SendDiscountApplied(toEmail string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendCancellationConfirmed(toEmail string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your cancellation request was received")

	body := `
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>We're sorry to see you go</h2>
			<p>Your subscription is now pending cancellation and will end at the close of your current billing period.</p>
			<p>You keep full access until then. Changed your mind? Just log in and resume your plan.</p>
		</div>
	`

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send cancellation confirmation to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Cancellation confirmation sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendDiscountApplied(toEmail string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your $10 discount is locked in")

	body := `
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Great to have you stay!</h2>
			<p>Your $10-off discount has been applied and you'll see it on your next invoice.</p>
			<p>No action needed.</p>
		</div>
	`

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send discount confirmation to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Discount confirmation sent to %s\n", toEmail)
	return nil
}
