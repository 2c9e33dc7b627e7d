package service

import (
	"crypto/tls"
	"fmt"
	"os"
	"strconv"

	"planboard/model"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
	sender string
}

func NewEmailService() *EmailService {
	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	sender := os.Getenv("SMTP_SENDER_NAME")

	port, _ := strconv.Atoi(portStr)

	dialer := gomail.NewDialer(host, port, user, pass)

	// Fix for common TLS issues (optional but recommended for dev)
	dialer.TLSConfig = &tls.Config{InsecureSkipVerify: true}

	return &EmailService{
		dialer: dialer,
		sender: sender,
	}
}

func subjectFor(purpose model.OTPPurpose) string {
	if purpose == model.OTPPurposePasswordReset {
		return "Your Password Reset Code"
	}
	return "Your Verification Code"
}

// SendOTP mails the 6-digit code together with its reference so the user
// can match the mail against the form they are filling in.
func (s *EmailService) SendOTP(toEmail string, code, reference string, purpose model.OTPPurpose) error {
	m := gomail.NewMessage()

	m.SetHeader("From", fmt.Sprintf("%s <%s>", s.sender, s.dialer.Username))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subjectFor(purpose))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px;">
			<h2>Hello!</h2>
			<p>Your one-time code is:</p>
			<h1 style="color: #2d89ef; letter-spacing: 5px;">%s</h1>
			<p>Reference: <strong>%s</strong></p>
			<p>This code will expire in 2 minutes.</p>
			<p>If you did not request this, please ignore this email.</p>
		</div>
	`, code, reference)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return err
	}
	return nil
}
