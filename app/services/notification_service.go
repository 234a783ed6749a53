package services

import (
	"codemate/app/models"
	"codemate/config"
	"fmt"
	"net/smtp"
)

// NotificationService sends best-effort transactional email. Failures
// are returned to callers as diagnostics only; no primary operation
// depends on delivery.
type NotificationService struct {
	host     string
	port     int
	user     string
	password string
}

// NewNotificationService creates a notification service from the SMTP
// configuration
func NewNotificationService() *NotificationService {
	return &NotificationService{
		host:     config.SMTPHost,
		port:     config.SMTPPort,
		user:     config.SMTPUser,
		password: config.SMTPPassword,
	}
}

// SendWelcomeEmail greets a newly registered user
func (s *NotificationService) SendWelcomeEmail(user *models.User) error {
	subject := "Welcome to CodeMate!"
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\n"+
			"Thank you for joining our community of developers. "+
			"You can now discover other developers, send connection requests and chat with your matches.\r\n\r\n"+
			"Best regards,\r\nThe CodeMate Team\r\n",
		user.FirstName,
	)
	return s.send(user.EmailID, subject, body)
}

// SendRequestNotification tells a user about a new incoming connection
// request
func (s *NotificationService) SendRequestNotification(toUser, fromUser *models.User) error {
	subject := "New connection request on CodeMate"
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\n"+
			"%s is interested in connecting with you. "+
			"Log in to review the request.\r\n\r\n"+
			"Best regards,\r\nThe CodeMate Team\r\n",
		toUser.FirstName, fromUser.FirstName,
	)
	return s.send(toUser.EmailID, subject, body)
}

// SendPendingReminder nudges a user who has requests waiting for review
func (s *NotificationService) SendPendingReminder(toUser *models.User, pendingCount int) error {
	subject := "You have pending connection requests"
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\n"+
			"You received %d connection request(s) yesterday that are still waiting for your review.\r\n\r\n"+
			"Best regards,\r\nThe CodeMate Team\r\n",
		toUser.FirstName, pendingCount,
	)
	return s.send(toUser.EmailID, subject, body)
}

// send delivers one email over SMTP
func (s *NotificationService) send(to, subject, body string) error {
	if s.user == "" {
		return fmt.Errorf("SMTP is not configured")
	}

	message := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", s.user, to, subject, body)
	auth := smtp.PlainAuth("", s.user, s.password, s.host)
	addr := fmt.Sprintf("%s:%d", s.host, s.port)

	if err := smtp.SendMail(addr, auth, s.user, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email to %s: %v", to, err)
	}
	return nil
}
