package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
}

func NewEmailService(apiKey, from, fromName string) EmailService {
	return &emailService{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
	}
}

func (s *emailService) send(_ context.Context, toEmail, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendRequestReceivedNotification(ctx context.Context, alumniEmail, alumniName, studentName, requestType string) error {
	body := fmt.Sprintf("Hello %s,\n\n%s has sent you a mentorship request (%s).\n\nLog in to respond.\n\nBest regards,\nThe MentorHub Team",
		alumniName, studentName, requestType)
	return s.send(ctx, alumniEmail, alumniName, "New Mentorship Request", body)
}

func (s *emailService) SendRequestAcceptedNotification(ctx context.Context, studentEmail, studentName, alumniName, responseMessage, meetingLink string) error {
	body := fmt.Sprintf("Hello %s,\n\n%s accepted your mentorship request.\n\nMessage: %s", studentName, alumniName, responseMessage)
	if meetingLink != "" {
		body += fmt.Sprintf("\n\nMeeting link: %s", meetingLink)
	}
	body += "\n\nBest regards,\nThe MentorHub Team"
	return s.send(ctx, studentEmail, studentName, "Mentorship Request Accepted", body)
}

func (s *emailService) SendRequestRejectedNotification(ctx context.Context, studentEmail, studentName, alumniName, reason string) error {
	body := fmt.Sprintf("Hello %s,\n\n%s was unable to take your mentorship request at this time.", studentName, alumniName)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nBest regards,\nThe MentorHub Team"
	return s.send(ctx, studentEmail, studentName, "Mentorship Request Update", body)
}
