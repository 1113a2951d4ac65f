package services

import (
	"context"
	"fmt"
	"strings"

	"resumebuilder_backend/internal/models"
	"resumebuilder_backend/internal/pkg/email"
	"resumebuilder_backend/internal/services/dto"
	"resumebuilder_backend/pkg/apperrors"
)

const maxAttachmentSize = 10 << 20 // 10MB

type EmailService interface {
	SendResume(ctx context.Context, user *models.User, req *dto.SendResumeRequest, pdf *dto.UploadFile) error
}

type EmailServiceImpl struct {
	mailer email.Sender
}

func NewEmailService(mailer email.Sender) EmailService {
	return &EmailServiceImpl{mailer: mailer}
}

// SendResume mails the exported PDF to the recipient on behalf of the user.
// Unlike the verification email this is synchronous: the caller needs to know
// whether delivery was handed off.
func (s *EmailServiceImpl) SendResume(ctx context.Context, user *models.User, req *dto.SendResumeRequest, pdf *dto.UploadFile) error {
	if pdf == nil || len(pdf.Data) == 0 {
		return apperrors.NewBadRequestError("PDF file is required")
	}
	if int64(len(pdf.Data)) > maxAttachmentSize {
		return apperrors.ErrFileTooLarge
	}
	if !strings.HasSuffix(strings.ToLower(pdf.Filename), ".pdf") {
		return apperrors.ErrInvalidFileType
	}

	subject := req.Subject
	if subject == "" {
		subject = fmt.Sprintf("%s shared a resume with you", user.Name)
	}

	msg := email.Message{
		To:       req.RecipientEmail,
		Subject:  subject,
		HTMLBody: buildResumeShareBody(user.Name, req.Message),
		Attachments: []email.Attachment{{
			Filename:    pdf.Filename,
			ContentType: "application/pdf",
			Data:        pdf.Data,
		}},
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		return apperrors.UpstreamError(err, "email", "Failed to send email")
	}
	return nil
}

func buildResumeShareBody(senderName, message string) string {
	note := ""
	if message != "" {
		note = fmt.Sprintf(`<p style="white-space: pre-line;">%s</p>`, message)
	}
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <p>%s has shared their resume with you. You can find it attached to this email.</p>
  %s
  <p style="color: #6b7280; font-size: 13px;">Sent via Resume Builder.</p>
</div>`, senderName, note)
}
