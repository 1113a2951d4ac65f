package email

import "fmt"

const verificationSubject = "Verify your email address"

// BuildVerificationEmail renders the account verification message. The link
// embeds a single-use token that expires after 24 hours.
func BuildVerificationEmail(name, verifyLink string) Message {
	body := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">Welcome to Resume Builder, %s!</h2>
  <p>Thanks for signing up. Please confirm your email address to activate your account.</p>
  <p style="margin: 24px 0;">
    <a href="%s" style="background-color: #2563eb; color: #ffffff; padding: 12px 24px;
       text-decoration: none; border-radius: 6px; display: inline-block;">
      Verify Email
    </a>
  </p>
  <p>Or paste this link into your browser:</p>
  <p><a href="%s">%s</a></p>
  <p style="color: #6b7280; font-size: 13px;">This link expires in 24 hours.
     If you did not create an account, you can safely ignore this email.</p>
</div>`, name, verifyLink, verifyLink, verifyLink)

	return Message{
		Subject:  verificationSubject,
		HTMLBody: body,
	}
}
