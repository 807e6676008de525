package utils

import (
	"fmt"
	"log"

	"skillforge/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

func sendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendgridApiKey == "" {
		log.Printf("SENDGRID_API_KEY not set, skipping email to %s", toEmail)
		return nil
	}

	from := mail.NewEmail("SkillForge", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Email to %s rejected with status %d", toEmail, resp.StatusCode)
		return fmt.Errorf("email rejected, status %d", resp.StatusCode)
	}
	return nil
}

// SendEnrollmentApprovedEmail notifies a student that the teacher approved
// their enrollment.
func SendEnrollmentApprovedEmail(email, userName, courseTitle string) error {
	subject := "Enrollment Approved - SkillForge"
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; padding: 20px;">
				<h2>Hi %s,</h2>
				<p>Your enrollment in <b>%s</b> has been approved. You can now access the course and your attendance will count towards your certificate.</p>
				<p style="color: #999; font-size: 12px;">SkillForge Training</p>
			</body>
		</html>
	`, userName, courseTitle)

	return sendEmail(email, userName, subject, body)
}

// SendCertificateEmail notifies a student that their certificate is ready.
func SendCertificateEmail(email, userName, courseTitle, certNumber string) error {
	subject := "Your Certificate is Ready - SkillForge"
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; padding: 20px;">
				<h2>Congratulations %s!</h2>
				<p>Your certificate for <b>%s</b> has been issued.</p>
				<p>Certificate number: <b>%s</b></p>
				<p style="color: #999; font-size: 12px;">SkillForge Training</p>
			</body>
		</html>
	`, userName, courseTitle, certNumber)

	return sendEmail(email, userName, subject, body)
}
