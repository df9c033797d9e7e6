package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"pramaansetu/config"
)

// SendEmail sends one HTML email through the configured SMTP account.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: PramaanSetu <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #0B3D91; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #222222; line-height: 1.6; }
			.content h2 { color: #0B3D91; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #0B3D91; margin: 20px 0; }
			.status-badge { display: inline-block; padding: 4px 8px; border-radius: 4px; font-size: 12px; font-weight: bold; color: white; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>PRAMAANSETU</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 PramaanSetu. All rights reserved.<br>
				This is an automated message. Please do not reply.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendWelcomeEmail greets a newly registered candidate.
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to PramaanSetu"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>PramaanSetu</strong>! Your account has been created.</p>
		<p>Upload your medical, police and caste certificates from your dashboard to start the verification process.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// SendReviewDecisionEmail notifies a candidate of a document review decision.
func SendReviewDecisionEmail(email, name, docType, status, remark string) {
	subject := fmt.Sprintf("Document Review Update: %s certificate %s", docType, status)

	statusColor := "#28A745"
	if status == "rejected" {
		statusColor = "#DC3545"
	}

	remarkBlock := ""
	if remark != "" {
		remarkBlock = fmt.Sprintf(`<div class="info-box"><strong>Reviewer remark:</strong> %s</div>`, remark)
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your <strong>%s</strong> certificate has been reviewed.</p>
		<div style="margin: 20px 0;">
			<span class="status-badge" style="background-color: %s;">%s</span>
		</div>
		%s
		<p>Login to your dashboard to see your current application status.</p>
	`, name, docType, statusColor, strings.ToUpper(status), remarkBlock)

	go SendEmail([]string{email}, subject, getEmailTemplate("Document Review Update", body))
}

// SendAppointmentEmail confirms a booked verification appointment.
func SendAppointmentEmail(email, name, centerName, centerType, date string) {
	subject := "Appointment Confirmed: " + centerName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your <strong>%s</strong> verification appointment has been booked.</p>
		<div class="info-box">
			<strong>Center:</strong> %s<br>
			<strong>Date:</strong> %s
		</div>
		<p>Please carry your original documents and a photo ID.</p>
	`, name, centerType, centerName, date)

	go SendEmail([]string{email}, subject, getEmailTemplate("Appointment Confirmed", body))
}

// SendAppointmentReminderEmail reminds a candidate about tomorrow's visit.
func SendAppointmentReminderEmail(email, name, centerName, date string) {
	subject := "Reminder: Appointment Tomorrow"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your verification appointment at <strong>%s</strong> on %s.</p>
		<p>Please arrive 15 minutes early with your original documents.</p>
	`, name, centerName, date)

	go SendEmail([]string{email}, subject, getEmailTemplate("Appointment Reminder", body))
}
