package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// sendEmail delivers a multipart (plain + HTML) message via SMTP. When the
// SMTP env vars are not set it logs a mock send instead, so local dev and
// tests never need a mail server.
func sendEmail(recipient, subject, plainBody, htmlBody string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := os.Getenv("SMTP_FROM_NAME")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] to:%s subject:%q", recipient, subject)
		return nil
	}

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)
	boundary := "----=_HORIZON_EMAIL_BOUNDARY"

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipient))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	if err := smtp.SendMail(addr, auth, smtpUser, []string{recipient}, []byte(sb.String())); err != nil {
		log.Printf("failed to send email to %s: %v", recipient, err)
		return err
	}
	return nil
}

func safeLine(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
}

func htmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return replacer.Replace(s)
}

func emailCard(title, inner string) string {
	return fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { background:#f5f7fb; font-family:Arial, Helvetica, sans-serif; color:#222; }
.container { max-width:700px; margin:20px auto; }
.card { background:#fff; border:1px solid #e6eef6; padding:24px; border-radius:8px; }
.label { font-weight:700; width:160px; display:inline-block; vertical-align:top; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
%s
  </div>
</div>
</body>
</html>`, htmlEscape(title), inner)
}

// SendBookingConfirmationEmail notifies a customer that their booking was
// created and what it costs.
func SendBookingConfirmationEmail(recipient, guestName, bookingRef, roomType, checkIn, checkOut string, nights int, total float64, currency string) error {
	guestName = safeLine(guestName)
	bookingRef = safeLine(bookingRef)

	subject := fmt.Sprintf("Booking Received - %s", bookingRef)

	plainBody := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Thank you for booking with us! Here are your booking details:\n\n"+
			"Booking Reference: %s\n"+
			"Room Type: %s\n"+
			"Check-In: %s\n"+
			"Check-Out: %s\n"+
			"Nights: %d\n"+
			"Total: %.2f %s\n\n"+
			"Your booking will be confirmed once payment is completed.\n\n"+
			"Best regards,\nHorizon Hotel",
		guestName, bookingRef, roomType, checkIn, checkOut, nights, total, currency,
	)

	inner := fmt.Sprintf(`    <h2>Booking Received</h2>
    <p>Dear %s,</p>
    <p>Thank you for choosing our hotel. Below are your booking details:</p>
    <p><span class="label">Booking Reference:</span> %s</p>
    <p><span class="label">Room Type:</span> %s</p>
    <p><span class="label">Check-In:</span> %s</p>
    <p><span class="label">Check-Out:</span> %s</p>
    <p><span class="label">Nights:</span> %d</p>
    <p><span class="label">Total:</span> %.2f %s</p>
    <p>Your booking will be confirmed once payment is completed.</p>
    <p>Best regards,<br>Horizon Hotel</p>`,
		htmlEscape(guestName), htmlEscape(bookingRef), htmlEscape(roomType),
		htmlEscape(checkIn), htmlEscape(checkOut), nights, total, htmlEscape(currency),
	)

	return sendEmail(recipient, subject, plainBody, emailCard("Booking Received", inner))
}

// SendPaymentReceiptEmail acknowledges a recorded payment and states the
// remaining balance.
func SendPaymentReceiptEmail(recipient, guestName, bookingRef string, amount, paid, outstanding float64, currency string) error {
	guestName = safeLine(guestName)
	bookingRef = safeLine(bookingRef)

	subject := fmt.Sprintf("Payment Received - %s", bookingRef)

	plainBody := fmt.Sprintf(
		"Dear %s,\n\n"+
			"We received your payment of %.2f %s for booking %s.\n\n"+
			"Paid so far: %.2f %s\n"+
			"Outstanding balance: %.2f %s\n\n"+
			"Best regards,\nHorizon Hotel",
		guestName, amount, currency, bookingRef, paid, currency, outstanding, currency,
	)

	inner := fmt.Sprintf(`    <h2>Payment Received</h2>
    <p>Dear %s,</p>
    <p>We received your payment of <strong>%.2f %s</strong> for booking <strong>%s</strong>.</p>
    <p><span class="label">Paid so far:</span> %.2f %s</p>
    <p><span class="label">Outstanding:</span> %.2f %s</p>
    <p>Best regards,<br>Horizon Hotel</p>`,
		htmlEscape(guestName), amount, htmlEscape(currency), htmlEscape(bookingRef),
		paid, htmlEscape(currency), outstanding, htmlEscape(currency),
	)

	return sendEmail(recipient, subject, plainBody, emailCard("Payment Received", inner))
}

// SendStatusChangeEmail tells a customer their booking moved to a new
// lifecycle state.
func SendStatusChangeEmail(recipient, guestName, bookingRef, newStatus string) error {
	guestName = safeLine(guestName)
	bookingRef = safeLine(bookingRef)
	newStatus = safeLine(newStatus)

	subject := fmt.Sprintf("Booking %s - %s", newStatus, bookingRef)

	plainBody := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your booking %s is now %s.\n\n"+
			"If you have any questions, feel free to contact us.\n\n"+
			"Best regards,\nHorizon Hotel",
		guestName, bookingRef, newStatus,
	)

	inner := fmt.Sprintf(`    <h2>Booking Update</h2>
    <p>Dear %s,</p>
    <p>Your booking <strong>%s</strong> is now <strong>%s</strong>.</p>
    <p>If you have any questions, feel free to contact us.</p>
    <p>Best regards,<br>Horizon Hotel</p>`,
		htmlEscape(guestName), htmlEscape(bookingRef), htmlEscape(newStatus),
	)

	return sendEmail(recipient, subject, plainBody, emailCard("Booking Update", inner))
}
