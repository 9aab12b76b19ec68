package template

import "fmt"

const codeExpiryNotice = "It expires in 10 minutes."

// VerificationCodeText renders the WhatsApp verification code message.
func VerificationCodeText(code string) string {
	return fmt.Sprintf("Your %s verification code is %s. %s", businessName, code, codeExpiryNotice)
}

// VerificationCodeHTML renders the email verification code message.
func VerificationCodeHTML(code string) string {
	return fmt.Sprintf(
		"<p>Your %s verification code is:</p><p style=\"font-size:24px;font-weight:bold;letter-spacing:2px\">%s</p><p>%s</p>",
		businessName, code, codeExpiryNotice,
	)
}
