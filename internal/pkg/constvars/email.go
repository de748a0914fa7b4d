package constvars

const (
	EmailVerificationSubject = "[PHONEBOOK] Verify Your Email"
)

const (
	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	EmailSendHTMLSubjectFormat       = "To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"
	EmailBodyVerificationHTMLFormat  = "<p>Welcome to Phonebook!</p><p>Please confirm your email address by following <a href=\"%s\">this link</a>.</p>"
)
