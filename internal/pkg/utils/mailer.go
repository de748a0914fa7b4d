package utils

import (
	"fmt"
	"phonebook-service/internal/pkg/constvars"
	"phonebook-service/internal/pkg/dto/requests"
)

func BuildVerificationEmailPayload(fromEmail, toEmail, verificationLink string) *requests.EmailPayload {
	htmlCode := fmt.Sprintf(constvars.EmailBodyVerificationHTMLFormat, verificationLink)

	return &requests.EmailPayload{
		Subject:  constvars.EmailVerificationSubject,
		From:     fromEmail,
		To:       []string{toEmail},
		HTMLCode: htmlCode,
	}
}
