package utils

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"phonebook-service/internal/pkg/constvars"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

// GenerateVerificationToken returns an unguessable single-use token.
func GenerateVerificationToken() string {
	return uuid.New().String()
}

// GenerateDefaultAvatarURL derives the default avatar reference from the email.
func GenerateDefaultAvatarURL(email string) string {
	sum := md5.Sum([]byte(strings.TrimSpace(email)))
	return fmt.Sprintf(constvars.AvatarGravatarURLFormat, hex.EncodeToString(sum[:]))
}

// GenerateAvatarFileName names the stored avatar after its owner plus the original filename.
func GenerateAvatarFileName(userID, originalFileName string) string {
	return fmt.Sprintf("%s_%s", userID, filepath.Base(originalFileName))
}

func GenerateVerificationLink(baseURL, token string) string {
	return fmt.Sprintf(constvars.VerificationLinkFormat, strings.TrimRight(baseURL, "/"), token)
}
