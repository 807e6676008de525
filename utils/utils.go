package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const base36Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateCertificateNumber builds a certificate number of the form
// SF-{year}-{base36 timestamp}-{4 random base36 chars}, uppercased.
func GenerateCertificateNumber() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = base36Chars[rng.Intn(len(base36Chars))]
	}

	return fmt.Sprintf("SF-%d-%s-%s", time.Now().Year(), ts, string(suffix))
}

// GenerateVerificationCode returns 12 characters from [A-Z0-9] grouped in
// fours, e.g. "A3F9-K2LM-0XQZ".
func GenerateVerificationCode() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var b strings.Builder
	for i := 0; i < 12; i++ {
		if i > 0 && i%4 == 0 {
			b.WriteByte('-')
		}
		b.WriteByte(base36Chars[rng.Intn(len(base36Chars))])
	}
	return b.String()
}
