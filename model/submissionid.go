package model

import (
	"crypto/rand"
	"strings"
)

const (
	submissionIdPrefix  = "SUB-"
	submissionIdCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	submissionIdLength  = 8
)

// NewSubmissionId returns an identifier of the form SUB- followed by eight
// random uppercase letters. Uniqueness is not checked here; the store keeps
// a unique index on the field and retries inserts on collision.
func NewSubmissionId() string {
	buf := make([]byte, submissionIdLength)
	rand.Read(buf)

	var sb strings.Builder
	sb.Grow(len(submissionIdPrefix) + submissionIdLength)
	sb.WriteString(submissionIdPrefix)
	for _, b := range buf {
		sb.WriteByte(submissionIdCharset[int(b)%len(submissionIdCharset)])
	}
	return sb.String()
}
