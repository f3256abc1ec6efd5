package gmail

import (
	"encoding/base64"
	"fmt"
	"mime"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DraftRequest carries the fields of an outgoing draft.
type DraftRequest struct {
	To      string `json:"to" validate:"required,email"`
	From    string `json:"from,omitempty" validate:"omitempty,email"`
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body" validate:"required"`
}

// Validate validates the DraftRequest using the validator.
func (r *DraftRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// BuildMessage assembles the RFC 2822 message and encodes it the way
// the drafts endpoint expects, base64 over the URL-safe alphabet.
// Subjects with characters outside ASCII are Q-encoded so they survive
// transport.
func BuildMessage(req DraftRequest) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("To: %s\r\n", req.To))
	if req.From != "" {
		sb.WriteString(fmt.Sprintf("From: %s\r\n", req.From))
	}
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", req.Subject)))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(req.Body)

	return base64.URLEncoding.EncodeToString([]byte(sb.String()))
}
