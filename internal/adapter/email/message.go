package email

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net/mail"
	"strings"
	"time"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
)

// buildMessage renders msg as a multipart/alternative RFC 5322 message.
// Category and tags travel as X- headers for downstream unsubscribe handling.
func buildMessage(from mail.Address, msg domain.EmailMessage, now time.Time) ([]byte, error) {
	to, err := mail.ParseAddress(msg.To)
	if err != nil {
		return nil, fmt.Errorf("recipient %q: %w", msg.To, err)
	}

	boundary, err := newBoundary()
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	header := func(k, v string) { fmt.Fprintf(&b, "%s: %s\r\n", k, v) }

	header("From", from.String())
	header("To", to.String())
	header("Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	header("Date", now.Format(time.RFC1123Z))
	header("MIME-Version", "1.0")
	header("X-Category", string(msg.Category))
	if len(msg.Tags) > 0 {
		header("X-Tags", strings.Join(msg.Tags, ","))
	}
	header("Content-Type", fmt.Sprintf("multipart/alternative; boundary=%q", boundary))
	b.WriteString("\r\n")

	if err := writePart(&b, boundary, "text/plain; charset=utf-8", msg.Text); err != nil {
		return nil, err
	}
	if msg.HTML != "" {
		if err := writePart(&b, boundary, "text/html; charset=utf-8", msg.HTML); err != nil {
			return nil, err
		}
	}
	fmt.Fprintf(&b, "--%s--\r\n", boundary)

	return b.Bytes(), nil
}

func writePart(b *bytes.Buffer, boundary, contentType, body string) error {
	fmt.Fprintf(b, "--%s\r\n", boundary)
	fmt.Fprintf(b, "Content-Type: %s\r\n", contentType)
	b.WriteString("Content-Transfer-Encoding: quoted-printable\r\n\r\n")

	w := quotedprintable.NewWriter(b)
	if _, err := w.Write([]byte(body)); err != nil {
		return fmt.Errorf("encode body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("encode body: %w", err)
	}
	b.WriteString("\r\n")
	return nil
}

func newBoundary() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate boundary: %w", err)
	}
	return "b_" + hex.EncodeToString(buf), nil
}
