package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"net/textproto"
	"strconv"
	"time"
)

// Transport delivers one raw message.
type Transport interface {
	Deliver(ctx context.Context, from string, to []string, data []byte) error
}

// SMTPTransport delivers over SMTP with STARTTLS when the server offers it.
type SMTPTransport struct {
	host     string
	addr     string
	username string
	password string
	timeout  time.Duration
}

// NewSMTPTransport creates an SMTP transport. Empty credentials disable AUTH.
func NewSMTPTransport(host string, port int, username, password string, timeout time.Duration) *SMTPTransport {
	return &SMTPTransport{
		host:     host,
		addr:     net.JoinHostPort(host, strconv.Itoa(port)),
		username: username,
		password: password,
		timeout:  timeout,
	}
}

// Deliver runs one SMTP session. The session is bounded by ctx and the
// transport timeout, whichever ends first.
func (t *SMTPTransport) Deliver(ctx context.Context, from string, to []string, data []byte) error {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", t.addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", t.addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, t.host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: t.host, MinVersion: tls.VersionTLS12}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}
	if t.username != "" {
		if err := c.Auth(smtp.PlainAuth("", t.username, t.password, t.host)); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := c.Mail(from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return fmt.Errorf("rcpt to: %w", err)
		}
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write data: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("end data: %w", err)
	}

	// The message is accepted once DATA is closed; a failed QUIT is not a
	// delivery failure.
	_ = c.Quit()
	return nil
}

// LogTransport accepts every message and only logs it. It backs dry runs
// and environments without an SMTP host.
type LogTransport struct {
	log *slog.Logger
}

// NewLogTransport creates a LogTransport.
func NewLogTransport(log *slog.Logger) *LogTransport {
	return &LogTransport{log: log.With("transport", "log")}
}

// Deliver logs the envelope.
func (t *LogTransport) Deliver(ctx context.Context, from string, to []string, data []byte) error {
	for _, rcpt := range to {
		t.log.InfoContext(ctx, "email not sent (dry run)",
			slog.String("from", from),
			slog.String("to", rcpt),
			slog.Int("bytes", len(data)),
		)
	}
	return nil
}

// isPermanent reports whether a delivery error is an SMTP 5xx reply, which
// retrying cannot fix.
func isPermanent(err error) bool {
	var tp *textproto.Error
	if errors.As(err, &tp) {
		return tp.Code >= 500 && tp.Code < 600
	}
	return false
}
