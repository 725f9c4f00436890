package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"
)

var (
	// ErrSendNotPermitted is returned when no SMTP transport is configured
	ErrSendNotPermitted = errors.New("sending email is not permitted")
	// ErrSigningNotConfigured is returned when a signed message is requested without a certificate
	ErrSigningNotConfigured = errors.New("email signing certificate is not configured")
)

// Attachment is a file part to add to a message
type Attachment struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

// MessageArgs describes the message to assemble
type MessageArgs struct {
	To          []string
	Cc          []string
	Bcc         []string
	From        string
	Sender      string
	ReplyTo     string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
	Sign        bool
}

// Mailer assembles and sends email messages
type Mailer interface {
	CanSendRequiredEmail() bool
	AssembleMessage(args MessageArgs) (*mail.Msg, error)
	Send(ctx context.Context, msg *mail.Msg, emailType string) error
}

// Config holds SMTP transport settings
type Config struct {
	Host            string
	Port            int
	Username        string
	Password        string
	From            string
	TLSPolicy       string
	SigningCertFile string
	SigningKeyFile  string
}

type sendFunc func(ctx context.Context, msgs ...*mail.Msg) error

// SMTPMailer sends mail through an SMTP server
type SMTPMailer struct {
	cfg     Config
	signing *tls.Certificate
	logger  zerolog.Logger
	send    sendFunc
}

// New creates an SMTP mailer, loading the signing key pair when configured
func New(cfg Config, logger zerolog.Logger) (*SMTPMailer, error) {
	m := &SMTPMailer{cfg: cfg, logger: logger.With().Str("component", "mailer").Logger()}
	m.send = m.dialAndSend

	if cfg.SigningCertFile != "" || cfg.SigningKeyFile != "" {
		pair, err := tls.LoadX509KeyPair(cfg.SigningCertFile, cfg.SigningKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load signing certificate: %w", err)
		}
		m.signing = &pair
	}

	return m, nil
}

// WithSigningCertificate sets the key pair used for S/MIME signing
func (m *SMTPMailer) WithSigningCertificate(cert *tls.Certificate) *SMTPMailer {
	m.signing = cert
	return m
}

// CanSendRequiredEmail reports whether a transport and default sender are configured
func (m *SMTPMailer) CanSendRequiredEmail() bool {
	return m.cfg.Host != "" && m.cfg.From != ""
}

// AssembleMessage builds a message, signing it when requested
func (m *SMTPMailer) AssembleMessage(args MessageArgs) (*mail.Msg, error) {
	msg := mail.NewMsg()

	from := args.From
	if from == "" {
		from = m.cfg.From
	}
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid from address %q: %w", from, err)
	}
	if err := msg.To(args.To...); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	if len(args.Cc) > 0 {
		if err := msg.Cc(args.Cc...); err != nil {
			return nil, fmt.Errorf("invalid cc address: %w", err)
		}
	}
	if len(args.Bcc) > 0 {
		if err := msg.Bcc(args.Bcc...); err != nil {
			return nil, fmt.Errorf("invalid bcc address: %w", err)
		}
	}
	if args.ReplyTo != "" {
		if err := msg.ReplyTo(args.ReplyTo); err != nil {
			return nil, fmt.Errorf("invalid reply-to address %q: %w", args.ReplyTo, err)
		}
	}
	if args.Sender != "" {
		msg.SetGenHeader(mail.Header("Sender"), args.Sender)
	}

	msg.Subject(args.Subject)
	msg.SetBodyString(mail.TypeTextHTML, args.HTMLBody)

	for _, a := range args.Attachments {
		opts := []mail.FileOption{mail.WithFileEncoding(mail.EncodingB64)}
		if a.ContentType != "" {
			opts = append(opts, mail.WithFileContentType(mail.ContentType(a.ContentType)))
		}
		if err := msg.AttachReader(a.Name, a.Reader, opts...); err != nil {
			return nil, fmt.Errorf("failed to attach %s: %w", a.Name, err)
		}
	}

	if args.Sign {
		if m.signing == nil {
			return nil, ErrSigningNotConfigured
		}
		if err := msg.SignWithTLSCertificate(m.signing); err != nil {
			return nil, fmt.Errorf("failed to sign message: %w", err)
		}
	}

	return msg, nil
}

// Send delivers the message. emailType tags the message for logging.
func (m *SMTPMailer) Send(ctx context.Context, msg *mail.Msg, emailType string) error {
	if !m.CanSendRequiredEmail() {
		return ErrSendNotPermitted
	}

	msg.SetGenHeader(mail.Header("X-Email-Type"), emailType)
	if err := m.send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send %s email: %w", emailType, err)
	}

	m.logger.Debug().Str("email_type", emailType).Msg("email sent")
	return nil
}

func (m *SMTPMailer) dialAndSend(ctx context.Context, msgs ...*mail.Msg) error {
	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(tlsPolicy(m.cfg.TLSPolicy)),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msgs...)
}

func tlsPolicy(name string) mail.TLSPolicy {
	switch strings.ToLower(name) {
	case "mandatory":
		return mail.TLSMandatory
	case "none":
		return mail.NoTLS
	default:
		return mail.TLSOpportunistic
	}
}

// SplitAddresses splits a ";" or "," separated address setting
func SplitAddresses(s string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == ',' }) {
		if addr := strings.TrimSpace(part); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}
