package mailer

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

func newTestMailer(t *testing.T, cfg Config) (*SMTPMailer, *[]*mail.Msg) {
	m, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)

	var sent []*mail.Msg
	m.send = func(_ context.Context, msgs ...*mail.Msg) error {
		sent = append(sent, msgs...)
		return nil
	}
	return m, &sent
}

func render(t *testing.T, msg *mail.Msg) string {
	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestCanSendRequiredEmail(t *testing.T) {
	m, _ := newTestMailer(t, Config{})
	assert.False(t, m.CanSendRequiredEmail())

	m, _ = newTestMailer(t, Config{Host: "smtp.example.com", From: "forms@example.com"})
	assert.True(t, m.CanSendRequiredEmail())
}

func TestAssembleMessage(t *testing.T) {
	m, _ := newTestMailer(t, Config{Host: "smtp.example.com", From: "forms@example.com"})

	msg, err := m.AssembleMessage(MessageArgs{
		To:       []string{"a@example.com", "b@example.com"},
		Cc:       []string{"c@example.com"},
		ReplyTo:  "reply@example.com",
		Sender:   "sender@example.com",
		Subject:  "New submission",
		HTMLBody: "<p>Hello</p>",
		Attachments: []Attachment{
			{Name: "report.txt", ContentType: "text/plain", Reader: strings.NewReader("report body")},
		},
	})
	require.NoError(t, err)

	out := render(t, msg)
	assert.Contains(t, out, "forms@example.com")
	assert.Contains(t, out, "a@example.com")
	assert.Contains(t, out, "Subject: New submission")
	assert.Contains(t, out, "Sender: sender@example.com")
	assert.Contains(t, out, `filename="report.txt"`)
	assert.Contains(t, out, "Content-Transfer-Encoding: base64")
}

func TestAssembleMessageInvalidAddress(t *testing.T) {
	m, _ := newTestMailer(t, Config{From: "forms@example.com"})

	_, err := m.AssembleMessage(MessageArgs{To: []string{"not an address"}, Subject: "x"})
	assert.Error(t, err)
}

func TestAssembleSignedMessage(t *testing.T) {
	m, _ := newTestMailer(t, Config{From: "forms@example.com"})

	_, err := m.AssembleMessage(MessageArgs{To: []string{"a@example.com"}, Subject: "Signed", HTMLBody: "<p>x</p>", Sign: true})
	assert.ErrorIs(t, err, ErrSigningNotConfigured)

	m.WithSigningCertificate(selfSignedCertificate(t))
	msg, err := m.AssembleMessage(MessageArgs{To: []string{"a@example.com"}, Subject: "Signed", HTMLBody: "<p>x</p>", Sign: true})
	require.NoError(t, err)
	assert.Contains(t, render(t, msg), "pkcs7-signature")
}

func TestSend(t *testing.T) {
	m, sent := newTestMailer(t, Config{Host: "smtp.example.com", From: "forms@example.com"})

	msg, err := m.AssembleMessage(MessageArgs{To: []string{"a@example.com"}, Subject: "x"})
	require.NoError(t, err)
	require.NoError(t, m.Send(context.Background(), msg, "SecureEmailWorkflow"))
	require.Len(t, *sent, 1)
	assert.Contains(t, render(t, (*sent)[0]), "X-Email-Type: SecureEmailWorkflow")

	m.send = func(context.Context, ...*mail.Msg) error { return errors.New("connection refused") }
	assert.ErrorContains(t, m.Send(context.Background(), msg, "SecureEmailWorkflow"), "connection refused")

	disabled, _ := newTestMailer(t, Config{})
	assert.ErrorIs(t, disabled.Send(context.Background(), msg, "SecureEmailWorkflow"), ErrSendNotPermitted)
}

func TestSplitAddresses(t *testing.T) {
	assert.Equal(t, []string{"a@x.com", "b@x.com", "c@x.com"}, SplitAddresses(" a@x.com; b@x.com,c@x.com;; "))
	assert.Empty(t, SplitAddresses(""))
}

func selfSignedCertificate(t *testing.T) *tls.Certificate {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber:   big.NewInt(1),
		Subject:        pkix.Name{CommonName: "forms@example.com"},
		EmailAddresses: []string{"forms@example.com"},
		NotBefore:      time.Now().Add(-time.Hour),
		NotAfter:       time.Now().Add(time.Hour),
		KeyUsage:       x509.KeyUsageDigitalSignature,
		ExtKeyUsage:    []x509.ExtKeyUsage{x509.ExtKeyUsageEmailProtection},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	leaf, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	return &tls.Certificate{Certificate: [][]byte{der}, PrivateKey: key, Leaf: leaf}
}
