// Package contact turns the contact form into a mailto link and hands links
// to the operating system.
package contact

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

var ErrIncomplete = errors.New("name, email and message are required")

// Message is the contact form.
type Message struct {
	Name  string
	Email string
	Body  string
}

// Validate mirrors the form's required fields.
func (m Message) Validate() error {
	if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Email) == "" || strings.TrimSpace(m.Body) == "" {
		return ErrIncomplete
	}
	return nil
}

func (m Message) Subject() string {
	return "Portfolio Inquiry from " + m.Name
}

func (m Message) Text() string {
	return fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", m.Name, m.Email, m.Body)
}

// MailtoURL builds the link the mail client opens.
func MailtoURL(to string, m Message) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", to, EncodeComponent(m.Subject()), EncodeComponent(m.Text()))
}

// EncodeComponent percent-encodes s the way browsers encode a URI component:
// only letters, digits and -_.!~*'() pass through.
func EncodeComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(hex[c>>4])
		sb.WriteByte(hex[c&0x0f])
	}
	return sb.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

// Opener hands a URL to whatever the desktop registers for it.
type Opener interface {
	Open(url string) error
}

// SystemOpener launches the platform's URL handler.
type SystemOpener struct{}

func (SystemOpener) Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	go cmd.Wait()
	return nil
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(url string) error

func (f OpenerFunc) Open(url string) error {
	return f(url)
}
