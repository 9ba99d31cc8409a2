package templates

import "strings"

// ContactMessage is a submission of the landing page contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
	Site    string
}

// Subject is the e-mail subject, prefixed with the site title when set.
func (m ContactMessage) Subject() string {
	if m.Site == "" {
		return "novo contato"
	}
	return m.Site + ": novo contato"
}

// HasMessage reports whether the message body is worth rendering.
func (m ContactMessage) HasMessage() bool {
	return strings.TrimSpace(m.Message) != ""
}
