package data

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ConnectionKind tells which form of the connection dialog produced a value.
type ConnectionKind int

const (
	KindURL ConnectionKind = iota
	KindScheme
)

// String returns a human-readable kind name.
func (k ConnectionKind) String() string {
	switch k {
	case KindURL:
		return "URL"
	case KindScheme:
		return "Scheme"
	default:
		return "Unknown"
	}
}

// DefaultURL pre-fills the advanced page of the connection dialog.
const DefaultURL = "postgres://postgre"

// Platform is a database flavor offered by the connection dialog.
type Platform struct {
	ID   string
	Name string
}

// Platforms returns the selectable platforms in display order.
func Platforms() []Platform {
	return []Platform{
		{"pg", "postgres"},
		{"my", "mysql"},
		{"sq", "sqlite"},
	}
}

// Scheme is a connection given as separate fields.
type Scheme struct {
	Platform string
	Host     string
	Port     uint16
	Database string
	User     string
	Password string
}

// Connection is the value entered in the connection dialog: either a raw URL
// or a Scheme. It is never persisted or used to open a connection.
type Connection struct {
	Kind   ConnectionKind
	URL    string
	Scheme Scheme
}

// URLConnection returns a connection given as a URL.
func URLConnection(rawURL string) Connection {
	return Connection{Kind: KindURL, URL: rawURL}
}

// SchemeConnection returns a connection given as separate fields.
func SchemeConnection(s Scheme) Connection {
	return Connection{Kind: KindScheme, Scheme: s}
}

// DefaultConnection returns the connection the dialog starts with.
func DefaultConnection() Connection {
	return URLConnection(DefaultURL)
}

// ParsePort parses the port field of the connection form.
// Empty text means no port and yields 0.
func ParsePort(text string) (uint16, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}
	port, err := strconv.ParseUint(text, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", text, ErrInvalidPort)
	}
	return uint16(port), nil
}

// String renders the connection for logs. The password is never included.
func (c Connection) String() string {
	if c.Kind == KindURL {
		return fmt.Sprintf("url(%s)", redactURL(c.URL))
	}
	s := c.Scheme
	return fmt.Sprintf("scheme(platform=%s host=%s port=%d database=%s user=%s)",
		s.Platform, s.Host, s.Port, s.Database, s.User)
}

// redactURL masks credentials in the userinfo and in password-like query
// parameters. Text that is not a URL with a host shows its scheme only.
func redactURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "unparsable"
	}
	if u.Host == "" {
		if u.Scheme == "" {
			return "hidden"
		}
		return u.Scheme + "://hidden"
	}

	if u.RawQuery != "" {
		query, err := url.ParseQuery(u.RawQuery)
		if err != nil {
			u.RawQuery = "hidden"
		} else {
			for name := range query {
				if isSecretParam(name) {
					query.Set(name, redacted)
				}
			}
			u.RawQuery = query.Encode()
		}
	}
	u.Fragment = ""
	u.RawFragment = ""
	return u.Redacted()
}

const redacted = "xxxxx"

func isSecretParam(name string) bool {
	name = strings.ToLower(name)
	return strings.Contains(name, "password") ||
		strings.Contains(name, "secret") ||
		name == "pass" || name == "pwd"
}
