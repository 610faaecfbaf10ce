package predicate

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// IsEmail passes for a bare address such as user@example.com.
// Display names are rejected and the domain needs at least one dot.
func IsEmail(v any) bool {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	local, domain, _ := strings.Cut(addr.Address, "@")
	if local == "" || !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// IsURL passes for absolute URLs with a scheme and a host.
func IsURL(v any) bool {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}
	u, err := url.ParseRequestURI(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// IsUUID passes for the canonical 36 character form. uuid.UUID values pass too.
func IsUUID(v any) bool {
	switch id := v.(type) {
	case uuid.UUID:
		return true
	case string:
		if len(id) != 36 || id[8] != '-' || id[13] != '-' || id[18] != '-' || id[23] != '-' {
			return false
		}
		_, err := uuid.Parse(id)
		return err == nil
	default:
		return false
	}
}

// Matches passes for strings matched by re.
func Matches(re *regexp.Regexp) Predicate[any] {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && re.MatchString(s)
	}
}
