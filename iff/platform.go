package iff

import (
	"fmt"
	"strconv"
	"strings"
)

// Platform is one of: a plain number, a number with a single
// alphabetic suffix, or a numeric range "a-b".
type Platform struct {
	from   int
	to     int
	suffix byte
	ranged bool
}

// PlainPlatform returns a platform consisting of a single number with
// no suffix.
func PlainPlatform(number int) Platform {
	return Platform{from: number}
}

// ParsePlatform parses one of the three platform field shapes
// described in spec.md §3 (PlatformInfo / §4.3 platform-info line).
func ParsePlatform(raw string) (Platform, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Platform{}, fmt.Errorf("iff: empty platform field")
	}

	if idx := strings.IndexByte(s, '-'); idx > 0 {
		from, err := strconv.Atoi(s[:idx])
		if err != nil {
			return Platform{}, fmt.Errorf("iff: platform range %q: %w", s, err)
		}
		to, err := strconv.Atoi(s[idx+1:])
		if err != nil {
			return Platform{}, fmt.Errorf("iff: platform range %q: %w", s, err)
		}
		return Platform{from: from, to: to, ranged: true}, nil
	}

	last := s[len(s)-1]
	if last >= 'a' && last <= 'z' || last >= 'A' && last <= 'Z' {
		number, err := strconv.Atoi(s[:len(s)-1])
		if err != nil {
			return Platform{}, fmt.Errorf("iff: platform %q: %w", s, err)
		}
		return Platform{from: number, suffix: last}, nil
	}

	number, err := strconv.Atoi(s)
	if err != nil {
		return Platform{}, fmt.Errorf("iff: platform %q: %w", s, err)
	}
	return Platform{from: number}, nil
}

// String renders the platform back to its canonical IFF text form.
func (p Platform) String() string {
	if p.ranged {
		return fmt.Sprintf("%d-%d", p.from, p.to)
	}
	if p.suffix != 0 {
		return fmt.Sprintf("%d%c", p.from, p.suffix)
	}
	return strconv.Itoa(p.from)
}

// MarshalJSON renders the platform as its canonical string form.
func (p Platform) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.String())), nil
}
