package iff

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// decodeMember decodes one IFF archive member. The format predates
// UTF-8 and is documented (in the original implementation this was
// ported from) as ISO-8859-1 / Latin-1; decoding it as such is a
// no-op for the plain-ASCII content that makes up the vast majority
// of a real delivery, and correctly handles the rare accented
// character in a free-text description field.
func decodeMember(raw []byte) (string, error) {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", errors.Wrap(err, "decoding member as ISO-8859-1")
	}
	return string(decoded), nil
}
