package iff

import (
	"archive/zip"
	"io"

	"github.com/pkg/errors"
)

const (
	deliveryFileName  = "delivery.dat"
	timetableFileName = "timetbls.dat"
	footnoteFileName  = "footnote.dat"
	companyFileName   = "company.dat"
)

// readMember opens archivePath as a zip file and returns the decoded
// contents of the named member. It is a fatal IngestionError for the
// caller if the archive can't be opened, the member is missing, or
// the bytes don't decode.
func readMember(archivePath string, memberName string) (string, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", errors.Wrapf(err, "opening IFF archive %s", archivePath)
	}
	defer r.Close()

	f, err := r.Open(memberName)
	if err != nil {
		return "", errors.Wrapf(err, "finding member %s in archive", memberName)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return "", errors.Wrapf(err, "reading member %s", memberName)
	}

	content, err := decodeMember(raw)
	if err != nil {
		return "", errors.Wrapf(err, "decoding member %s", memberName)
	}

	return content, nil
}
