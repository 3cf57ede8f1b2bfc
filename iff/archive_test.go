package iff

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/treinplanner/iffserver/interner"
)

// writeTestArchive assembles a minimal but complete IFF zip so
// ParseArchive/ProbeVersion can be exercised without a real delivery.
func writeTestArchive(t *testing.T, version string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "delivery.zip")

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)

	members := map[string]string{
		deliveryFileName: crlf("@100,01012024,31122024," + version + ",jaardienst"),
		timetableFileName: crlf(
			"@100,01012024,31122024,"+version+",jaardienst",
			"#00000001",
			"-000003,001,002",
			"&IC ,001,002",
			">rtd,1850",
			"<amf,1950",
		),
		footnoteFileName: crlf(
			"@100,01012024,31122024,"+version+",jaardienst",
			"#00000003",
			"1"+strings.Repeat("0", 365), // 2024 is a leap year: 366-day validity window
		),
		companyFileName: crlf(
			"@100,01012024,31122024,"+version+",jaardienst",
			"100,NS,Nederlandse Spoorwegen,0000",
		),
	}

	for name, content := range members {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, zw.Close())
	return path
}

func TestProbeVersion(t *testing.T) {
	path := writeTestArchive(t, "0042")
	version, err := ProbeVersion(path)
	require.NoError(t, err)
	require.Equal(t, uint64(42), version)
}

func TestParseArchive(t *testing.T) {
	path := writeTestArchive(t, "0001")
	in := interner.New()

	archive, err := ParseArchive(path, in)
	require.NoError(t, err)

	require.Equal(t, uint64(100), archive.Header.CompanyID)
	require.Len(t, archive.Records, 1)
	require.Len(t, archive.Companies, 1)
	require.Contains(t, archive.Footnotes, uint64(3))
}
