package dayoffset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treinplanner/iffserver/dayoffset"
)

func TestParseRoundTrip(t *testing.T) {
	for h := 0; h < 30; h++ {
		for m := 0; m < 60; m += 7 {
			s := dayoffset.FromHourMinute(uint32(h), uint32(m))
			parsed, err := dayoffset.Parse(formatHHMM(h, m))
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	}
}

func formatHHMM(h, m int) string {
	digits := [4]byte{}
	digits[0] = byte('0' + (h/10)%10)
	digits[1] = byte('0' + h%10)
	digits[2] = byte('0' + (m/10)%10)
	digits[3] = byte('0' + m%10)
	return string(digits[:])
}

func TestParseRejectsWrongLength(t *testing.T) {
	_, err := dayoffset.Parse("930")
	assert.Error(t, err)
}

func TestCompareAndOrdering(t *testing.T) {
	a := dayoffset.FromHourMinute(18, 50)
	b := dayoffset.FromHourMinute(19, 28)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 0, a.Compare(a))
}

func TestOffsetBySaturatesAtZero(t *testing.T) {
	a := dayoffset.FromHourMinute(0, 5)
	assert.Equal(t, uint32(0), a.OffsetBy(-10).Minutes())
}

func TestTimetableStringWrapsPastMidnight(t *testing.T) {
	a := dayoffset.FromHourMinute(25, 30)
	assert.Equal(t, "01:30", a.TimetableString())
}

func TestCrossesMidnightRetainsOriginalOffset(t *testing.T) {
	a := dayoffset.FromHourMinute(23, 50)
	b := dayoffset.FromHourMinute(24, 10)
	assert.True(t, a.Before(b))
	assert.Equal(t, uint32(24*60+10), b.Minutes())
}
