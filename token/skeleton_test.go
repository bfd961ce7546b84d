package token

import (
	"testing"

	"github.com/sakamoro/alicetxt/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_RoundTrip_AllPatterns(t *testing.T) {
	input := []byte("2024-01-15T10:30:45+09:00 INFO 192.168.1.100 550e8400-e29b-41d4-a716-446655440000 GET /api took 12.5ms\n")

	skel, cols, rowCount := Build(input)

	assert.Equal(t, 1, rowCount)
	assert.Equal(t, input, Render(skel, cols))

	require.Len(t, cols.Timestamps, 1)
	require.Len(t, cols.IPv4, 1)
	require.Len(t, cols.UUIDs, 1)

	ts := cols.Timestamps[0]
	wantEpochMs := mustEpochMs(t, 2024, 1, 15, 1, 30, 45, 0)
	assert.Equal(t, wantEpochMs, ts.EpochMs)
	assert.Equal(t, TzSpec{Kind: TzOffset, OffsetMinutes: 540}, ts.Tz)

	assert.Equal(t, uint32(0xC0A80164), cols.IPv4[0].IPv4)
}

func TestBuild_TimeMillisRoundTrip(t *testing.T) {
	input := []byte("10:30:00 tick\n10:30:00.000 tick\n10:30:00.500 tick\n")

	skel, cols, rowCount := Build(input)

	assert.Equal(t, 3, rowCount)
	require.Len(t, cols.Times, 3)
	assert.False(t, cols.Times[0].TimeHasMillis)
	assert.True(t, cols.Times[1].TimeHasMillis)
	assert.True(t, cols.Times[2].TimeHasMillis)

	// "10:30:00" and "10:30:00.000" both carry MsFromMidnight % 1000 == 0
	// and must not collapse to the same rendered text.
	assert.Equal(t, input, Render(skel, cols))
}

func TestBuild_DeltaTimestamps(t *testing.T) {
	var input []byte
	for ss := 0; ss < 60; ss++ {
		input = append(input, []byte("2024-01-15T10:30:"+pad2(ss)+" INFO ping\n")...)
	}

	skel, cols, rowCount := Build(input)
	assert.Equal(t, 60, rowCount)
	assert.Equal(t, input, Render(skel, cols))
	require.Len(t, cols.Timestamps, 60)
}

func TestBuild_FilterEquality_LogLevels(t *testing.T) {
	levels := []string{"INFO", "ERROR", "INFO", "ERROR", "INFO", "WARN", "ERROR", "INFO", "ERROR", "INFO"}
	var input []byte
	for _, lvl := range levels {
		input = append(input, []byte(lvl+" message\n")...)
	}

	skel, cols, rowCount := Build(input)
	assert.Equal(t, len(levels), rowCount)
	assert.Equal(t, input, Render(skel, cols))
	require.Len(t, cols.LogLevels, len(levels))

	var errIdx []int
	for i, tok := range cols.LogLevels {
		if LogLevelAlphabet[tok.LevelIndex] == "ERROR" {
			errIdx = append(errIdx, i)
		}
	}
	assert.Equal(t, []int{1, 3, 6, 8}, errIdx)
}

func TestBuild_MixedRecognizerPriority(t *testing.T) {
	input := []byte("2024-01-15 10:30:45\n")
	skel, cols, rowCount := Build(input)

	assert.Equal(t, 1, rowCount)
	assert.Equal(t, input, Render(skel, cols))
	require.Len(t, cols.Timestamps, 1, "must be a single Timestamp token, not Date + Literal + Time")
	assert.Empty(t, cols.Dates)
	assert.Empty(t, cols.Times)
}

func TestBuild_NoTrailingNewline(t *testing.T) {
	input := []byte("no newline at all")
	skel, cols, rowCount := Build(input)
	assert.Equal(t, 1, rowCount)
	assert.Equal(t, input, Render(skel, cols))
}

func TestBuild_MultipleLinesMixedContent(t *testing.T) {
	input := []byte("plain text line\n2024-01-15T00:00:00Z DEBUG a@b.com\nhttps://example.com/x?y=1 42.5 1e2\n")
	skel, cols, rowCount := Build(input)
	assert.Equal(t, 3, rowCount)
	assert.Equal(t, input, Render(skel, cols))
	require.Len(t, cols.Emails, 1)
	require.Len(t, cols.URLs, 1)
	require.Len(t, cols.Numbers, 2)
	assert.Equal(t, "42.5", cols.Numbers[0].Repr)
	assert.Equal(t, "1e2", cols.Numbers[1].Repr)
}

func TestBuild_NumberFidelity(t *testing.T) {
	cases := []string{"42.", "1e2", "-0", "+3", "3.14", "-1.5e-3"}
	for _, c := range cases {
		input := []byte(c + "\n")
		skel, cols, _ := Build(input)
		assert.Equal(t, input, Render(skel, cols), "repr %q must round-trip", c)
		require.Len(t, cols.Numbers, 1)
		assert.Equal(t, c, cols.Numbers[0].Repr)
	}
}

func TestBuild_PresenceBitmapForSparseTimestamps(t *testing.T) {
	input := []byte("no timestamp here\n2024-01-15T10:30:45Z INFO has one\nanother plain line\n")
	skel, cols, rowCount := Build(input)
	assert.Equal(t, 3, rowCount)
	assert.Equal(t, input, Render(skel, cols))
	require.Len(t, cols.TimestampPresent, 3)
	assert.Equal(t, []bool{false, true, false}, cols.TimestampPresent)
	require.Len(t, cols.Timestamps, 1)
}

func TestBuild_IPv6RoundTrip(t *testing.T) {
	cases := []string{
		// No leading zeros within a group: the recognizer's hint set (elision
		// index + letter case) does not track per-group digit width, so a
		// zero-padded group like "0db8" is not guaranteed to round-trip to
		// itself rather than its minimal form "db8".
		"2001:db8:0:0:0:ff00:42:8329",
		"::1",
		"fe80::1",
		"::",
		"::ffff:192.168.1.1",
	}
	for _, c := range cases {
		input := []byte(c + "\n")
		skel, cols, _ := Build(input)
		require.Len(t, cols.IPv6, 1, "case %q should tokenize as IPv6", c)
		assert.Equal(t, input, Render(skel, cols), "case %q must round-trip", c)
	}
}

func TestBuild_UUIDCasePreservation(t *testing.T) {
	cases := []string{
		"550e8400-e29b-41d4-a716-446655440000",
		"550E8400-E29B-41D4-A716-446655440000",
	}
	for _, c := range cases {
		input := []byte(c + "\n")
		skel, cols, _ := Build(input)
		require.Len(t, cols.UUIDs, 1)
		assert.Equal(t, input, Render(skel, cols))
	}
}

func mustEpochMs(t *testing.T, y, m, d, h, mi, s, ms int) int64 {
	t.Helper()
	days := daysFromCivil(y, m, d)
	return days*86400_000 + int64(h)*3600_000 + int64(mi)*60_000 + int64(s)*1000 + int64(ms)
}

func TestColumnIDRecordAlignment(t *testing.T) {
	assert.True(t, format.ColumnTimestamps.RecordAligned())
	assert.True(t, format.ColumnTzSpecs.RecordAligned())
	assert.False(t, format.ColumnIPv4.RecordAligned())
	assert.False(t, format.ColumnEmails.RecordAligned())
}
