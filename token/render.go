package token

// civilFromDays is the inverse of daysFromCivil (Howard Hinnant's
// civil_from_days), converting a day count relative to 1970-01-01 back to a
// proleptic Gregorian y-m-d.
func civilFromDays(z int64) (y, m, d int) {
	z += 719468
	era := z
	if era < 0 {
		era -= 146096
	}
	era /= 146097
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y64 := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		m = int(mp + 3)
	} else {
		m = int(mp - 9)
	}
	if m <= 2 {
		y64++
	}
	return int(y64), m, d
}

func putFixed(buf []byte, pos, width, v int) {
	for i := width - 1; i >= 0; i-- {
		buf[pos+i] = byte('0' + v%10)
		v /= 10
	}
}

func renderTimestamp(tok Token) []byte {
	epochMs := tok.EpochMs
	if tok.Tz.Kind == TzOffset {
		epochMs += int64(tok.Tz.OffsetMinutes) * 60_000
	}

	days := epochMs / 86400_000
	msOfDay := epochMs % 86400_000
	if msOfDay < 0 {
		msOfDay += 86400_000
		days--
	}
	year, month, day := civilFromDays(days)
	hour := int(msOfDay / 3600_000)
	minute := int((msOfDay / 60_000) % 60)
	sec := int((msOfDay / 1000) % 60)
	millis := int(msOfDay % 1000)

	width := dateWidth + 1 + timeWidth
	if tok.HasMillis {
		width += 4
	}
	width += len(tok.Tz.String())

	buf := make([]byte, width)
	putFixed(buf, 0, 4, year)
	buf[4] = '-'
	putFixed(buf, 5, 2, month)
	buf[7] = '-'
	putFixed(buf, 8, 2, day)
	if tok.TimestampForm == FormISOT {
		buf[10] = 'T'
	} else {
		buf[10] = ' '
	}
	putFixed(buf, 11, 2, hour)
	buf[13] = ':'
	putFixed(buf, 14, 2, minute)
	buf[16] = ':'
	putFixed(buf, 17, 2, sec)
	cursor := 19
	if tok.HasMillis {
		buf[cursor] = '.'
		putFixed(buf, cursor+1, 3, millis)
		cursor += 4
	}
	copy(buf[cursor:], tok.Tz.String())
	return buf
}

func renderDate(tok Token) []byte {
	year, month, day := civilFromDays(int64(tok.EpochDays))
	buf := make([]byte, dateWidth)
	putFixed(buf, 0, 4, year)
	buf[4] = '-'
	putFixed(buf, 5, 2, month)
	buf[7] = '-'
	putFixed(buf, 8, 2, day)
	return buf
}

func renderTime(tok Token) []byte {
	ms := tok.MsFromMidnight
	hour := ms / 3600_000
	minute := (ms / 60_000) % 60
	sec := (ms / 1000) % 60
	millis := ms % 1000

	// Whether to emit the fractional suffix is recorded on the token, not
	// inferred from millis != 0: "10:30:00.000" and "10:30:00" both carry
	// millis == 0 but must round-trip to their own exact original text.
	width := timeWidth
	if tok.TimeHasMillis {
		width += 4
	}
	buf := make([]byte, width)
	putFixed(buf, 0, 2, int(hour))
	buf[2] = ':'
	putFixed(buf, 3, 2, int(minute))
	buf[5] = ':'
	putFixed(buf, 6, 2, int(sec))
	if tok.TimeHasMillis {
		buf[8] = '.'
		putFixed(buf, 9, 3, int(millis))
	}
	return buf
}

func renderIPv4(tok Token) []byte {
	v := tok.IPv4
	octets := [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	out := make([]byte, 0, 15)
	for i, o := range octets {
		if i > 0 {
			out = append(out, '.')
		}
		out = append(out, []byte(itoa(int(o)))...)
	}
	return out
}

func renderIPv6(tok Token) []byte {
	if tok.HexCase == CaseMixed && tok.Text != "" {
		return []byte(tok.Text)
	}
	var groups [8]uint16
	for i := 0; i < 8; i++ {
		groups[i] = uint16(tok.Bytes16[i*2])<<8 | uint16(tok.Bytes16[i*2+1])
	}

	upper := tok.HexCase == CaseUpper
	hexDigits := func(v uint16) string {
		const lower = "0123456789abcdef"
		const upperAlpha = "0123456789ABCDEF"
		alphabet := lower
		if upper {
			alphabet = upperAlpha
		}
		if v == 0 {
			return "0"
		}
		var buf [4]byte
		n := 0
		for v > 0 {
			buf[n] = alphabet[v&0xf]
			v >>= 4
			n++
		}
		out := make([]byte, n)
		for i := 0; i < n; i++ {
			out[i] = buf[n-1-i]
		}
		return string(out)
	}

	// An embedded dotted-decimal IPv4 tail occupies the last two groups, so
	// only the leading groups are rendered as hex.
	lastHex := 8
	if tok.IPv6HasEmbeddedV4 {
		lastHex = 6
	}

	elisionAt := tok.IPv6ElisionIndex
	runLen := 0
	if elisionAt != -1 {
		for i := elisionAt; i < lastHex && groups[i] == 0; i++ {
			runLen++
		}
	}

	var out []byte
	wrote := false
	afterElision := false
	for i := 0; i < lastHex; {
		if elisionAt != -1 && i == elisionAt {
			out = append(out, ':', ':')
			wrote = true
			afterElision = true
			i += runLen
			continue
		}
		if wrote && !afterElision {
			out = append(out, ':')
		}
		out = append(out, hexDigits(groups[i])...)
		wrote = true
		afterElision = false
		i++
	}

	if tok.IPv6HasEmbeddedV4 {
		if wrote && out[len(out)-1] != ':' {
			out = append(out, ':')
		}
		v4 := [4]byte{tok.Bytes16[12], tok.Bytes16[13], tok.Bytes16[14], tok.Bytes16[15]}
		for i, b := range v4 {
			if i > 0 {
				out = append(out, '.')
			}
			out = append(out, []byte(itoa(int(b)))...)
		}
	}
	return out
}

func renderUUID(tok Token) []byte {
	if tok.HexCase == CaseMixed && tok.Text != "" {
		return []byte(tok.Text)
	}
	const lower = "0123456789abcdef"
	const upper = "0123456789ABCDEF"
	alphabet := lower
	if tok.HexCase == CaseUpper {
		alphabet = upper
	}
	groupLens := [5]int{8, 4, 4, 4, 12}
	out := make([]byte, 0, 36)
	byteIdx := 0
	nibbleHigh := true
	for gi, gl := range groupLens {
		if gi > 0 {
			out = append(out, '-')
		}
		for k := 0; k < gl; k++ {
			var nib byte
			if nibbleHigh {
				nib = tok.Bytes16[byteIdx] >> 4
			} else {
				nib = tok.Bytes16[byteIdx] & 0xf
				byteIdx++
			}
			nibbleHigh = !nibbleHigh
			out = append(out, alphabet[nib])
		}
	}
	return out
}
