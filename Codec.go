// Copyright 2013-2016 Adam Presley. All rights reserved
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package mailparse

import (
	"encoding/base64"
	"io"
	"mime/quotedprintable"
	"strings"
)

/*
DecodeTransferEncoding decodes text per the named Content-Transfer-Encoding.
Recognised encodings, matched case-insensitively, are "base64" and
"quoted-printable"; "7bit", "8bit", "binary", and anything unrecognised pass
through unchanged (identity), and an UnknownTransferEncodingError is
returned alongside the identity bytes so a caller that cares can observe
the fallback -- Parse itself ignores it, staying fail-open.
*/
func DecodeTransferEncoding(encoding, text string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		return decodeBase64(text), nil

	case "quoted-printable":
		return decodeQuotedPrintable(text), nil

	case "", "7bit", "8bit", "binary":
		return []byte(text), nil

	default:
		return []byte(text), UnknownTransferEncoding(encoding)
	}
}

func decodeBase64(text string) []byte {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, text)

	decoded, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		// lax: try again tolerating missing padding before giving up
		if decoded, err = base64.RawStdEncoding.DecodeString(cleaned); err != nil {
			return []byte(text)
		}
	}

	return decoded
}

func decodeQuotedPrintable(text string) []byte {
	reader := quotedprintable.NewReader(strings.NewReader(text))

	decoded, err := io.ReadAll(reader)
	if err != nil && len(decoded) == 0 {
		return []byte(text)
	}

	return decoded
}

/*
EncodeTransferEncoding is the inverse of DecodeTransferEncoding for base64
and quoted-printable, used only by the codec's own round-trip tests -- the
parser itself never re-encodes anything; it is read-only.
*/
func EncodeTransferEncoding(encoding string, data []byte) string {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		return base64.StdEncoding.EncodeToString(data)

	case "quoted-printable":
		var buf strings.Builder
		writer := quotedprintable.NewWriter(&buf)
		_, _ = writer.Write(data)
		_ = writer.Close()
		return buf.String()

	default:
		return string(data)
	}
}
