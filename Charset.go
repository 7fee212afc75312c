// Copyright 2013-2016 Adam Presley. All rights reserved
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package mailparse

import (
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

/*
decodeCharset decodes data as charset into a UTF-8 string. An empty,
us-ascii, or utf-8 charset (or one ianaindex doesn't recognise) returns the
bytes unchanged -- decoding is best-effort, matching every other fail-open
behaviour in this package.
*/
func decodeCharset(charset string, data []byte) string {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "us-ascii", "utf-8":
		return string(data)
	}

	enc, err := ianaindex.MIME.Encoding(charset)
	if err != nil || enc == nil {
		enc, err = ianaindex.IANA.Encoding(charset)
	}
	if err != nil || enc == nil {
		return string(data)
	}

	decoded, err := io.ReadAll(enc.NewDecoder().Reader(strings.NewReader(string(data))))
	if err != nil {
		return string(data)
	}

	return string(decoded)
}

/*
Text decodes the part's raw Bytes into a UTF-8 string using its declared
Charset. Bytes are kept raw at parse time; decoding to text happens only
on demand.
*/
func (part *MimePart) Text() string {
	return decodeCharset(part.Charset, part.Bytes)
}
