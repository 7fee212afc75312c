// Copyright 2013-2016 Adam Presley. All rights reserved
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package mailparse

import (
	"mime"
	"net/mail"
	"strings"
)

// wordDecoder decodes RFC 2047 encoded-words ("=?utf-8?B?...?="), e.g. in a
// Subject or a display name. net/mail.AddressParser and DecodeHeader both
// use it.
var wordDecoder = mime.WordDecoder{}

/*
ParseAddressList parses a header value as an ordered sequence of addresses.
It is tolerant of bare addresses and unquoted display names:
net/mail.ParseList already accepts "name <addr>", "addr", and
comma-separated lists of both. ParseList rejects the whole list when any
entry is malformed; the value is then parsed as a single address, and nil
is returned if that fails too.
*/
func ParseAddressList(value string) []Address {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parser := &mail.AddressParser{WordDecoder: &wordDecoder}

	addrs, err := parser.ParseList(value)
	if err != nil {
		// Fail-open: fall back to a single best-effort address rather than
		// losing the header entirely.
		if addr, err := parser.Parse(value); err == nil {
			addrs = []*mail.Address{addr}
		} else {
			return nil
		}
	}

	result := make([]Address, 0, len(addrs))
	for _, a := range addrs {
		result = append(result, Address{Name: a.Name, Address: a.Address})
	}

	return result
}

/*
decodeEncodedWords decodes RFC 2047 encoded-words in a header value (used
for Subject). On decode failure the original string is returned unchanged
-- fail-open, consistent with the rest of the package.
*/
func decodeEncodedWords(value string) string {
	if decoded, err := wordDecoder.DecodeHeader(value); err == nil {
		return decoded
	}

	return value
}
