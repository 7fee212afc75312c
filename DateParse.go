// Copyright 2013-2016 Adam Presley. All rights reserved
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package mailparse

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
)

var trailingParenthetical = regexp.MustCompile(`\s*\([^()]*\)\s*$`)
var trailingZoneName = regexp.MustCompile(`\s+[A-Z]{2,5}$`)

var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 -0700",
}

/*
parseDate is a best-effort RFC 5322 date parser: it strips a trailing
parenthetical comment and an optional trailing timezone-name suffix before
handing off to net/mail.ParseDate, then falls back to a short list of
common layouts. An unparseable value yields (nil, false) rather than an
error -- dates are never fatal.
*/
func parseDate(value string) (*time.Time, bool) {
	value = strings.TrimSpace(value)
	value = trailingParenthetical.ReplaceAllString(value, "")
	value = strings.TrimSpace(value)

	stripped := trailingZoneName.ReplaceAllString(value, "")
	stripped = strings.TrimSpace(stripped)

	for _, candidate := range []string{stripped, value} {
		if candidate == "" {
			continue
		}

		if t, err := mail.ParseDate(candidate); err == nil {
			return &t, true
		}

		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, candidate); err == nil {
				return &t, true
			}
		}
	}

	return nil, false
}
