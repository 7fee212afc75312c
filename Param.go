// Copyright 2013-2016 Adam Presley. All rights reserved
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package mailparse

import "strings"

/*
paramValue extracts the value of a "name=value" parameter out of a
Content-Type/Content-Disposition style header value. It prefers the quoted
form name="value", and otherwise takes everything after "name=" up to the
next ";" (or end of string). Matching is case-insensitive on the parameter
name; quotes are stripped from the result. Returns "" if the parameter is
absent.
*/
func paramValue(headerValue, paramName string) string {
	lower := strings.ToLower(headerValue)
	needle := strings.ToLower(paramName) + "="

	quoted := needle + `"`
	if idx := strings.Index(lower, quoted); idx >= 0 {
		rest := headerValue[idx+len(quoted):]
		if end := strings.Index(rest, `"`); end >= 0 {
			return rest[:end]
		}
		return strings.TrimRight(rest, "\"")
	}

	idx := strings.Index(lower, needle)
	if idx < 0 {
		return ""
	}

	rest := headerValue[idx+len(needle):]
	if end := strings.Index(rest, ";"); end >= 0 {
		rest = rest[:end]
	}

	return strings.Trim(strings.TrimSpace(rest), `"`)
}

/*
stripParams removes any trailing ";..." parameter block from a Content-Type
value, leaving just the media type, e.g. "text/plain; charset=utf-8" ->
"text/plain".
*/
func stripParams(headerValue string) string {
	if idx := strings.Index(headerValue, ";"); idx >= 0 {
		return strings.TrimSpace(headerValue[:idx])
	}

	return strings.TrimSpace(headerValue)
}

/*
stripAngleBrackets removes one leading "<" and trailing ">" from s, if
present, used for Message-ID/Content-ID/In-Reply-To/Return-Path values.
*/
func stripAngleBrackets(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "<")
	s = strings.TrimSuffix(s, ">")
	return s
}
