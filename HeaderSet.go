// Copyright 2013-2016 Adam Presley. All rights reserved
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package mailparse

import "strings"

/*
A Set is an ordered collection of HeaderField entries produced by tokenising
a header block. A header name may appear more than once -- "received" and
"x-received" legitimately repeat -- so lookups return the first match and
callers that need every occurrence walk Fields directly.
*/
type Set struct {
	Fields []HeaderField
}

/*
NewHeaderSet tokenises a raw header block into a Set. Before scanning, a
block with no "\r" at all has every "\n" replaced with "\r\n" -- lax
recovery for input that only used bare LF line endings.
*/
func NewHeaderSet(headerBlock string) (*Set, error) {
	set := &Set{Fields: make([]HeaderField, 0)}
	set.Parse(headerBlock)
	return set, nil
}

/*
Parse tokenises contents into Set.Fields. It never returns an error: lines
that are neither a recognised header start nor a continuation of one are
silently skipped, per the fail-open design of the header parser.
*/
func (set *Set) Parse(contents string) error {
	if !strings.Contains(contents, "\r") {
		contents = strings.ReplaceAll(contents, "\n", "\r\n")
	}

	lines := strings.Split(contents, "\r\n")
	currentIndex := -1

	for _, line := range lines {
		if name, value, ok := splitHeaderStart(line); ok {
			set.Fields = append(set.Fields, HeaderField{Name: strings.ToLower(name), Value: value})
			currentIndex = len(set.Fields) - 1
			continue
		}

		if currentIndex < 0 || len(line) == 0 {
			continue
		}

		if line[0] != ' ' && line[0] != '\t' {
			continue
		}

		switch continuationPolicyFor(set.Fields[currentIndex].Name) {
		case policyFlat:
			set.Fields[currentIndex].Value += strings.TrimLeft(line, " \t")
		case policyCRLF:
			set.Fields[currentIndex].Value += "\r\n" + line
		case policyIgnore:
			// continuations on single-line headers are dropped
		}
	}

	return nil
}

/*
splitHeaderStart reports whether line is a header start -- it contains ":"
at position p with 0 < p < len(line)-1 -- and if so returns the name and
value. The space conventionally following the colon is consumed by slicing
from p+2, regardless of whether that byte is actually a space.
*/
func splitHeaderStart(line string) (name string, value string, ok bool) {
	p := strings.Index(line, ":")
	if p <= 0 || p >= len(line)-1 {
		return "", "", false
	}

	return line[:p], line[p+2:], true
}

/*
Get returns the first header item matching name, case-insensitively.
*/
func (set *Set) Get(name string) (*Item, error) {
	lower := strings.ToLower(name)

	for _, field := range set.Fields {
		if field.Name == lower {
			return &Item{Key: field.Name, Values: []string{field.Value}}, nil
		}
	}

	return nil, InvalidHeader(name)
}

/*
ToMap collapses the Set into a map keyed by lower-cased header name, the
shape net/mail.Header and textproto.MIMEHeader both use. Later occurrences
of the same header overwrite earlier ones -- callers that need every
occurrence (received/x-received) should walk Fields instead.
*/
func (set *Set) ToMap() map[string][]string {
	result := make(map[string][]string)

	for _, field := range set.Fields {
		result[field.Name] = []string{field.Value}
	}

	return result
}

/*
UnfoldHeaders performs the naive, policy-blind fold used when a caller just
wants folded continuation lines joined onto the previous line with no
separator, with no regard for per-header semantics. One trailing "\r\n"
is dropped from the result. It exists for diagnostics/logging, not for
field extraction -- Parse is policy-aware and is what the rest of the
package actually consumes.
*/
func (set *Set) UnfoldHeaders(headers string) string {
	lines := strings.Split(headers, "\r\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		if len(line) > 0 && (line[0] == ' ' || line[0] == '\t') && len(result) > 0 {
			result[len(result)-1] += line
			continue
		}

		result = append(result, line)
	}

	return strings.TrimSuffix(strings.Join(result, "\r\n"), "\r\n")
}
