// Copyright 2013-2016 Adam Presley. All rights reserved
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package mailparse

import "strings"

/*
A HeaderField is a single recognised (name, value) pair produced by the
header tokeniser. Name is lower-cased for case-insensitive matching; Value
preserves case and may contain embedded "\r\n" when the header's
continuation lines are joined with a separator rather than concatenated
flat (see continuationPolicyFor).
*/
type HeaderField struct {
	Name  string
	Value string
}

/*
Item is a single, unfolded "Key: Value" header line. It is the low-level
single-line parser, and also the shape Set.Get returns a lookup in. Set's
own tokeniser does not use it: Set.Parse recognises header-start lines
with splitHeaderStart.
*/
type Item struct {
	Key    string
	Values []string
}

/*
GetKey returns the header name as written (not lower-cased).
*/
func (item *Item) GetKey() string {
	return item.Key
}

/*
GetValues returns the header's values.
*/
func (item *Item) GetValues() []string {
	return item.Values
}

/*
ParseHeaderString parses a single, non-folded "Key: Value" line. It returns
an InvalidHeaderError when no colon is present.
*/
func (item *Item) ParseHeaderString(header string) error {
	splitHeader := strings.SplitN(header, ":", 2)
	if len(splitHeader) < 2 {
		return InvalidHeader(header)
	}

	item.Key = strings.TrimSpace(splitHeader[0])
	item.Values = []string{strings.TrimSpace(splitHeader[1])}

	return nil
}

/*
continuationPolicy describes how a header-specific continuation line folds
into the value of the most recently recognised header of that name.
*/
type continuationPolicy int

const (
	// policyIgnore drops continuation lines: the header is treated as single-line.
	policyIgnore continuationPolicy = iota

	// policyFlat trims the continuation's leading whitespace and concatenates
	// it directly onto the existing value, with no separator.
	policyFlat

	// policyCRLF appends "\r\n" followed by the continuation line, unchanged.
	policyCRLF
)

// flatHeaders fold their continuation lines onto the value with no separator.
var flatHeaders = map[string]bool{
	"bcc":             true,
	"cc":              true,
	"content-type":    true,
	"delivered-to":    true,
	"from":            true,
	"message-id":      true,
	"reply-to":        true,
	"subject":         true,
	"to":              true,
	"list-unsubscribe": true,
	"thread-topic":    true,
	"x-report-abuse":  true,
}

// crlfHeaders join their continuation lines with "\r\n" instead of folding flat.
var crlfHeaders = map[string]bool{
	"received":               true,
	"x-received":             true,
	"authentication-results": true,
	"dkim-signature":         true,
	"domainkey-signature":    true,
	"received-spf":           true,
	"references":             true,
	"resent-from":            true,
}

func continuationPolicyFor(lowerName string) continuationPolicy {
	if flatHeaders[lowerName] {
		return policyFlat
	}

	if crlfHeaders[lowerName] {
		return policyCRLF
	}

	return policyIgnore
}
