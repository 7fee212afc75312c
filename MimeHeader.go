// Copyright 2013-2016 Adam Presley. All rights reserved
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package mailparse

import "strings"

/*
MimeHeader is the parsed header block of a single MIME sub-part: the
handful of fields the tree walker and body selector need to dispatch and
decode the part that follows it.
*/
type MimeHeader struct {
	ContentType             string
	RawContentType          string
	Charset                 string
	ContentTransferEncoding string
	ContentDisposition      string
	FileName                string
	ContentID               string
}

/*
ParseMimeHeader tokenises headerBlock with the same folding rules as any
other header block and derives the fields a MIME sub-part is dispatched
and decoded on.
*/
func ParseMimeHeader(headerBlock string) (*MimeHeader, error) {
	set, err := NewHeaderSet(headerBlock)
	if err != nil {
		return nil, err
	}

	result := &MimeHeader{}

	if item, err := set.Get("content-type"); err == nil {
		value := item.Values[0]
		result.RawContentType = value
		result.ContentType = stripParams(value)
		result.Charset = paramValue(value, "charset")

		if name := paramValue(value, "name"); name != "" {
			result.FileName = name
		}
	}

	if item, err := set.Get("content-transfer-encoding"); err == nil {
		result.ContentTransferEncoding = strings.TrimSpace(item.Values[0])
	}

	if item, err := set.Get("content-disposition"); err == nil {
		value := item.Values[0]
		result.ContentDisposition = stripParams(value)

		if name := paramValue(value, "name"); name != "" {
			result.FileName = name
		}
	}

	if item, err := set.Get("content-id"); err == nil {
		result.ContentID = stripAngleBrackets(item.Values[0])
	}

	return result, nil
}
