// Copyright 2013-2016 Adam Presley. All rights reserved
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package mailparse

import (
	"os"
	"strings"
	"time"

	"github.com/adampresley/webframework/logging2"
	"github.com/pkg/errors"
)

/*
ParseOptions configures the capabilities Parse is given beyond the raw
bytes themselves. A zero-value ParseOptions is perfectly usable: Logger
falls back to an INFO-level logger (so the package's Debugf lines are not
emitted) and Cms/Tnef fall back to their no-op implementations, so every
field is optional.
*/
type ParseOptions struct {
	Flags         ProcessingFlags
	ParseExtended bool
	Cms           CmsProvider
	Tnef          TnefDecoder
	Logger        logging2.ILogger
}

/*
Parse is the package's single entry point: it splits raw on the first
"\r\n\r\n", tokenises the header block, walks the MIME part tree, and runs
the body selector, returning a single, fully populated ParsedMessage.
Parse never returns an error -- every failure mode it can encounter
degrades to a best-effort partial result instead, consistent with the
fail-open philosophy the rest of the package follows.

Parse takes the raw message bytes directly in one call; a caller holding
a header block and body separately joins them first rather than the
package offering a second, easy-to-misuse two-argument constructor.
*/
func Parse(raw []byte, opts ParseOptions) *ParsedMessage {
	start := time.Now()
	defer observeParseDuration(start)

	logger := opts.Logger
	if logger == nil {
		logger = logging2.LogFactory(logging2.LOG_FORMAT_SIMPLE, "mailparse", logging2.INFO)
	}

	content := string(raw)
	headerBlock, body := splitMessage(content)

	msg := &ParsedMessage{
		Size: len(raw),
	}

	set, err := NewHeaderSet(headerBlock)
	if err != nil {
		logger.Errorf("Parse: %s", errors.Wrap(err, "tokenising header block").Error())
		set = &Set{}
	}

	newMessageHeaderParser(logger, opts.ParseExtended).Populate(msg, set)

	rawContentType := msg.ContentType
	if item, err := set.Get("content-type"); err == nil {
		rawContentType = item.Values[0]
	}

	w := newWalker(opts.Flags, opts.Cms, opts.Tnef, logger)
	parts := w.extractParts(rawContentType, msg.ContentTransferEncoding, body)
	selectBody(msg, parts)

	if opts.Flags.Has(IncludeRawHeaders) {
		msg.RawHeaders = headerBlock
	}
	if opts.Flags.Has(IncludeRawBody) {
		msg.RawBody = body
	}

	observeSmimeOutcome(msg)

	return msg
}

/*
splitMessage divides raw Internet Mail content into its header block and
body on the first blank line. When no blank-line delimiter is present at
all, the entire input is treated as headers and the body is empty -- the
expected shape for a headers-only or truncated message.
*/
func splitMessage(content string) (headerBlock, body string) {
	normalized := content
	if !strings.Contains(normalized, "\r\n") && strings.Contains(normalized, "\n") {
		normalized = strings.ReplaceAll(normalized, "\n", "\r\n")
	}

	if idx := strings.Index(normalized, "\r\n\r\n"); idx >= 0 {
		return normalized[:idx], normalized[idx+4:]
	}

	return normalized, ""
}

/*
LoadFile reads path and parses it in one step, for callers working
against .eml files on disk rather than bytes already in hand.
*/
func LoadFile(path string, opts ParseOptions) (*ParsedMessage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading message file")
	}

	return Parse(raw, opts), nil
}

/*
SaveFile writes raw message bytes to path, the inverse of LoadFile. It
exists for round-tripping in tests and for callers that pull a message
off the wire and want to persist the original octets unmodified.
*/
func SaveFile(path string, raw []byte) error {
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return errors.Wrap(err, "writing message file")
	}

	return nil
}
