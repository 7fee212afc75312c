// Copyright 2013-2016 Adam Presley. All rights reserved
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package mailparse

import (
	"strings"

	"github.com/adampresley/webframework/logging2"
	"github.com/pkg/errors"
)

/*
walker recursively splits a MIME body on its multipart boundary, decodes
each leaf, and tags every part with its S/MIME provenance. It holds no
state across calls to extractParts other than the capabilities it was
built with -- every invocation is independent.
*/
type walker struct {
	flags  ProcessingFlags
	cms    CmsProvider
	tnef   TnefDecoder
	logger logging2.ILogger
}

func newWalker(flags ProcessingFlags, cms CmsProvider, tnef TnefDecoder, logger logging2.ILogger) *walker {
	if cms == nil {
		cms = noopCmsProvider{}
	}
	if tnef == nil {
		tnef = noopTnefDecoder{}
	}

	return &walker{flags: flags, cms: cms, tnef: tnef, logger: logger}
}

/*
extractParts is the entry point of the MIME tree walk: given a part's
Content-Type, Content-Transfer-Encoding, and body, it returns the ordered
list of leaf MimeParts found within.
*/
func (w *walker) extractParts(contentType, cte, body string) []*MimePart {
	lowerType := strings.ToLower(contentType)

	switch {
	case strings.HasPrefix(lowerType, "multipart/"):
		return w.extractMultipart(contentType, body)

	case lowerType == "application/ms-tnef":
		w.logger.Debugf("extractParts: routing to TNEF adapter")
		return applyTnef(w.tnef, decodeBase64(body), w.flags, "")

	case isPkcs7MimeType(lowerType):
		return w.extractPkcs7Mime(body)

	default:
		return []*MimePart{w.emitLeaf(contentType, cte, body)}
	}
}

/*
emitLeaf decodes block per cte and, if block still carries its own embedded
header section (a "\r\n\r\n" delimiter it wasn't already split on), folds in
whatever Content-Type/filename/charset/Content-ID that header contributes.
Otherwise the charset comes from contentType's own charset parameter, if it
has one. This lets extractParts be called directly on a never-split whole-message
body (the common top-level, non-multipart case) as well as on an
already-header-split sub-part body.
*/
func (w *walker) emitLeaf(contentType, cte, block string) *MimePart {
	name, contentID, charset := "", "", paramValue(contentType, "charset")

	if idx := strings.Index(block, "\r\n\r\n"); idx >= 0 {
		subHeaders, subBody := block[:idx], block[idx+4:]

		if mh, err := ParseMimeHeader(subHeaders); err == nil && mh.ContentType != "" {
			contentType = mh.ContentType
			if mh.ContentTransferEncoding != "" {
				cte = mh.ContentTransferEncoding
			}
			name = mh.FileName
			contentID = mh.ContentID
			charset = mh.Charset
			block = subBody
		}
	}

	decoded, err := DecodeTransferEncoding(cte, block)
	if err != nil {
		w.logger.Debugf("emitLeaf: %s", err.Error())
	}

	return &MimePart{
		Name:        name,
		ContentType: stripParams(contentType),
		Charset:     charset,
		ContentID:   contentID,
		Bytes:       decoded,
	}
}

/*
extractBoundary pulls the boundary parameter out of a multipart
Content-Type: the quoted form boundary="..." is preferred, falling back to
an unquoted boundary=... truncated at the next ";".
*/
func extractBoundary(contentType string) string {
	return paramValue(contentType, "boundary")
}

func (w *walker) extractMultipart(contentType, body string) []*MimePart {
	boundary := extractBoundary(contentType)
	if boundary == "" {
		w.logger.Debugf("extractMultipart: %s", MissingBoundary(contentType).Error())
		return []*MimePart{{ContentType: stripParams(contentType), Bytes: []byte(body)}}
	}

	delimiter := "--" + boundary
	rawSubParts := strings.Split(strings.TrimSpace(body), delimiter)

	var produced []*MimePart
	var mimeBlocks []string
	sigIndices := make([]int, 0, 1)

	for _, raw := range rawSubParts {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || trimmed == "--" {
			continue
		}

		subHeaders, subBody := trimmed, ""
		if idx := strings.Index(trimmed, "\r\n\r\n"); idx >= 0 {
			subHeaders, subBody = trimmed[:idx], trimmed[idx+4:]
		}

		mh, err := ParseMimeHeader(subHeaders)
		if err != nil {
			continue
		}

		mimeBlocks = append(mimeBlocks, subBody)
		blockIndex := len(mimeBlocks) - 1

		subContentType := strings.ToLower(mh.ContentType)

		switch {
		case strings.HasPrefix(subContentType, "multipart/"):
			produced = append(produced, w.extractMultipart(mh.RawContentType, subBody)...)

		case isPkcs7SignatureType(subContentType):
			sigIndices = append(sigIndices, blockIndex)

			if w.flags.Has(IncludeSmimeSignedData) {
				part := w.emitLeaf(mh.ContentType, mh.ContentTransferEncoding, subBody)
				part.Name, part.ContentID = mh.FileName, mh.ContentID
				produced = append(produced, part)
			}

		case isPkcs7MimeType(subContentType):
			produced = append(produced, w.extractPkcs7MimeParsed(mh, subBody)...)

		case subContentType == "application/ms-tnef" || strings.EqualFold(mh.FileName, "winmail.dat"):
			produced = append(produced, applyTnef(w.tnef, decodeBase64(subBody), w.flags, "")...)

		default:
			part := w.emitLeaf(mh.ContentType, mh.ContentTransferEncoding, subBody)
			part.Name, part.ContentID, part.Charset = mh.FileName, mh.ContentID, mh.Charset
			produced = append(produced, part)
		}
	}

	if len(sigIndices) == 1 && len(mimeBlocks) == 2 {
		sigIdx := sigIndices[0]
		contentIdx := 1 - sigIdx

		signature := prepareSignatureBlock([]byte(mimeBlocks[sigIdx]))
		content := []byte(mimeBlocks[contentIdx])

		if w.cms.VerifySignature(signature, content) {
			for _, part := range produced {
				part.SmimeSigned = true
				if part.SmimeEncryptedEnvelope {
					part.SmimeTripleWrapped = true
				}
			}
		}
	}

	return produced
}

/*
extractPkcs7Mime handles the top-level (non-multipart) dispatch case: the
whole message body is a single application/pkcs7-mime envelope.
*/
func (w *walker) extractPkcs7Mime(body string) []*MimePart {
	mh := &MimeHeader{ContentType: "application/pkcs7-mime"}
	return w.extractPkcs7MimeParsed(mh, body)
}

/*
extractPkcs7MimeParsed implements the shared pkcs7-mime branch used both at
the top-level dispatch and from within a multipart sub-part: optionally
keep the opaque envelope bytes as a "smime.p7m" attachment, then hand the
raw body to the CMS evaluator and splice in whatever it decrypts.
*/
func (w *walker) extractPkcs7MimeParsed(mh *MimeHeader, body string) []*MimePart {
	var produced []*MimePart

	decoded, err := DecodeTransferEncoding(mh.ContentTransferEncoding, body)
	if err != nil {
		w.logger.Debugf("extractPkcs7MimeParsed: %s", err.Error())
	}

	if w.flags.Has(IncludeSmimeEncryptedEnvelopeData) {
		produced = append(produced, &MimePart{
			Name:        "smime.p7m",
			ContentType: stripParams(mh.ContentType),
			Bytes:       decoded,
		})
	}

	plaintext, ok := w.cms.DecryptEnvelope(decoded)
	if !ok {
		w.logger.Debugf("extractPkcs7MimeParsed: envelope decryption failed or no CmsProvider configured")
		return produced
	}

	idx := strings.Index(string(plaintext), "\r\n\r\n")
	var innerHeaders, innerBody string
	if idx >= 0 {
		innerHeaders, innerBody = string(plaintext)[:idx], string(plaintext)[idx+4:]
	} else {
		innerBody = string(plaintext)
	}

	innerHeaderSet, err := ParseMimeHeader(innerHeaders)
	if err != nil {
		w.logger.Debugf("extractPkcs7MimeParsed: %s", errors.Wrap(err, "parsing decrypted envelope headers").Error())
		innerHeaderSet = &MimeHeader{}
	}

	innerParts := w.extractParts(innerHeaderSet.RawContentType, innerHeaderSet.ContentTransferEncoding, innerBody)
	for _, part := range innerParts {
		part.SmimeEncryptedEnvelope = true
	}

	return append(produced, innerParts...)
}
