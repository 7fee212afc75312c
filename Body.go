// Copyright 2013-2016 Adam Presley. All rights reserved
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package mailparse

import (
	"strings"

	"github.com/google/uuid"
)

/*
selectBody given the flat, ordered list of leaf parts the walker produced,
picks the canonical text body, demotes every other part to an attachment,
and applies the optional subject-in-body extraction. It also computes the
three S/MIME booleans, the AND over every non-cryptographic leaf.
*/
func selectBody(msg *ParsedMessage, parts []*MimePart) {
	var bodyPart *MimePart
	bodyIsHTML := false

	allSigned, allEncrypted, allTripleWrapped := true, true, true
	sawNonCrypto := false

	for _, part := range parts {
		isText := part.ContentType == "" || strings.HasPrefix(part.ContentType, "text/")

		if isText {
			switch {
			case bodyPart == nil:
				bodyPart = part
				bodyIsHTML = strings.HasPrefix(part.ContentType, "text/html")

			case !bodyIsHTML && strings.HasPrefix(part.ContentType, "text/html"):
				bodyPart = part
				bodyIsHTML = true

				// the part this replaces is intentionally dropped, not attached
			}
		} else {
			msg.Attachments = append(msg.Attachments, toAttachment(part))
		}

		if isNonCryptographic(part.ContentType) {
			sawNonCrypto = true
			allSigned = allSigned && part.SmimeSigned
			allEncrypted = allEncrypted && part.SmimeEncryptedEnvelope
			allTripleWrapped = allTripleWrapped && part.SmimeTripleWrapped
		}
	}

	if bodyPart != nil {
		msg.BodyText = bodyPart.Text()
		msg.IsBodyHTML = bodyIsHTML
		msg.Charset = bodyPart.Charset
		msg.ContentType = bodyPart.ContentType
	}

	if !sawNonCrypto {
		allSigned, allEncrypted, allTripleWrapped = true, true, true
	}

	msg.SmimeSigned = allSigned
	msg.SmimeEncryptedEnvelope = allEncrypted
	msg.SmimeTripleWrapped = allTripleWrapped

	if msg.SubjectEncryption {
		extractSubjectFromBody(msg)
	}
}

/*
extractSubjectFromBody implements the OpaqueMail X-Subject-Encryption
extension: when the body itself begins with "Subject: ", that's the real
(encrypted) subject and it's pulled back out into msg.Subject, trimming the
prefix from the body.
*/
func extractSubjectFromBody(msg *ParsedMessage) {
	const prefix = "Subject: "

	if !strings.HasPrefix(msg.BodyText, prefix) {
		return
	}

	idx := strings.Index(msg.BodyText, "\r\n")
	if idx < 0 {
		return
	}

	msg.Subject = msg.BodyText[len(prefix):idx]
	msg.BodyText = msg.BodyText[idx+2:]
}

/*
toAttachment promotes a non-text MimePart to an Attachment. A part with
bytes but no Content-ID is given a generated one, so a caller resolving
"cid:" references in an HTML body always has a stable key to look up.
*/
func toAttachment(part *MimePart) *Attachment {
	contentID := part.ContentID
	if contentID == "" && len(part.Bytes) > 0 {
		contentID = uuid.NewString()
	}

	return &Attachment{
		Name:        part.Name,
		ContentType: part.ContentType,
		ContentID:   contentID,
		Bytes:       part.Bytes,
	}
}
