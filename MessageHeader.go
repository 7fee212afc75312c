// Copyright 2013-2016 Adam Presley. All rights reserved
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package mailparse

import (
	"strings"

	"github.com/adampresley/webframework/logging2"
	"github.com/adampresley/webframework/sanitizer"
)

/*
messageHeaderParser populates the envelope/routing/content-meta fields of a
ParsedMessage from an ordered header Set. Unless a field is explicitly an
accumulator (receivedChain) or first-wins (contentType), a later occurrence
of a single-valued header overwrites an earlier one.
*/
type messageHeaderParser struct {
	logger   logging2.ILogger
	xss      sanitizer.IXSSServiceProvider
	extended bool

	contentTypeSet bool
	rawSubject     string
	subjectSet     bool
	dateSet        bool
}

func newMessageHeaderParser(logger logging2.ILogger, extended bool) *messageHeaderParser {
	return &messageHeaderParser{
		logger:   logger,
		xss:      sanitizer.NewXSSService(),
		extended: extended,
	}
}

/*
Populate walks set.Fields in order and assigns every recognised header onto
msg. It never returns an error -- unrecognised headers are simply ignored.
*/
func (p *messageHeaderParser) Populate(msg *ParsedMessage, set *Set) {
	var ext *ExtendedProperties
	if p.extended {
		// Instantiated exactly once, not re-created per recognised header,
		// so fields set from one header survive the rest of the walk.
		ext = &ExtendedProperties{}
	}

	for _, field := range set.Fields {
		p.applyPrimary(msg, field)

		if p.extended {
			applyExtended(ext, field)
		}
	}

	if p.subjectSet {
		subject := decodeEncodedWords(p.rawSubject)
		subject = strings.ReplaceAll(subject, "\r", "")
		subject = strings.ReplaceAll(subject, "\n", "")

		// SanitizeString can rewrite a subject that merely contains "<"/">"
		// (e.g. "A <b> C") even though it carries no markup; still applied
		// here for consistency with how every other attacker-controlled
		// header is handled.
		msg.Subject = p.xss.SanitizeString(subject)
		p.logger.Debugf("Mail Subject: %s", msg.Subject)
	}

	if p.extended {
		sanitizeExtended(ext, p.xss)
		msg.Extended = ext
	}

	p.logger.Debugf("Mail Content-Type: %s", msg.ContentType)
}

func (p *messageHeaderParser) applyPrimary(msg *ParsedMessage, field HeaderField) {
	switch field.Name {
	case "from":
		if addrs := ParseAddressList(field.Value); len(addrs) > 0 {
			msg.From = &addrs[0]
		}

	case "to":
		msg.To = ParseAddressList(field.Value)

	case "cc":
		msg.Cc = ParseAddressList(field.Value)

	case "bcc":
		msg.Bcc = ParseAddressList(field.Value)

	case "reply-to", "replyto":
		msg.ReplyTo = ParseAddressList(field.Value)

	case "sender", "x-sender":
		if addrs := ParseAddressList(field.Value); len(addrs) > 0 {
			msg.Sender = &addrs[0]
		}

	case "subject":
		p.rawSubject = field.Value
		p.subjectSet = true

	case "date":
		if t, ok := parseDate(field.Value); ok {
			msg.Date = t
			p.dateSet = true
		}

	case "resent-date", "x-original-arrival-time":
		if !p.dateSet {
			if t, ok := parseDate(field.Value); ok {
				msg.Date = t
			}
		}

	case "message-id":
		msg.MessageID = stripAngleBrackets(field.Value)

	case "in-reply-to":
		msg.InReplyTo = stripAngleBrackets(field.Value)

	case "return-path":
		msg.ReturnPath = stripAngleBrackets(field.Value)

	case "content-type":
		if !p.contentTypeSet {
			msg.ContentType = stripParams(field.Value)
			msg.Charset = paramValue(field.Value, "charset")
			p.contentTypeSet = true
		}

	case "content-transfer-encoding":
		msg.ContentTransferEncoding = strings.TrimSpace(field.Value)

	case "content-language":
		msg.ContentLanguage = strings.TrimSpace(field.Value)

	case "delivered-to":
		msg.DeliveredTo = strings.TrimSpace(field.Value)

	case "importance":
		msg.Importance = strings.TrimSpace(field.Value)

	case "received", "x-received":
		msg.ReceivedChain = append(msg.ReceivedChain, field.Value)

	case "x-priority":
		msg.Priority = parsePriority(field.Value)

	case "x-subject-encryption":
		msg.SubjectEncryption = parseBool(field.Value)
	}
}

func parsePriority(value string) Priority {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "LOW":
		return PriorityLow
	case "HIGH":
		return PriorityHigh
	default:
		return PriorityNormal
	}
}

func parseBool(value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "true", "1", "yes", "y":
		return true
	default:
		return false
	}
}

// applyExtended maps every recognised extended header name to the
// ExtendedProperties field it feeds -- aliases for the same logical field
// (DKIM/DomainKey, Organization's several spellings, ...) are merged here.
func applyExtended(ext *ExtendedProperties, field HeaderField) {
	value := strings.TrimSpace(field.Value)

	switch field.Name {
	case "authentication-results":
		ext.AuthenticationResults = value

	case "dkim-signature", "domainkey-signature":
		ext.DKIMSignature = value

	case "bounces-to":
		ext.BouncesTo = value

	case "disposition-notification-to":
		ext.DispositionNotificationTo = value

	case "errors-to":
		ext.ErrorsTo = value

	case "list-unsubscribe":
		ext.ListUnsubscribe = value

	case "mailer", "x-mailer":
		ext.Mailer = value

	case "organization", "organisation", "x-organization", "x-organisation":
		ext.Organization = value

	case "original-message-id":
		ext.OriginalMessageID = stripAngleBrackets(value)

	case "originating-email":
		ext.OriginatingEmail = value

	case "originating-ip", "x-originating-ip":
		ext.OriginatingIP = value

	case "precedence":
		ext.Precedence = value

	case "received-spf":
		ext.ReceivedSPF = value

	case "references":
		ext.References = value

	case "resent-from":
		ext.ResentFrom = value

	case "resent-message-id":
		ext.ResentMessageID = stripAngleBrackets(value)

	case "thread-index":
		ext.ThreadIndex = value

	case "thread-topic":
		ext.ThreadTopic = value

	case "user-agent":
		ext.UserAgent = value

	case "auto-response-suppress":
		ext.AutoResponseSuppress = value

	case "auto-submitted":
		ext.AutoSubmitted = value

	case "campaign-id", "x-campaign-id", "x-campaignid":
		ext.CampaignID = value

	case "delivery-context":
		ext.DeliveryContext = value

	case "mail-list-id", "list-id":
		ext.MailListID = value

	case "msmail-priority":
		ext.MSMailPriority = value

	case "rcpt-to":
		ext.RCPTTo = stripOneCharEachEnd(value)

	case "report-abuse", "x-report-abuse", "x-report-abuse-to":
		ext.ReportAbuse = value

	case "spam-score", "x-spam-score":
		ext.SpamScore = value
	}
}

func stripOneCharEachEnd(s string) string {
	if len(s) < 2 {
		return s
	}
	return s[1 : len(s)-1]
}

// sanitizeExtended passes every populated string field of ext through the
// XSS sanitiser -- extended headers are attacker-controlled input, exactly
// like any other envelope address or subject.
func sanitizeExtended(ext *ExtendedProperties, xss sanitizer.IXSSServiceProvider) {
	fields := []*string{
		&ext.AuthenticationResults, &ext.AutoResponseSuppress, &ext.AutoSubmitted,
		&ext.BouncesTo, &ext.CampaignID, &ext.DeliveryContext,
		&ext.DispositionNotificationTo, &ext.DKIMSignature, &ext.ErrorsTo,
		&ext.ListUnsubscribe, &ext.MailListID, &ext.Mailer, &ext.MSMailPriority,
		&ext.Organization, &ext.OriginalMessageID, &ext.OriginatingEmail,
		&ext.OriginatingIP, &ext.Precedence, &ext.RCPTTo, &ext.ReceivedSPF,
		&ext.References, &ext.ReportAbuse, &ext.ResentFrom, &ext.ResentMessageID,
		&ext.SpamScore, &ext.ThreadIndex, &ext.ThreadTopic, &ext.UserAgent,
	}

	for _, f := range fields {
		if *f != "" {
			*f = xss.SanitizeString(*f)
		}
	}
}
