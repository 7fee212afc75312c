// Copyright 2013-2016 Adam Presley. All rights reserved
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package mailparse

import "time"

/*
Address is a single named mailbox, as found in a From/To/Cc/Bcc/Reply-To
header. Name may be empty when the header carries a bare address with no
display name.
*/
type Address struct {
	Name    string
	Address string
}

/*
Priority is the decoded value of an X-Priority header.
*/
type Priority int

const (
	PriorityNormal Priority = iota
	PriorityLow
	PriorityHigh
)

/*
Flags is a bitset over the IMAP/POP3 system flags a side channel may attach
to a message (\Answered, \Deleted, ...).
*/
type Flags uint

const (
	FlagAnswered Flags = 1 << iota
	FlagDeleted
	FlagDraft
	FlagFlagged
	FlagRecent
	FlagSeen
)

/*
ProcessingFlags is a bitset of options a caller passes to Parse to control
how much of the raw input, and which opaque S/MIME parts, are retained on
the resulting ParsedMessage.
*/
type ProcessingFlags uint

// None is the default used by the one-argument convenience form.
const None ProcessingFlags = 0

const (
	// IncludeRawHeaders retains RawHeaders on the result.
	IncludeRawHeaders ProcessingFlags = 1 << iota

	// IncludeRawBody retains RawBody on the result.
	IncludeRawBody

	// IncludeSmimeSignedData keeps application/pkcs7-signature parts as attachments.
	IncludeSmimeSignedData

	// IncludeSmimeEncryptedEnvelopeData keeps application/pkcs7-mime parts as attachments.
	IncludeSmimeEncryptedEnvelopeData

	// IncludeWinMailData keeps the synthetic winmail.dat part produced by the TNEF adapter.
	IncludeWinMailData
)

/*
Has reports whether every bit in want is set in flags.
*/
func (flags ProcessingFlags) Has(want ProcessingFlags) bool {
	return flags&want == want
}

/*
Attachment is a single non-text leaf of the MIME part tree, promoted out of
the tree by the Body Selector once parsing is complete.
*/
type Attachment struct {
	Name        string
	ContentType string
	ContentID   string
	Bytes       []byte
}

/*
ExtendedProperties holds the rarer, mailer-specific headers that most callers
don't need. It is only populated when Parse is invoked with parseExtended
set to true, and is instantiated exactly once per parse so that fields set
from one header survive the rest of the walk.
*/
type ExtendedProperties struct {
	AuthenticationResults    string
	AutoResponseSuppress     string
	AutoSubmitted            string
	BouncesTo                string
	CampaignID               string
	DeliveryContext          string
	DispositionNotificationTo string
	DKIMSignature            string
	ErrorsTo                 string
	ListUnsubscribe          string
	MailListID               string
	Mailer                   string
	MSMailPriority           string
	Organization             string
	OriginalMessageID        string
	OriginatingEmail         string
	OriginatingIP            string
	Precedence               string
	RCPTTo                   string
	ReceivedSPF              string
	References               string
	ReportAbuse              string
	ResentFrom               string
	ResentMessageID          string
	SpamScore                string
	ThreadIndex              string
	ThreadTopic              string
	UserAgent                string
}

/*
MimePart is the internal, pre-selection representation of a single leaf of
the MIME part tree produced while walking a message body. The body selector
consumes a flat slice of these to build the final BodyText/Attachments on
ParsedMessage. Bytes are kept raw and undecoded-to-text; Text() decodes them
against Charset on demand, so a caller that never asks for text never pays
for the decode.
*/
type MimePart struct {
	Name        string
	ContentType string
	Charset     string
	ContentID   string
	Bytes       []byte

	SmimeSigned            bool
	SmimeEncryptedEnvelope bool
	SmimeTripleWrapped     bool
}

/*
ParsedMessage is the single read-only product of parsing a raw Internet Mail
octet blob. It is constructed in one shot by Parse and never mutated
afterward.
*/
type ParsedMessage struct {
	// Envelope
	From    *Address
	To      []Address
	Cc      []Address
	Bcc     []Address
	ReplyTo []Address
	Sender  *Address
	Subject string
	Date    *time.Time

	// Routing
	MessageID     string
	InReplyTo     string
	DeliveredTo   string
	ReturnPath    string
	ReceivedChain []string

	// Content metadata
	ContentType             string
	ContentTransferEncoding string
	ContentLanguage         string
	Charset                 string
	Importance              string
	Priority                Priority

	// Body
	BodyText   string
	IsBodyHTML bool

	// Attachments, in part-tree order
	Attachments []*Attachment

	// Raw, only populated when the matching ProcessingFlags bit was set
	RawHeaders string
	RawBody    string
	Size       int

	// S/MIME
	SmimeSigned            bool
	SmimeEncryptedEnvelope bool
	SmimeTripleWrapped     bool

	// Extended, only populated when parseExtended is true
	Extended *ExtendedProperties

	// IMAP/POP3 side channel, never populated by Parse itself -- these are
	// here for hosts that fetched this message over IMAP/POP3 and want to
	// carry the mailbox-specific bits alongside the parsed result.
	Mailbox  string
	ImapUID  uint32
	Pop3UIDL string
	Index    int
	Flags    Flags
	RawFlags map[string]struct{}

	// SubjectEncryption is the OpaqueMail X-Subject-Encryption extension.
	SubjectEncryption bool
}
