// Copyright 2013-2016 Adam Presley. All rights reserved
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package mailparse

import "strings"

var systemFlagBits = map[string]Flags{
	`\answered`: FlagAnswered,
	`\deleted`:  FlagDeleted,
	`\draft`:    FlagDraft,
	`\flagged`:  FlagFlagged,
	`\recent`:   FlagRecent,
	`\seen`:     FlagSeen,
}

/*
ParseFlags splits an IMAP/POP3 flags string on spaces, ORs any
recognised system flag (\Answered, \Deleted, \Draft, \Flagged, \Recent,
\Seen, matched case-insensitively) into a Flags bitset, and records every
token -- recognised or not -- in its original case into rawFlags. It
returns the number of fields the single-space split produced, empty ones
(from repeated spaces) included.
*/
func ParseFlags(s string) (flags Flags, rawFlags map[string]struct{}, count int) {
	rawFlags = make(map[string]struct{})

	tokens := strings.Split(s, " ")
	for _, token := range tokens {
		count++

		if token == "" {
			continue
		}

		rawFlags[token] = struct{}{}

		if bit, ok := systemFlagBits[strings.ToLower(token)]; ok {
			flags |= bit
		}
	}

	return flags, rawFlags, count
}

/*
String renders a Flags bitset back into its \Name tokens, space separated,
in a fixed canonical order. Useful for logging.
*/
func (flags Flags) String() string {
	order := []struct {
		bit  Flags
		name string
	}{
		{FlagAnswered, `\Answered`},
		{FlagDeleted, `\Deleted`},
		{FlagDraft, `\Draft`},
		{FlagFlagged, `\Flagged`},
		{FlagRecent, `\Recent`},
		{FlagSeen, `\Seen`},
	}

	names := make([]string, 0, len(order))
	for _, entry := range order {
		if flags&entry.bit != 0 {
			names = append(names, entry.name)
		}
	}

	return strings.Join(names, " ")
}
