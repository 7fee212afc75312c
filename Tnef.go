// Copyright 2013-2016 Adam Presley. All rights reserved
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package mailparse

/*
TnefResult is what a TnefDecoder hands back to the walker: an optional
textual body, the content type that body should be treated as, and any
attachments TNEF carried (e.g. a winmail.dat often bundles the "real"
attachments alongside a body duplicate).
*/
type TnefResult struct {
	Body        string
	HasBody     bool
	ContentType string
	Attachments []*MimePart
}

/*
TnefDecoder abstracts the external, black-box TNEF (winmail.dat) decoder.
TNEF decoding internals are out of scope for this package; it only ever
calls through this interface.
*/
type TnefDecoder interface {
	Decode(tnefBytes []byte) (TnefResult, error)
}

/*
noopTnefDecoder is used when Parse is given no TnefDecoder. It returns an
empty result, so a TNEF part then contributes no parts at all (no body, no
attachments, no winmail.dat) -- fail-open, the same way an undecryptable
envelope is dropped when no CmsProvider is configured.
*/
type noopTnefDecoder struct{}

func (noopTnefDecoder) Decode([]byte) (TnefResult, error) {
	return TnefResult{}, nil
}

/*
applyTnef invokes decoder on tnefBytes and appends whatever it produces onto
parts: a synthetic "winmail.dat" part when IncludeWinMailData is set and a
body was returned, followed by all of its attachments, in order.
correlator, when non-empty, is copied onto the synthetic part's ContentID
when TNEF gave it no better identifier.
*/
func applyTnef(decoder TnefDecoder, tnefBytes []byte, flags ProcessingFlags, correlator string) []*MimePart {
	result, err := decoder.Decode(tnefBytes)
	if err != nil {
		return nil
	}

	parts := make([]*MimePart, 0, len(result.Attachments)+1)

	if flags.Has(IncludeWinMailData) && result.HasBody && result.Body != "" {
		contentID := correlator

		parts = append(parts, &MimePart{
			Name:        "winmail.dat",
			ContentType: result.ContentType,
			ContentID:   contentID,
			Bytes:       []byte(result.Body),
		})
	}

	parts = append(parts, result.Attachments...)

	return parts
}
