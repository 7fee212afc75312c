package mailparse

import "fmt"

/*
An InvalidHeaderError is returned by Item.ParseHeaderString for a line with
no colon, and by Set.Get when the requested header is absent. The tokeniser
itself (Set.Parse) never produces it -- malformed lines are silently
skipped, per the fail-open design of the header parser.
*/
type InvalidHeaderError struct {
	InvalidHeader string
}

/*
InvalidHeader returns a new error object
*/
func InvalidHeader(header string) *InvalidHeaderError {
	return &InvalidHeaderError{
		InvalidHeader: header,
	}
}

func (err *InvalidHeaderError) Error() string {
	return fmt.Sprintf("invalid header %q", err.InvalidHeader)
}

/*
A MissingBoundaryError describes a multipart Content-Type that carries no
boundary parameter. The MIME tree walker builds one only to log it at debug
level; it is not returned to any caller. The multipart falls back to a
single leaf carrying the raw, undecoded body.
*/
type MissingBoundaryError struct {
	ContentType string
}

func MissingBoundary(contentType string) *MissingBoundaryError {
	return &MissingBoundaryError{ContentType: contentType}
}

func (err *MissingBoundaryError) Error() string {
	return fmt.Sprintf("no boundary parameter in content-type %q", err.ContentType)
}

/*
An UnknownTransferEncodingError notes that the codec fell back to identity
decoding because it didn't recognise the named transfer encoding. It is never
fatal -- the codec always returns the identity bytes alongside it -- but a
caller wired up for it can observe the fallback.
*/
type UnknownTransferEncodingError struct {
	Encoding string
}

func UnknownTransferEncoding(encoding string) *UnknownTransferEncodingError {
	return &UnknownTransferEncodingError{Encoding: encoding}
}

func (err *UnknownTransferEncodingError) Error() string {
	return fmt.Sprintf("unrecognised content-transfer-encoding %q, treated as identity", err.Encoding)
}
