// Copyright 2013-2016 Adam Presley. All rights reserved
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package mailparse

import "strings"

/*
CmsProvider is the injected Cryptographic Message Syntax capability. This
package never links against a platform CMS library directly; it only ever
talks to CmsProvider -- an opaque capability the caller supplies -- which
keeps the parser portable and the signature/envelope behaviour trivially
mockable in tests.

The walker calls DecryptEnvelope once per pkcs7-mime part it visits and at
most one VerifySignature per multipart; both are treated as pure functions of their inputs
and either may be called from the package's own goroutine-free call stack
without any synchronisation.
*/
type CmsProvider interface {
	// DecryptEnvelope attempts to decrypt an application/pkcs7-mime envelope.
	// ok is false on any failure (wrong key, malformed envelope, ...); the
	// walker treats that as non-fatal and drops the encrypted part.
	DecryptEnvelope(envelope []byte) (plaintext []byte, ok bool)

	// VerifySignature verifies a detached application/pkcs7-signature block
	// against its signed sibling content. A false result is non-fatal: the
	// parts simply aren't marked signed.
	VerifySignature(signature, signedContent []byte) bool
}

/*
noopCmsProvider is used when Parse is given no CmsProvider. It always fails
both operations, which is the fail-open behaviour expected when no
decryption/verification capability exists.
*/
type noopCmsProvider struct{}

func (noopCmsProvider) DecryptEnvelope([]byte) ([]byte, bool) { return nil, false }
func (noopCmsProvider) VerifySignature([]byte, []byte) bool   { return false }

/*
prepareSignatureBlock strips a single trailing "\r\n\r\n" from a detached
signature block before handing it to VerifySignature.
*/
func prepareSignatureBlock(signature []byte) []byte {
	return []byte(strings.TrimSuffix(string(signature), "\r\n\r\n"))
}

const (
	contentTypePkcs7Signature  = "application/pkcs7-signature"
	contentTypeXPkcs7Signature = "application/x-pkcs7-signature"
	contentTypePkcs7Mime       = "application/pkcs7-mime"
	contentTypeXPkcs7Mime      = "application/x-pkcs7-mime"
)

func isPkcs7SignatureType(contentType string) bool {
	return strings.HasPrefix(contentType, contentTypePkcs7Signature) ||
		strings.HasPrefix(contentType, contentTypeXPkcs7Signature)
}

func isPkcs7MimeType(contentType string) bool {
	return strings.HasPrefix(contentType, contentTypePkcs7Mime) ||
		strings.HasPrefix(contentType, contentTypeXPkcs7Mime)
}

/*
isNonCryptographic reports whether contentType is NOT one of the three
PKCS7 types the S/MIME booleans are computed over: application/pkcs7-signature,
application/x-pkcs7-signature, and application/pkcs7-mime (its x- alias is
intentionally excluded from this check; only those three prefixes count).
*/
func isNonCryptographic(contentType string) bool {
	switch {
	case strings.HasPrefix(contentType, contentTypePkcs7Signature):
		return false
	case strings.HasPrefix(contentType, contentTypeXPkcs7Signature):
		return false
	case strings.HasPrefix(contentType, contentTypePkcs7Mime):
		return false
	}

	return true
}
