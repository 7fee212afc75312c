package mailparse_test

import (
	"github.com/mailslurper/mailparse"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type fakeCms struct {
	decryptPlaintext []byte
	decryptOK        bool
	verifyResult     bool
}

func (f fakeCms) DecryptEnvelope([]byte) ([]byte, bool) { return f.decryptPlaintext, f.decryptOK }
func (f fakeCms) VerifySignature([]byte, []byte) bool   { return f.verifyResult }

var _ = Describe("Parse", func() {
	It("S1: parses a minimal plain text message", func() {
		raw := "From: a@x\r\nTo: b@y\r\nSubject: hi\r\n\r\nhello"
		msg := mailparse.Parse([]byte(raw), mailparse.ParseOptions{})

		Expect(msg.From.Address).To(Equal("a@x"))
		Expect(msg.To).To(HaveLen(1))
		Expect(msg.To[0].Address).To(Equal("b@y"))
		Expect(msg.Subject).To(Equal("hi"))
		Expect(msg.BodyText).To(Equal("hello"))
		Expect(msg.IsBodyHTML).To(BeFalse())
		Expect(msg.SmimeSigned).To(BeFalse())
	})

	It("S2: picks the html alternative as the body", func() {
		raw := "Content-Type: multipart/alternative; boundary=\"B\"\r\n\r\n" +
			"--B\r\nContent-Type: text/plain\r\n\r\nplain\r\n" +
			"--B\r\nContent-Type: text/html\r\n\r\n<p>html</p>\r\n" +
			"--B--"
		msg := mailparse.Parse([]byte(raw), mailparse.ParseOptions{})

		Expect(msg.BodyText).To(Equal("<p>html</p>"))
		Expect(msg.IsBodyHTML).To(BeTrue())
		Expect(msg.Attachments).To(BeEmpty())
	})

	It("S3: flat-concatenates a folded Subject continuation", func() {
		raw := "Subject: foo\r\n bar\r\nTo: x@y\r\n\r\n"
		msg := mailparse.Parse([]byte(raw), mailparse.ParseOptions{})

		Expect(msg.Subject).To(Equal("foobar"))
	})

	It("S4: strips angle brackets from Message-ID", func() {
		raw := "Message-ID: <abc@d>\r\n\r\n"
		msg := mailparse.Parse([]byte(raw), mailparse.ParseOptions{})

		Expect(msg.MessageID).To(Equal("abc@d"))
	})

	It("S5: decodes X-Priority", func() {
		raw := "X-Priority: high\r\n\r\n"
		msg := mailparse.Parse([]byte(raw), mailparse.ParseOptions{})

		Expect(msg.Priority).To(Equal(mailparse.PriorityHigh))
	})

	It("S6: preserves Received chain order", func() {
		raw := "Received: hop1\r\nReceived: hop2\r\n\r\n"
		msg := mailparse.Parse([]byte(raw), mailparse.ParseOptions{})

		Expect(msg.ReceivedChain).To(Equal([]string{"hop1", "hop2"}))
	})

	It("S7: decrypts a pkcs7-mime envelope via the injected CmsProvider", func() {
		raw := "Content-Type: application/pkcs7-mime\r\n\r\nopaque-envelope-bytes"
		cms := fakeCms{
			decryptPlaintext: []byte("Content-Type: text/plain\r\n\r\nsecret"),
			decryptOK:        true,
		}

		msg := mailparse.Parse([]byte(raw), mailparse.ParseOptions{Cms: cms})

		Expect(msg.BodyText).To(Equal("secret"))
		Expect(msg.SmimeEncryptedEnvelope).To(BeTrue())
		Expect(msg.Attachments).To(BeEmpty())
	})

	It("S8: marks every non-cryptographic leaf signed when the detached signature verifies", func() {
		raw := "Content-Type: multipart/signed; boundary=\"B\"\r\n\r\n" +
			"--B\r\nContent-Type: text/plain\r\n\r\nsigned content\r\n" +
			"--B\r\nContent-Type: application/pkcs7-signature\r\n\r\nsig-bytes\r\n" +
			"--B--"
		cms := fakeCms{verifyResult: true}

		msg := mailparse.Parse([]byte(raw), mailparse.ParseOptions{Cms: cms})

		Expect(msg.SmimeSigned).To(BeTrue())
		Expect(msg.BodyText).To(Equal("signed content"))
	})

	It("invariant: size equals the input's octet count", func() {
		raw := "From: a@x\r\n\r\nhello world"
		msg := mailparse.Parse([]byte(raw), mailparse.ParseOptions{})

		Expect(msg.Size).To(Equal(len(raw)))
	})

	It("invariant: raw_headers + delimiter + raw_body reconstructs the input", func() {
		raw := "From: a@x\r\nSubject: hi\r\n\r\nhello world"
		msg := mailparse.Parse([]byte(raw), mailparse.ParseOptions{
			Flags: mailparse.IncludeRawHeaders | mailparse.IncludeRawBody,
		})

		Expect(msg.RawHeaders + "\r\n\r\n" + msg.RawBody).To(Equal(raw))
	})

	It("invariant: triple-wrapped implies both signed and encrypted", func() {
		// outer multipart/signed wraps a pkcs7-mime envelope; once decrypted,
		// its inner parts already carry smime_encrypted_envelope=true, so the
		// outer signature check promotes them to triple-wrapped too.
		raw := "Content-Type: multipart/signed; boundary=\"B\"\r\n\r\n" +
			"--B\r\nContent-Type: application/pkcs7-mime\r\n\r\nopaque-envelope-bytes\r\n" +
			"--B\r\nContent-Type: application/pkcs7-signature\r\n\r\nsig-bytes\r\n" +
			"--B--"
		cms := fakeCms{
			decryptPlaintext: []byte("Content-Type: text/plain\r\n\r\nsecret"),
			decryptOK:        true,
			verifyResult:     true,
		}

		msg := mailparse.Parse([]byte(raw), mailparse.ParseOptions{Cms: cms})

		Expect(msg.SmimeTripleWrapped).To(BeTrue())
		Expect(msg.SmimeSigned).To(BeTrue())
		Expect(msg.SmimeEncryptedEnvelope).To(BeTrue())
	})

	It("invariant: a missing blank-line delimiter treats the whole input as headers", func() {
		raw := "Subject: no body delimiter here"
		msg := mailparse.Parse([]byte(raw), mailparse.ParseOptions{
			Flags: mailparse.IncludeRawHeaders | mailparse.IncludeRawBody,
		})

		Expect(msg.Subject).To(Equal("no body delimiter here"))
		Expect(msg.RawBody).To(Equal(""))
	})

	It("treats a pkcs7-mime envelope with no CmsProvider as fail-open rather than erroring", func() {
		raw := "Content-Type: application/pkcs7-mime\r\n\r\nopaque-envelope-bytes"
		msg := mailparse.Parse([]byte(raw), mailparse.ParseOptions{})

		Expect(msg.BodyText).To(BeEmpty())
		Expect(msg.Attachments).To(BeEmpty())
	})
})
