package mailparse

import (
	"testing"

	"github.com/adampresley/webframework/logging2"
	. "github.com/smartystreets/goconvey/convey"
)

func testLogger() logging2.ILogger {
	return logging2.LogFactory(logging2.LOG_FORMAT_SIMPLE, "mailparse-test", logging2.INFO)
}

func TestExtractBoundary(t *testing.T) {
	Convey("extractBoundary", t, func() {
		Convey("prefers the quoted form", func() {
			So(extractBoundary(`multipart/mixed; boundary="abc123"`), ShouldEqual, "abc123")
		})

		Convey("falls back to an unquoted boundary", func() {
			So(extractBoundary("multipart/mixed; boundary=abc123; charset=utf-8"), ShouldEqual, "abc123")
		})

		Convey("is empty when no boundary parameter is present", func() {
			So(extractBoundary("multipart/mixed"), ShouldEqual, "")
		})
	})
}

func TestWalkerEmitLeaf(t *testing.T) {
	Convey("emitLeaf", t, func() {
		w := newWalker(None, nil, nil, testLogger())

		Convey("decodes the body per the given transfer encoding", func() {
			part := w.emitLeaf("text/plain", "base64", "aGVsbG8=")
			So(string(part.Bytes), ShouldEqual, "hello")
			So(part.ContentType, ShouldEqual, "text/plain")
		})

		Convey("splits off an embedded header block when the body carries one", func() {
			block := "Content-Type: text/html; charset=iso-8859-1\r\n\r\n<p>hi</p>"
			part := w.emitLeaf("", "", block)

			So(part.ContentType, ShouldEqual, "text/html")
			So(part.Charset, ShouldEqual, "iso-8859-1")
			So(string(part.Bytes), ShouldEqual, "<p>hi</p>")
		})
	})
}

func TestWalkerExtractParts(t *testing.T) {
	Convey("extractParts", t, func() {
		w := newWalker(None, nil, nil, testLogger())

		Convey("splits a multipart/mixed body on its boundary", func() {
			body := "--B\r\nContent-Type: text/plain\r\n\r\none\r\n" +
				"--B\r\nContent-Type: text/plain\r\n\r\ntwo\r\n--B--"

			parts := w.extractParts(`multipart/mixed; boundary="B"`, "", body)

			So(len(parts), ShouldEqual, 2)
			So(string(parts[0].Bytes), ShouldEqual, "one")
			So(string(parts[1].Bytes), ShouldEqual, "two")
		})

		Convey("recurses into a nested multipart", func() {
			inner := "--I\r\nContent-Type: text/plain\r\n\r\nnested\r\n--I--"
			body := "--O\r\nContent-Type: multipart/mixed; boundary=\"I\"\r\n\r\n" + inner + "\r\n--O--"

			parts := w.extractParts(`multipart/mixed; boundary="O"`, "", body)

			So(len(parts), ShouldEqual, 1)
			So(string(parts[0].Bytes), ShouldEqual, "nested")
		})

		Convey("falls back to the raw body as a single undecoded leaf when the multipart carries no boundary", func() {
			parts := w.extractParts("multipart/mixed", "", "anything")
			So(len(parts), ShouldEqual, 1)
			So(string(parts[0].Bytes), ShouldEqual, "anything")
		})

		Convey("treats a non-multipart, non-special type as a single leaf", func() {
			parts := w.extractParts("text/plain", "7bit", "just text")
			So(len(parts), ShouldEqual, 1)
			So(string(parts[0].Bytes), ShouldEqual, "just text")
		})
	})
}
