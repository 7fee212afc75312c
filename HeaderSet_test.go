package mailparse

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestHeaderSet(t *testing.T) {
	Convey("A header Set", t, func() {
		Convey("tokenises simple, non-folded headers", func() {
			set, err := NewHeaderSet("Subject: Test\r\nX-Mailer: thing\r\n")
			So(err, ShouldBeNil)

			So(set.Fields, ShouldResemble, []HeaderField{
				{Name: "subject", Value: "Test"},
				{Name: "x-mailer", Value: "thing"},
			})
		})

		Convey("flat-joins continuations on a flat-policy header", func() {
			set, _ := NewHeaderSet("Subject: AAA\r\n BBB\r\n\r\n")

			item, err := set.Get("subject")
			So(err, ShouldBeNil)
			So(item.Values[0], ShouldEqual, "AAABBB")
		})

		Convey("CRLF-joins continuations on a crlf-policy header", func() {
			set, _ := NewHeaderSet("Received: from a\r\n by b\r\n")

			item, _ := set.Get("received")
			So(item.Values[0], ShouldEqual, "from a\r\n by b")
		})

		Convey("drops continuations on an ignore-policy header", func() {
			set, _ := NewHeaderSet("X-Custom: one\r\n two\r\n")

			item, _ := set.Get("x-custom")
			So(item.Values[0], ShouldEqual, "one")
		})

		Convey("recovers from bare LF line endings", func() {
			set, _ := NewHeaderSet("Subject: Test\nX-Mailer: thing\n")

			item, err := set.Get("subject")
			So(err, ShouldBeNil)
			So(item.Values[0], ShouldEqual, "Test")
		})

		Convey("silently skips malformed lines rather than erroring", func() {
			set, err := NewHeaderSet("Subject: Test\r\nnotaheader\r\nX-Mailer: thing\r\n")
			So(err, ShouldBeNil)

			_, err = set.Get("x-mailer")
			So(err, ShouldBeNil)
		})

		Convey("Get returns InvalidHeader for a missing header", func() {
			set, _ := NewHeaderSet("Subject: Test\r\n")

			_, err := set.Get("to")
			So(err, ShouldResemble, InvalidHeader("to"))
		})

		Convey("ToMap collapses fields keyed by lower-cased name", func() {
			set, _ := NewHeaderSet("Subject: Test\r\nTo: a@b.com\r\n")

			m := set.ToMap()
			So(m["subject"], ShouldResemble, []string{"Test"})
			So(m["to"], ShouldResemble, []string{"a@b.com"})
		})

		Convey("UnfoldHeaders joins continuations with no header-name awareness", func() {
			set := &Set{}
			headers := "Content-Type: text/html\r\n boundary=\"abcd\"\r\nSubject: Test\r\n"

			expected := "Content-Type: text/html boundary=\"abcd\"\r\nSubject: Test"
			actual := set.UnfoldHeaders(headers)

			So(actual, ShouldEqual, expected)
		})
	})
}

func TestSplitHeaderStart(t *testing.T) {
	Convey("splitHeaderStart", t, func() {
		Convey("recognises a well-formed header line", func() {
			name, value, ok := splitHeaderStart("Subject: Test")
			So(ok, ShouldBeTrue)
			So(name, ShouldEqual, "Subject")
			So(value, ShouldEqual, "Test")
		})

		Convey("rejects a line with no colon", func() {
			_, _, ok := splitHeaderStart("not a header")
			So(ok, ShouldBeFalse)
		})

		Convey("rejects a line where the colon is the last character", func() {
			_, _, ok := splitHeaderStart("Subject:")
			So(ok, ShouldBeFalse)
		})
	})
}
