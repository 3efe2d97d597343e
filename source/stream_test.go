package source

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestResolvedStream(t *testing.T) {
	Convey("ResolvedStream", t, func() {
		r := &ResolvedStream{
			URL:        "http://example.com/clip.mp4",
			Quality:    "1080p",
			Resolution: "1920x1080",
		}

		Convey("Combined", func() {
			So(r.Combined(), ShouldBeTrue)
			r.URL = ""
			r.VideoURL = "http://example.com/video.mp4"
			r.AudioURL = "http://example.com/audio.m4a"
			So(r.Combined(), ShouldBeFalse)
		})

		Convey("String representation", func() {
			So(r.String(), ShouldEqual, "1080p")
			r.Quality = ""
			So(r.String(), ShouldEqual, "1920x1080")
		})
	})
}

func TestResolutionString(t *testing.T) {
	Convey("ResolutionString", t, func() {
		So(ResolutionString(1920, 1080), ShouldEqual, "1920x1080")
		So(ResolutionString(0, 0), ShouldEqual, "0x0")
	})
}
