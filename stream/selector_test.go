package stream

import (
	"testing"

	"github.com/kinotree/kinotree/config"
	"github.com/kinotree/kinotree/filesystem"
	"github.com/kinotree/kinotree/source"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
	lo.Must0(config.Setup())
}

func muxed(url string, height, fps int) *source.StreamVariant {
	return &source.StreamVariant{
		MimeType: "video/mp4",
		URL:      url,
		Width:    height * 16 / 9,
		Height:   height,
		FPS:      fps,
		HasAudio: true,
	}
}

func videoOnly(url string, height, fps int) *source.StreamVariant {
	v := muxed(url, height, fps)
	v.HasAudio = false
	return v
}

func track(url, mime, lang string, bitrate int) *source.AudioTrack {
	return &source.AudioTrack{MimeType: mime, URL: url, Bitrate: bitrate, Language: lang}
}

func TestIsManifest(t *testing.T) {
	Convey("IsManifest", t, func() {
		So(IsManifest("http://x/playlist.m3u8", ""), ShouldBeTrue)
		So(IsManifest("http://x/stream.mpd", ""), ShouldBeTrue)
		So(IsManifest("http://x/a.mp4", "application/x-mpegURL"), ShouldBeTrue)
		So(IsManifest("http://x/a.mp4", "video/mp4"), ShouldBeFalse)
	})
}

func TestQualityLabel(t *testing.T) {
	Convey("QualityLabel", t, func() {
		So(QualityLabel(1080, 30), ShouldEqual, "1080p")
		So(QualityLabel(1080, 60), ShouldEqual, "1080p60")
		So(QualityLabel(0, 60), ShouldEqual, "")
	})
}

func TestSelectBest(t *testing.T) {
	Convey("Given muxed preferred-container variants", t, func() {
		variants := []*source.StreamVariant{
			muxed("http://x/480.mp4", 480, 30),
			muxed("http://x/1080-30.mp4", 1080, 30),
			muxed("http://x/720.mp4", 720, 30),
			muxed("http://x/1080-60.mp4", 1080, 60),
		}

		Convey("The highest resolution wins, frame rate breaking the tie", func() {
			resolved, err := SelectBest(variants, nil)
			So(err, ShouldBeNil)
			So(resolved.URL, ShouldEqual, "http://x/1080-60.mp4")
			So(resolved.Combined(), ShouldBeTrue)
			So(resolved.Quality, ShouldEqual, "1080p60")
			So(resolved.Resolution, ShouldEqual, "1920x1080")
			So(resolved.AudioLanguage.IsAbsent(), ShouldBeTrue)
		})

		Convey("Manifest-style variants are ignored", func() {
			manifest := muxed("http://x/master.m3u8", 2160, 60)
			resolved, err := SelectBest(append(variants, manifest), nil)
			So(err, ShouldBeNil)
			So(resolved.URL, ShouldEqual, "http://x/1080-60.mp4")
		})
	})

	Convey("Given only video-only preferred-container variants", t, func() {
		variants := []*source.StreamVariant{
			videoOnly("http://x/v720.mp4", 720, 30),
			videoOnly("http://x/v1080.mp4", 1080, 30),
		}
		tracks := []*source.AudioTrack{
			track("http://x/en-lo.m4a", "audio/mp4", "en", 64000),
			track("http://x/en-hi.m4a", "audio/mp4", "en", 128000),
			track("http://x/fr.m4a", "audio/mp4", "fr", 256000),
		}

		Convey("The best video pairs with the best preferred-language track", func() {
			resolved, err := SelectBest(variants, tracks, "en")
			So(err, ShouldBeNil)
			So(resolved.Combined(), ShouldBeFalse)
			So(resolved.VideoURL, ShouldEqual, "http://x/v1080.mp4")
			So(resolved.AudioURL, ShouldEqual, "http://x/en-hi.m4a")
			So(resolved.AudioLanguage.MustGet(), ShouldEqual, "en")
		})

		Convey("Without any audio track the failure is explicit", func() {
			_, err := SelectBest(variants, nil)
			So(err, ShouldEqual, ErrNoAudioTracks)
		})
	})

	Convey("Given no preferred-container variant at all", t, func() {
		variants := []*source.StreamVariant{
			{MimeType: "video/webm", URL: "http://x/a.webm", Height: 720, FPS: 30, HasAudio: true},
		}

		Convey("Selection falls back to any container", func() {
			resolved, err := SelectBest(variants, nil)
			So(err, ShouldBeNil)
			So(resolved.URL, ShouldEqual, "http://x/a.webm")
		})
	})

	Convey("Given only manifest-style variants", t, func() {
		variants := []*source.StreamVariant{
			muxed("http://x/master.m3u8", 1080, 30),
		}

		Convey("Selection fails explicitly", func() {
			_, err := SelectBest(variants, nil)
			So(err, ShouldEqual, ErrNoSuitableStream)
		})
	})

	Convey("Given variants with absent dimensions", t, func() {
		variants := []*source.StreamVariant{
			{MimeType: "video/mp4", URL: "http://x/unknown.mp4", HasAudio: true},
			muxed("http://x/360.mp4", 360, 24),
		}

		Convey("Zero-valued fields sort last, never erroring", func() {
			resolved, err := SelectBest(variants, nil)
			So(err, ShouldBeNil)
			So(resolved.URL, ShouldEqual, "http://x/360.mp4")
		})
	})
}

func TestSelectAudio(t *testing.T) {
	Convey("Given tracks in unwanted languages only", t, func() {
		tracks := []*source.AudioTrack{
			track("http://x/fr.m4a", "audio/mp4", "fr", 128000),
			track("http://x/de.m4a", "audio/mp4", "de", 192000),
		}

		Convey("Selection falls past language filtering to the best preferred-container track", func() {
			best, err := SelectAudio(tracks, "en")
			So(err, ShouldBeNil)
			So(best.URL, ShouldEqual, "http://x/de.m4a")
		})
	})

	Convey("Given no preferred-container track", t, func() {
		tracks := []*source.AudioTrack{
			track("http://x/a.webm", "audio/webm", "fr", 96000),
			track("http://x/b.webm", "audio/webm", "de", 160000),
		}

		Convey("The best track of any container wins", func() {
			best, err := SelectAudio(tracks, "en")
			So(err, ShouldBeNil)
			So(best.URL, ShouldEqual, "http://x/b.webm")
		})
	})

	Convey("Given only manifest-style tracks", t, func() {
		tracks := []*source.AudioTrack{
			track("http://x/lo.m3u8", "application/x-mpegURL", "en", 64000),
			track("http://x/hi.m3u8", "application/x-mpegURL", "en", 128000),
		}

		Convey("The highest bitrate overall is the last resort", func() {
			best, err := SelectAudio(tracks, "en")
			So(err, ShouldBeNil)
			So(best.URL, ShouldEqual, "http://x/hi.m3u8")
		})
	})

	Convey("Given an empty track list", t, func() {
		_, err := SelectAudio(nil, "en")
		So(err, ShouldEqual, ErrNoAudioTracks)
	})

	Convey("Language matching is case-insensitive", t, func() {
		tracks := []*source.AudioTrack{
			track("http://x/en.m4a", "audio/mp4", "EN", 128000),
			track("http://x/fr.m4a", "audio/mp4", "fr", 256000),
		}

		best, err := SelectAudio(tracks, "en")
		So(err, ShouldBeNil)
		So(best.URL, ShouldEqual, "http://x/en.m4a")
	})
}

func TestSelectURL(t *testing.T) {
	Convey("SelectURL", t, func() {
		Convey("Returns just the muxed URL for combined selections", func() {
			videoURL, audioURL, err := SelectURL([]*source.StreamVariant{muxed("http://x/a.mp4", 720, 30)}, nil)
			So(err, ShouldBeNil)
			So(videoURL, ShouldEqual, "http://x/a.mp4")
			So(audioURL, ShouldBeEmpty)
		})

		Convey("Returns both URLs for paired selections", func() {
			videoURL, audioURL, err := SelectURL(
				[]*source.StreamVariant{videoOnly("http://x/v.mp4", 720, 30)},
				[]*source.AudioTrack{track("http://x/a.m4a", "audio/mp4", "en", 128000)},
			)
			So(err, ShouldBeNil)
			So(videoURL, ShouldEqual, "http://x/v.mp4")
			So(audioURL, ShouldEqual, "http://x/a.m4a")
		})

		Convey("Propagates the no-stream failure", func() {
			_, _, err := SelectURL(nil, nil)
			So(err, ShouldEqual, ErrNoSuitableStream)
		})
	})
}
