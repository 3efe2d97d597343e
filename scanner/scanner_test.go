package scanner

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

// seedTree builds the fixture used across scanner tests:
//
//	/media
//	├── shows/
//	│   ├── season1/
//	│   │   └── deep/
//	│   │       └── buried.mkv
//	│   └── pilot.mp4
//	├── notes.txt
//	├── UPPER.MP4
//	└── top.webm
func seedTree() {
	fs := filesystem.API()
	lo.Must0(fs.MkdirAll("/media/shows/season1/deep", 0755))
	for _, f := range []string{
		"/media/shows/season1/deep/buried.mkv",
		"/media/shows/pilot.mp4",
		"/media/notes.txt",
		"/media/UPPER.MP4",
		"/media/top.webm",
	} {
		lo.Must0(fs.WriteFile(f, []byte("x"), 0644))
	}
}

func TestIsPlayable(t *testing.T) {
	Convey("IsPlayable", t, func() {
		So(IsPlayable("a.mp4"), ShouldBeTrue)
		So(IsPlayable("a.MKV"), ShouldBeTrue)
		So(IsPlayable("a.m4v"), ShouldBeTrue)
		So(IsPlayable("a.txt"), ShouldBeFalse)
		So(IsPlayable("noext"), ShouldBeFalse)
	})
}

func TestScan(t *testing.T) {
	Convey("Given a seeded media tree", t, func() {
		seedTree()
		s := New("/media")

		Convey("Scanning below the depth boundary", func() {
			result := s.Scan("/media", 2, 1)

			Convey("Subdirectories appear only as navigable folders one level deeper", func() {
				So(len(result.Folders), ShouldEqual, 1)
				So(result.Folders[0].Name, ShouldEqual, "shows")
				So(result.Folders[0].Depth, ShouldEqual, 2)
			})

			Convey("Videos contain only immediate playable files", func() {
				titles := lo.Map(result.Videos, func(i *source.Item, _ int) string { return i.Title })
				So(titles, ShouldResemble, []string{"UPPER", "top"})
				for _, v := range result.Videos {
					So(v.Flattened, ShouldBeFalse)
					So(v.Depth, ShouldEqual, 1)
					So(v.Kind, ShouldEqual, source.KindFolderLocal)
				}
			})

			Convey("Non-media files are excluded", func() {
				for _, v := range result.Videos {
					So(v.Title, ShouldNotEqual, "notes")
				}
			})

			Convey("Identifiers are stable root-relative slugs", func() {
				So(result.Videos[1].ID, ShouldEqual, "top-webm")
				again := s.Scan("/media", 2, 1)
				So(again.Videos[1].ID, ShouldEqual, result.Videos[1].ID)
			})
		})

		Convey("Scanning at the depth boundary", func() {
			result := s.Scan("/media/shows", 2, 2)

			Convey("No folder nodes are emitted", func() {
				So(len(result.Folders), ShouldEqual, 0)
			})

			Convey("Descendant playable files are flattened at the boundary depth minus one", func() {
				titles := lo.Map(result.Videos, func(i *source.Item, _ int) string { return i.Title })
				So(titles, ShouldContain, "pilot")
				So(titles, ShouldContain, "buried")

				buried, ok := lo.Find(result.Videos, func(i *source.Item) bool { return i.Title == "buried" })
				So(ok, ShouldBeTrue)
				So(buried.Flattened, ShouldBeTrue)
				So(buried.Depth, ShouldEqual, 1)
			})

			Convey("Immediate playable files keep the current depth", func() {
				pilot, ok := lo.Find(result.Videos, func(i *source.Item) bool { return i.Title == "pilot" })
				So(ok, ShouldBeTrue)
				So(pilot.Flattened, ShouldBeFalse)
				So(pilot.Depth, ShouldEqual, 2)
			})
		})

		Convey("Scanning a non-existent path", func() {
			result := s.Scan("/does/not/exist", 2, 1)
			So(result.Folders, ShouldBeEmpty)
			So(result.Videos, ShouldBeEmpty)
			So(result.Depth, ShouldEqual, 1)
		})

		Convey("Filesystem metadata is populated", func() {
			result := s.Scan("/media", 2, 1)
			item := result.Videos[0]
			So(item.Extension, ShouldEqual, ".mp4")
			So(item.Size, ShouldEqual, 1)
			So(item.ModTime.IsZero(), ShouldBeFalse)
			So(item.PlayURL, ShouldEqual, "/media/UPPER.MP4")
		})
	})
}
