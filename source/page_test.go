package source

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type testSource struct{}

func (testSource) ID() string   { return "local-movies" }
func (testSource) Name() string { return "Movies" }
func (testSource) Kind() Kind   { return KindFolderLocal }

func TestMetadataOf(t *testing.T) {
	Convey("MetadataOf", t, func() {
		meta := MetadataOf(testSource{})
		So(meta.ID, ShouldEqual, "local-movies")
		So(meta.Name, ShouldEqual, "Movies")
		So(meta.Kind, ShouldEqual, KindFolderLocal)
	})
}
