// Package recent persists the most recently visited catalog locations,
// letting the navigation layer offer "continue browsing" across restarts.
// Only visit keys are stored, never resolved page payloads.
package recent

import (
	"time"

	"github.com/kinotree/kinotree/filesystem"
	"github.com/kinotree/kinotree/key"
	"github.com/kinotree/kinotree/util"
	"github.com/kinotree/kinotree/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Visit identifies one navigated (source, page) location.
type Visit struct {
	SourceID  string    `json:"sourceId"`
	Page      int       `json:"page"`
	VisitedAt time.Time `json:"visitedAt"`
}

// cacher provides the disk-backed registry of visits, most recent first.
var cacher = gache.New[[]*Visit](
	&gache.Options{
		Path:       where.Recent(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the recorded visits, most recent first.
func Get() ([]*Visit, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return []*Visit{}, nil
	}
	return cached, nil
}

// Record notes a visit to the given location. An existing record for the
// same (source, page) moves to the front instead of duplicating, and the
// list is trimmed to the configured limit.
func Record(sourceID string, page int) error {
	visits, err := Get()
	if err != nil {
		return err
	}

	visits = lo.Reject(visits, func(v *Visit, _ int) bool {
		return v.SourceID == sourceID && v.Page == page
	})

	visits = append([]*Visit{{
		SourceID:  sourceID,
		Page:      page,
		VisitedAt: time.Now(),
	}}, visits...)

	if limit := viper.GetInt(key.RecentLimit); limit > 0 {
		visits = visits[:util.Min(len(visits), limit)]
	}

	return cacher.Set(visits)
}

// Last returns the most recent visit, if any.
func Last() mo.Option[*Visit] {
	visits, err := Get()
	if err != nil || len(visits) == 0 {
		return mo.None[*Visit]()
	}
	return mo.Some(visits[0])
}

// Clear removes every recorded visit.
func Clear() error {
	return cacher.Set([]*Visit{})
}
