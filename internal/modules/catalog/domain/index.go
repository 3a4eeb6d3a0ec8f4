package domain

import (
	"sort"
	"strings"
)

// Tracks without an explicit order sort after every ordered one.
const unorderedSentinel = 999999

// Index holds the authoritative item collection. Items is the source of
// truth; the per-type listings and the id lookup are derived and rebuilt
// wholesale after every mutation of Items.
type Index struct {
	Items    []Item
	Tracks   []Item
	Lessons  []Item
	Missions []Item
	Library  []Item

	byID map[string]Item
}

func NewIndex() *Index {
	idx := &Index{}
	idx.Rebuild()
	return idx
}

// SetItems replaces the collection and rebuilds.
func (x *Index) SetItems(items []Item) {
	x.Items = items
	x.Rebuild()
}

// Rebuild derives the listings and lookup from Items. Deterministic and
// idempotent; safe to call any number of times.
func (x *Index) Rebuild() {
	x.byID = make(map[string]Item, len(x.Items))
	x.Tracks = x.Tracks[:0]
	x.Lessons = x.Lessons[:0]
	x.Missions = x.Missions[:0]
	x.Library = x.Library[:0]

	for _, item := range x.Items {
		x.byID[item.ID] = item
		switch item.Type {
		case ItemTypeTrack:
			x.Tracks = append(x.Tracks, item)
		case ItemTypeLesson:
			x.Lessons = append(x.Lessons, item)
		case ItemTypeMission:
			x.Missions = append(x.Missions, item)
		case ItemTypeLibrary:
			x.Library = append(x.Library, item)
		}
	}

	sort.SliceStable(x.Tracks, func(a, b int) bool {
		ao := effectiveOrder(x.Tracks[a])
		bo := effectiveOrder(x.Tracks[b])
		if ao != bo {
			return ao < bo
		}
		return strings.Compare(x.Tracks[a].Title, x.Tracks[b].Title) < 0
	})
}

func (x *Index) ByID(id string) (Item, bool) {
	item, ok := x.byID[id]
	return item, ok
}

func (x *Index) Has(id string) bool {
	_, ok := x.byID[id]
	return ok
}

func (x *Index) Len() int {
	return len(x.Items)
}

// MissingLessonRefs reports every track lessonId that does not resolve to a
// lesson item: both absent ids and ids colliding with another type.
func (x *Index) MissingLessonRefs() []MissingRef {
	refs := []MissingRef{}
	for _, track := range x.Tracks {
		for _, lessonID := range track.LessonIDs {
			ref, ok := x.byID[lessonID]
			if !ok || ref.Type != ItemTypeLesson {
				refs = append(refs, MissingRef{TrackID: track.ID, LessonID: lessonID})
			}
		}
	}
	return refs
}

func effectiveOrder(item Item) float64 {
	if item.Order != nil {
		return *item.Order
	}
	return unorderedSentinel
}
