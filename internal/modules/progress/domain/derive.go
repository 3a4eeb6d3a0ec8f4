package domain

import (
	catalogdomain "tonica/internal/modules/catalog/domain"
)

// Completion summarizes lesson progress.
type Completion struct {
	Done    int
	Total   int
	Percent float64
}

func OverallCompletion(lessons []catalogdomain.Item, done map[string]bool) Completion {
	if len(lessons) == 0 {
		return Completion{}
	}
	c := Completion{Total: len(lessons)}
	for _, lesson := range lessons {
		if done[lesson.ID] {
			c.Done++
		}
	}
	c.Percent = float64(c.Done) / float64(c.Total) * 100
	if c.Percent > 100 {
		c.Percent = 100
	}
	return c
}

// TrackCompletion counts only the track's lessonIds that resolve to lessons.
func TrackCompletion(track catalogdomain.Item, lessons []catalogdomain.Item, done map[string]bool) Completion {
	byID := lessonsByID(lessons)
	c := Completion{}
	for _, id := range track.LessonIDs {
		if _, ok := byID[id]; !ok {
			continue
		}
		c.Total++
		if done[id] {
			c.Done++
		}
	}
	if c.Total > 0 {
		c.Percent = float64(c.Done) / float64(c.Total) * 100
	}
	return c
}

// NextLesson walks the sorted tracks and their lessonIds in order and picks
// the first unfinished lesson. Lessons outside every track come after, in
// catalog order. No result means everything is done.
func NextLesson(tracks, lessons []catalogdomain.Item, done map[string]bool) (catalogdomain.Item, bool) {
	byID := lessonsByID(lessons)
	for _, track := range tracks {
		for _, id := range track.LessonIDs {
			lesson, ok := byID[id]
			if !ok {
				continue
			}
			if !done[lesson.ID] {
				return lesson, true
			}
		}
	}
	for _, lesson := range lessons {
		if !done[lesson.ID] {
			return lesson, true
		}
	}
	return catalogdomain.Item{}, false
}

// MissionOfDay picks today's mission deterministically: a polynomial rolling
// hash of the day key (base 31, unsigned 32-bit wraparound) modulo the count
// of daily-repeating missions. The constants are a compatibility commitment;
// the same day key must select the same mission everywhere.
func MissionOfDay(dayKey string, missions []catalogdomain.Item) (catalogdomain.Item, bool) {
	daily := make([]catalogdomain.Item, 0, len(missions))
	for _, m := range missions {
		if m.IsDailyMission() {
			daily = append(daily, m)
		}
	}
	if len(daily) == 0 {
		return catalogdomain.Item{}, false
	}
	var hash uint32
	for _, c := range dayKey {
		hash = hash*31 + uint32(c)
	}
	return daily[int(hash%uint32(len(daily)))], true
}

func lessonsByID(lessons []catalogdomain.Item) map[string]catalogdomain.Item {
	byID := make(map[string]catalogdomain.Item, len(lessons))
	for _, lesson := range lessons {
		byID[lesson.ID] = lesson
	}
	return byID
}
