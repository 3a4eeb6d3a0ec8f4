package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type ItemType string

const (
	ItemTypeTrack   ItemType = "track"
	ItemTypeLesson  ItemType = "lesson"
	ItemTypeLibrary ItemType = "library"
	ItemTypeMission ItemType = "mission"
)

type RepeatKind string

const (
	RepeatDaily  RepeatKind = "daily"
	RepeatWeekly RepeatKind = "weekly"
	RepeatOnce   RepeatKind = "once"
)

// DefaultLessonXP applies when a lesson carries no xp of its own.
const DefaultLessonXP = 20

// Item is the content unit. One struct covers the four variants; the
// variant-specific fields are meaningful only for the matching Type.
type Item struct {
	ID        string
	Type      ItemType
	Title     string
	Subtitle  string
	Cover     string
	Tags      []string
	Level     string
	Category  string
	Body      string
	Version   *int
	CreatedAt string
	UpdatedAt string

	// track
	LessonIDs []string
	Order     *float64

	// lesson
	Sections         []any
	Checklist        []string
	EstimatedMinutes *int
	XP               *int

	// library
	ReadingMinutes *int

	// mission
	Repeat      RepeatKind
	MissionKind string
	Steps       []string
}

// LessonXP resolves a lesson's reward, falling back to the default.
func (i Item) LessonXP() int {
	if i.XP != nil {
		return *i.XP
	}
	return DefaultLessonXP
}

// MissionXP resolves a mission's reward; missions without one award nothing.
func (i Item) MissionXP() int {
	if i.XP != nil {
		return *i.XP
	}
	return 0
}

// IsDailyMission mirrors the mission-of-day filter: repeat "daily" or unset.
func (i Item) IsDailyMission() bool {
	return i.Type == ItemTypeMission && (i.Repeat == RepeatDaily || i.Repeat == "")
}

// Normalize coerces arbitrary decoded JSON into an Item. It never fails:
// strings are stringified, numbers that do not parse become nil, array
// fields that are not arrays become empty arrays. Unknown fields are
// dropped. Correctness is the validator's job, not this one's.
func Normalize(raw any) Item {
	m, _ := raw.(map[string]any)

	item := Item{
		ID:        strings.TrimSpace(coerceString(m["id"])),
		Type:      ItemType(strings.TrimSpace(coerceString(m["type"]))),
		Title:     strings.TrimSpace(coerceString(m["title"])),
		Subtitle:  coerceString(m["subtitle"]),
		Cover:     coerceString(m["cover"]),
		Tags:      coerceStrings(m["tags"]),
		Level:     coerceString(m["level"]),
		Category:  coerceString(m["category"]),
		Body:      coerceString(m["body"]),
		Version:   coerceInt(m["version"]),
		CreatedAt: coerceString(m["createdAt"]),
		UpdatedAt: coerceString(m["updatedAt"]),
	}

	switch item.Type {
	case ItemTypeTrack:
		item.LessonIDs = coerceStrings(m["lessonIds"])
		item.Order = coerceFloat(m["order"])
	case ItemTypeLesson:
		if sections, ok := m["sections"].([]any); ok {
			item.Sections = sections
		}
		item.Checklist = coerceStrings(m["checklist"])
		item.EstimatedMinutes = coerceInt(m["estimatedMinutes"])
		item.XP = coerceInt(m["xp"])
	case ItemTypeLibrary:
		item.ReadingMinutes = coerceInt(m["readingMinutes"])
	case ItemTypeMission:
		xp := coerceInt(m["xp"])
		if xp == nil {
			zero := 0
			xp = &zero
		}
		item.XP = xp
		item.Repeat = RepeatKind(coerceString(m["repeat"]))
		if item.Repeat == "" {
			item.Repeat = RepeatDaily
		}
		item.MissionKind = coerceString(m["missionKind"])
		item.Steps = coerceStrings(m["steps"])
	}

	return item
}

// MarshalJSON emits the variant shape: only fields that belong to the item's
// type appear, and a track's lessonIds is always present even when empty.
func (i Item) MarshalJSON() ([]byte, error) {
	type common struct {
		ID        string   `json:"id"`
		Type      ItemType `json:"type"`
		Title     string   `json:"title"`
		Subtitle  string   `json:"subtitle,omitempty"`
		Cover     string   `json:"cover,omitempty"`
		Tags      []string `json:"tags,omitempty"`
		Level     string   `json:"level,omitempty"`
		Category  string   `json:"category,omitempty"`
		Body      string   `json:"body,omitempty"`
		Version   *int     `json:"version,omitempty"`
		CreatedAt string   `json:"createdAt,omitempty"`
		UpdatedAt string   `json:"updatedAt,omitempty"`
	}
	base := common{
		ID:        i.ID,
		Type:      i.Type,
		Title:     i.Title,
		Subtitle:  i.Subtitle,
		Cover:     i.Cover,
		Tags:      i.Tags,
		Level:     i.Level,
		Category:  i.Category,
		Body:      i.Body,
		Version:   i.Version,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}

	switch i.Type {
	case ItemTypeTrack:
		lessonIDs := i.LessonIDs
		if lessonIDs == nil {
			lessonIDs = []string{}
		}
		return json.Marshal(struct {
			common
			LessonIDs []string `json:"lessonIds"`
			Order     *float64 `json:"order,omitempty"`
		}{base, lessonIDs, i.Order})
	case ItemTypeLesson:
		return json.Marshal(struct {
			common
			Sections         []any    `json:"sections,omitempty"`
			Checklist        []string `json:"checklist,omitempty"`
			EstimatedMinutes *int     `json:"estimatedMinutes,omitempty"`
			XP               *int     `json:"xp,omitempty"`
		}{base, i.Sections, i.Checklist, i.EstimatedMinutes, i.XP})
	case ItemTypeLibrary:
		return json.Marshal(struct {
			common
			ReadingMinutes *int `json:"readingMinutes,omitempty"`
		}{base, i.ReadingMinutes})
	case ItemTypeMission:
		return json.Marshal(struct {
			common
			XP          int        `json:"xp"`
			Repeat      RepeatKind `json:"repeat"`
			MissionKind string     `json:"missionKind,omitempty"`
			Steps       []string   `json:"steps,omitempty"`
		}{base, i.MissionXP(), i.Repeat, i.MissionKind, i.Steps})
	default:
		return json.Marshal(base)
	}
}

func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

func coerceFloat(v any) *float64 {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil
		}
		return &t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return &f
	default:
		return nil
	}
}

func coerceInt(v any) *int {
	f := coerceFloat(v)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

func coerceStrings(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		out = append(out, coerceString(e))
	}
	return out
}
