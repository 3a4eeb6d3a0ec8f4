package domain

import (
	"encoding/json"
	"time"
)

type Goal string

const (
	GoalPopular Goal = "Popular"
	GoalErudito Goal = "Erudito"
	GoalMisto   Goal = "Misto"
)

const DefaultProfileName = "Aluno(a)"

// Progress is the whole learner state. It round-trips as a single JSON
// document; the field names are the persisted contract.
type Progress struct {
	ProfileName      string                     `json:"profileName"`
	Goal             Goal                       `json:"goal"`
	XP               int                        `json:"xp"`
	LessonDone       map[string]bool            `json:"lessonDone"`
	LessonChecklist  map[string]map[int]bool    `json:"lessonChecklist"`
	MissionDoneByDay map[string]map[string]bool `json:"missionDoneByDay"`
	LastOpen         string                     `json:"lastOpen"`
}

func DefaultProgress() Progress {
	p := Progress{ProfileName: DefaultProfileName, Goal: GoalMisto}
	p.ensureShape()
	return p
}

// Decode is tolerant by contract: a missing or corrupt record, or one with
// missing sub-maps, yields a usable state rather than an error. Losing a
// learner's history to a decode failure is worse than starting fresh.
func Decode(raw []byte) Progress {
	if len(raw) == 0 {
		return DefaultProgress()
	}
	var p Progress
	if err := json.Unmarshal(raw, &p); err != nil {
		return DefaultProgress()
	}
	p.ensureShape()
	return p
}

func (p *Progress) ensureShape() {
	if p.ProfileName == "" {
		p.ProfileName = DefaultProfileName
	}
	if !ValidGoal(p.Goal) {
		p.Goal = GoalMisto
	}
	if p.XP < 0 {
		p.XP = 0
	}
	if p.LessonDone == nil {
		p.LessonDone = map[string]bool{}
	}
	if p.LessonChecklist == nil {
		p.LessonChecklist = map[string]map[int]bool{}
	}
	if p.MissionDoneByDay == nil {
		p.MissionDoneByDay = map[string]map[string]bool{}
	}
}

func ValidGoal(g Goal) bool {
	switch g {
	case GoalPopular, GoalErudito, GoalMisto:
		return true
	default:
		return false
	}
}

// GrantXP adds a non-negative amount to the total. Negative deltas are
// ignored, so XP only ever grows.
func (p *Progress) GrantXP(delta int) int {
	if delta <= 0 {
		return p.XP
	}
	p.XP += delta
	return p.XP
}

func (p *Progress) SetLessonDone(lessonID string, done bool) {
	p.LessonDone[lessonID] = done
}

func (p *Progress) Checklist(lessonID string) map[int]bool {
	out := map[int]bool{}
	for k, v := range p.LessonChecklist[lessonID] {
		out[k] = v
	}
	return out
}

func (p *Progress) SetChecklistItem(lessonID string, index int, checked bool) {
	if p.LessonChecklist[lessonID] == nil {
		p.LessonChecklist[lessonID] = map[int]bool{}
	}
	p.LessonChecklist[lessonID][index] = checked
}

func (p *Progress) IsMissionDoneOn(dayKey, missionID string) bool {
	return p.MissionDoneByDay[dayKey][missionID]
}

func (p *Progress) MarkMissionDoneOn(dayKey, missionID string) {
	if p.MissionDoneByDay[dayKey] == nil {
		p.MissionDoneByDay[dayKey] = map[string]bool{}
	}
	p.MissionDoneByDay[dayKey][missionID] = true
}

// WasMissionEverDone scans all days; "once" missions stay done forever.
func (p *Progress) WasMissionEverDone(missionID string) bool {
	for _, day := range p.MissionDoneByDay {
		if day[missionID] {
			return true
		}
	}
	return false
}

// DayKey names the local calendar day a mutation belongs to.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
