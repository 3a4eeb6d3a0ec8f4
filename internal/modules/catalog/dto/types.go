package dto

type ItemOutput struct {
	ID               string
	Type             string
	Title            string
	Subtitle         string
	Tags             []string
	Level            string
	Category         string
	Body             string
	LessonIDs        []string
	Order            *float64
	Checklist        []string
	EstimatedMinutes int
	XP               int
	ReadingMinutes   int
	Repeat           string
	MissionKind      string
	Steps            []string
}

type SnapshotOutput struct {
	Tracks   []ItemOutput
	Lessons  []ItemOutput
	Missions []ItemOutput
	Library  []ItemOutput
}

type ValidationOutput struct {
	OK       bool
	Errors   []string
	Warnings []string
}

type MissingRefOutput struct {
	TrackID  string
	LessonID string
}

type ImportOutput struct {
	OK          bool
	Errors      []string
	Warnings    []string
	Inserted    int
	Ignored     int
	MissingRefs []MissingRefOutput
}
