package dto

type CompletionOutput struct {
	Done    int
	Total   int
	Percent float64
}

type NextLessonOutput struct {
	ID    string
	Title string
}

type MissionOfDayOutput struct {
	ID        string
	Title     string
	XP        int
	DoneToday bool
}

type SummaryOutput struct {
	ProfileName  string
	Goal         string
	XP           int
	Level        int
	LevelMin     int
	LevelMax     int
	LevelPercent float64
	Lessons      CompletionOutput
	NextLesson   *NextLessonOutput
	MissionOfDay *MissionOfDayOutput
}

type CompleteOutput struct {
	ID          string
	AlreadyDone bool
	XPAwarded   int
	TotalXP     int
}

type TrackStatsOutput struct {
	TrackID string
	Title   string
	Done    int
	Total   int
	Percent float64
}

type LessonStatusOutput struct {
	ID               string
	Title            string
	TrackID          string
	TrackTitle       string
	XP               int
	EstimatedMinutes int
	Done             bool
}

type MissionStatusOutput struct {
	ID     string
	Title  string
	XP     int
	Repeat string
	Done   bool
}

type ChecklistItemInput struct {
	LessonID string
	Index    int
	Checked  bool
}

type ProfileOutput struct {
	Name     string
	Goal     string
	XP       int
	Level    int
	LastOpen string
}
