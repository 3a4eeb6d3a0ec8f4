package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"tonica/internal/modules/progress/domain"
	progressout "tonica/internal/modules/progress/port/out"
	"tonica/internal/platform/clock"
	apperrors "tonica/internal/platform/errors"
)

const recordKey = "progress"

const maxProfileNameRunes = 40

// ProgressService owns the learner state. The record loads once and stays
// cached; every mutation persists synchronously before returning, so the
// stored document never lags the state handed to callers.
type ProgressService struct {
	clock clock.Clock
	store progressout.RecordStore

	mu     sync.Mutex
	loaded bool
	state  domain.Progress
}

func NewProgressService(clock clock.Clock, store progressout.RecordStore) *ProgressService {
	return &ProgressService{clock: clock, store: store}
}

func (s *ProgressService) load(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	raw, ok, err := s.store.Get(ctx, recordKey)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}
	if !ok {
		s.state = domain.DefaultProgress()
	} else {
		s.state = domain.Decode(raw)
	}
	s.loaded = true
	return nil
}

func (s *ProgressService) persist(ctx context.Context) error {
	payload, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := s.store.Set(ctx, recordKey, payload); err != nil {
		return fmt.Errorf("persist progress: %w", err)
	}
	return nil
}

// Snapshot returns a copy safe to read without the lock.
func (s *ProgressService) Snapshot(ctx context.Context) (domain.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return domain.Progress{}, err
	}
	return s.copyState(), nil
}

func (s *ProgressService) IsLessonDone(ctx context.Context, lessonID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return false, err
	}
	return s.state.LessonDone[lessonID], nil
}

func (s *ProgressService) SetLessonDone(ctx context.Context, lessonID string, done bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return err
	}
	s.state.SetLessonDone(lessonID, done)
	return s.persist(ctx)
}

func (s *ProgressService) Checklist(ctx context.Context, lessonID string) (map[int]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s.state.Checklist(lessonID), nil
}

func (s *ProgressService) SetChecklistItem(ctx context.Context, lessonID string, index int, checked bool) error {
	if index < 0 {
		return fmt.Errorf("checklist index %d: %w", index, apperrors.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return err
	}
	s.state.SetChecklistItem(lessonID, index, checked)
	return s.persist(ctx)
}

// GrantXP adds a non-negative amount and returns the new total. Negative
// deltas leave the total untouched.
func (s *ProgressService) GrantXP(ctx context.Context, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return 0, err
	}
	total := s.state.GrantXP(delta)
	if err := s.persist(ctx); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *ProgressService) IsMissionDoneToday(ctx context.Context, missionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return false, err
	}
	return s.state.IsMissionDoneOn(domain.DayKey(s.clock.Now()), missionID), nil
}

func (s *ProgressService) MarkMissionDoneToday(ctx context.Context, missionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return err
	}
	s.state.MarkMissionDoneOn(domain.DayKey(s.clock.Now()), missionID)
	return s.persist(ctx)
}

func (s *ProgressService) WasMissionEverDone(ctx context.Context, missionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return false, err
	}
	return s.state.WasMissionEverDone(missionID), nil
}

func (s *ProgressService) SetGoal(ctx context.Context, goal domain.Goal) error {
	if !domain.ValidGoal(goal) {
		return fmt.Errorf("goal %q: %w", goal, apperrors.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return err
	}
	s.state.Goal = goal
	return s.persist(ctx)
}

// SetProfileName trims, caps at 40 runes and falls back to the default on
// empty input.
func (s *ProgressService) SetProfileName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if runes := []rune(name); len(runes) > maxProfileNameRunes {
		name = string(runes[:maxProfileNameRunes])
	}
	if name == "" {
		name = domain.DefaultProfileName
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return err
	}
	s.state.ProfileName = name
	return s.persist(ctx)
}

// Touch records the open timestamp; called once at startup.
func (s *ProgressService) Touch(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return err
	}
	s.state.LastOpen = s.clock.Now().Format("2006-01-02T15:04:05Z07:00")
	return s.persist(ctx)
}

// ResetAll wipes everything back to defaults. Explicit, never implicit.
func (s *ProgressService) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.DefaultProgress()
	s.loaded = true
	return s.persist(ctx)
}

// Today exposes the current day key so composition can stay consistent with
// the mutations issued in the same call.
func (s *ProgressService) Today() string {
	return domain.DayKey(s.clock.Now())
}

func (s *ProgressService) copyState() domain.Progress {
	out := s.state
	out.LessonDone = map[string]bool{}
	for k, v := range s.state.LessonDone {
		out.LessonDone[k] = v
	}
	out.LessonChecklist = map[string]map[int]bool{}
	for k, v := range s.state.LessonChecklist {
		inner := map[int]bool{}
		for i, b := range v {
			inner[i] = b
		}
		out.LessonChecklist[k] = inner
	}
	out.MissionDoneByDay = map[string]map[string]bool{}
	for k, v := range s.state.MissionDoneByDay {
		inner := map[string]bool{}
		for id, b := range v {
			inner[id] = b
		}
		out.MissionDoneByDay[k] = inner
	}
	return out
}
