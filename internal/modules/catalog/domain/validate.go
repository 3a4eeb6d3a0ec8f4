package domain

import (
	"encoding/json"
	"fmt"

	apperrors "tonica/internal/platform/errors"
)

// Report is the validator's outcome. Errors block a merge or buffer add;
// warnings never do.
type Report struct {
	OK       bool
	Errors   []string
	Warnings []string
}

// ParseBatch decodes import text. A payload that is not valid JSON is a
// distinct failure class from a payload that fails validation.
func ParseBatch(text []byte) (any, error) {
	var batch any
	if err := json.Unmarshal(text, &batch); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedJSON, err)
	}
	return batch, nil
}

// ValidateBatch checks a decoded JSON batch against the structural rules.
// Items are addressed 1-based in messages. The first occurrence of an id is
// never flagged as a duplicate; every later occurrence is.
func ValidateBatch(batch any) Report {
	errs := []string{}
	warns := []string{}

	arr, ok := batch.([]any)
	if !ok {
		errs = append(errs, "the payload must be a JSON array of items")
		return Report{OK: false, Errors: errs, Warnings: warns}
	}

	seen := map[string]struct{}{}
	for idx, raw := range arr {
		it := Normalize(raw)
		n := idx + 1

		if it.ID == "" {
			errs = append(errs, fmt.Sprintf("item #%d: missing \"id\"", n))
		}
		if it.Type == "" {
			errs = append(errs, fmt.Sprintf("item #%d: missing \"type\"", n))
		}
		if it.Type != "" && !allowedType(it.Type) {
			errs = append(errs, fmt.Sprintf("item #%d: invalid \"type\" (%s)", n, it.Type))
		}
		if it.Title == "" {
			errs = append(errs, fmt.Sprintf("item #%d: missing \"title\"", n))
		}

		if it.ID != "" {
			if _, dup := seen[it.ID]; dup {
				errs = append(errs, fmt.Sprintf("item #%d: duplicate id in batch (%s)", n, it.ID))
			}
			seen[it.ID] = struct{}{}
		}

		// Normalization always yields an array, so this fires only on raw
		// payloads carrying a non-array lessonIds.
		if it.Type == ItemTypeTrack {
			if m, isMap := raw.(map[string]any); isMap {
				if v, present := m["lessonIds"]; present {
					if _, isArr := v.([]any); !isArr {
						errs = append(errs, fmt.Sprintf("track %s: \"lessonIds\" must be an array", it.ID))
					}
				}
			}
		}

		if it.Type == ItemTypeMission && it.MissionXP() <= 0 {
			warns = append(warns, fmt.Sprintf("mission %s: xp missing or not positive", it.ID))
		}
	}

	return Report{OK: len(errs) == 0, Errors: errs, Warnings: warns}
}

// NormalizeBatch maps a decoded JSON array through Normalize. Non-array
// input yields an empty batch.
func NormalizeBatch(batch any) []Item {
	arr, ok := batch.([]any)
	if !ok {
		return []Item{}
	}
	items := make([]Item, 0, len(arr))
	for _, raw := range arr {
		items = append(items, Normalize(raw))
	}
	return items
}

func allowedType(t ItemType) bool {
	switch t {
	case ItemTypeTrack, ItemTypeLesson, ItemTypeLibrary, ItemTypeMission:
		return true
	default:
		return false
	}
}
