package domain

import (
	"encoding/json"

	catalogdomain "tonica/internal/modules/catalog/domain"
)

// DecodeBuffer restores the staged items. A corrupt or non-array stored
// value means an empty buffer, never an error; staging is recoverable by
// re-authoring, history is not worth blocking startup over.
func DecodeBuffer(raw []byte) []catalogdomain.Item {
	if len(raw) == 0 {
		return []catalogdomain.Item{}
	}
	var batch any
	if err := json.Unmarshal(raw, &batch); err != nil {
		return []catalogdomain.Item{}
	}
	return catalogdomain.NormalizeBatch(batch)
}

// EncodeBuffer renders the staged items as a pretty-printed JSON array, the
// exact text a learner pastes back through the import pipeline.
func EncodeBuffer(items []catalogdomain.Item) ([]byte, error) {
	if items == nil {
		items = []catalogdomain.Item{}
	}
	return json.MarshalIndent(items, "", "  ")
}

// HasID reports whether an id is already staged.
func HasID(items []catalogdomain.Item, id string) bool {
	for _, item := range items {
		if item.ID == id {
			return true
		}
	}
	return false
}
