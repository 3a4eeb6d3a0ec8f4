package dto

type AddOutput struct {
	OK      bool
	Reasons []string
	ID      string
	Type    string
	Title   string
}

type StagedItemOutput struct {
	ID    string
	Type  string
	Title string
}

type SuggestIDInput struct {
	Type     string
	Category string
}
