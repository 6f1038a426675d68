package models

import "github.com/google/uuid"

// AnnotationCounts maps a platform user id to the number of responses
// that user submitted. Invariant: values sum to the total number of
// responses across the counted records.
type AnnotationCounts map[uuid.UUID]int

// NamedCounts is AnnotationCounts after user ids have been resolved to
// display names.
type NamedCounts map[string]int

type LeaderboardEntry struct {
	Username  string `json:"userName"`
	Annotated int    `json:"annotatedRecords"`
}

type Progress struct {
	Annotated int `json:"annotated"`
	Pending   int `json:"pending"`
	Target    int `json:"target"`
}
