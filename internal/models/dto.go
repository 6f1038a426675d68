package models

type AnnotatorsResponse struct {
	Total int `json:"total"`
}

type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
