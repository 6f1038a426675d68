package models

import (
	"time"

	"github.com/google/uuid"
)

const ResponseStatusPending = "pending"

type Dataset struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Workspace string    `json:"workspace"`
}

type Record struct {
	ID        uuid.UUID  `json:"id"`
	Responses []Response `json:"responses"`
}

type Response struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"userId"`
	Status string    `json:"status"`
}

type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type DashboardData struct {
	Progress        Progress           `json:"progress"`
	TotalAnnotators int                `json:"totalAnnotators"`
	Leaderboard     []LeaderboardEntry `json:"leaderboard"`
	GeneratedAt     time.Time          `json:"generatedAt"`
}
