package argilla

import "github.com/google/uuid"

// Wire shapes for the platform's v1 JSON API. Kept separate from the
// domain models so API renames stay inside this package.

type workspacesPayload struct {
	Items []workspaceItem `json:"items"`
}

type workspaceItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type datasetsPayload struct {
	Items []datasetItem `json:"items"`
}

type datasetItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
}

type recordsPayload struct {
	Items []recordItem `json:"items"`
	Total int          `json:"total"`
}

type recordItem struct {
	ID        uuid.UUID      `json:"id"`
	Responses []responseItem `json:"responses"`
}

type responseItem struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Status string    `json:"status"`
}

type userPayload struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type errorPayload struct {
	Detail string `json:"detail"`
}
