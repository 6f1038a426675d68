package services

import (
	"context"

	"github.com/google/uuid"

	"AnnotationDashboard/internal/models"
)

// AnnotationPlatform is the capability set the statistics service
// needs from the remote annotation platform. The real implementation
// is argilla.Client; tests substitute an in-memory fake.
type AnnotationPlatform interface {
	GetDataset(ctx context.Context, name, workspace string) (*models.Dataset, error)
	ListRecords(ctx context.Context, datasetID uuid.UUID, status string) ([]models.Record, error)
	CountRecords(ctx context.Context, datasetID uuid.UUID, status string) (int, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}
