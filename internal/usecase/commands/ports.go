package commands

import (
	"context"

	"enrollment-waitlist/internal/domain/mutation"
	"enrollment-waitlist/internal/usecase/replication"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/mock_ports.go -package=commandsmock

// Replicator delivers mutation batches; *replication.Replicator implements it.
type Replicator interface {
	Apply(ctx context.Context, leaderID string, batch mutation.Batch) error
	Broadcast(ctx context.Context, source string, batch mutation.Batch) replication.Report
}
