package commands

import (
	"context"
	"log/slog"

	"enrollment-waitlist/internal/domain/course"
	"enrollment-waitlist/internal/domain/mutation"
	"enrollment-waitlist/internal/pkg/config"
	"enrollment-waitlist/internal/pkg/errs"
	"enrollment-waitlist/internal/usecase/queries"
	"enrollment-waitlist/internal/usecase/replication"
	"enrollment-waitlist/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=course.go -destination=../../../tests/mock/commands/mock_course.go -package=commandsmock

type CreateCourseRequest struct {
	Leader   string
	Name     string
	Capacity int
}

type CreateCourseResult struct {
	CourseID    uuid.UUID
	Name        string
	Capacity    int
	Leader      string
	Replication replication.Report
}

type DeleteCourseRequest struct {
	Leader string
	Course string
	// Mode is "soft" or "hard"; empty uses the configured default.
	Mode string
}

type DeleteCourseResult struct {
	CourseID    uuid.UUID
	Leader      string
	Mode        course.DeleteMode
	Replication replication.Report
}

type CourseCommands interface {
	CreateCourse(ctx context.Context, req CreateCourseRequest) (*CreateCourseResult, error)
	DeleteCourse(ctx context.Context, req DeleteCourseRequest) (*DeleteCourseResult, error)
}

type courseCommandsImpl struct {
	cluster     shared.Cluster
	replicator  Replicator
	defaultMode string
	logger      *slog.Logger
}

func NewCourseCommands(cluster shared.Cluster, replicator Replicator, cfg config.ReplicationConfig, logger *slog.Logger) CourseCommands {
	return &courseCommandsImpl{
		cluster:     cluster,
		replicator:  replicator,
		defaultMode: cfg.CourseDeleteMode,
		logger:      logger,
	}
}

// CreateCourse mints the course id once so every leader stores the same one.
func (uc *courseCommandsImpl) CreateCourse(ctx context.Context, req CreateCourseRequest) (*CreateCourseResult, error) {
	if _, err := course.NewName(req.Name); err != nil {
		return nil, err
	}
	if _, err := course.NewCapacity(req.Capacity); err != nil {
		return nil, err
	}
	leader, err := queries.ResolveLeader(ctx, uc.cluster, req.Leader)
	if err != nil {
		return nil, err
	}
	now, err := leader.Reads().Now(ctx)
	if err != nil {
		return nil, markStorageErr(err)
	}
	c, err := course.NewCourse(uuid.Nil, req.Name, req.Capacity, now)
	if err != nil {
		return nil, err
	}

	err = leader.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Courses().Create(ctx, c)
		if err != nil {
			return err
		}
		if !created {
			return errs.Wrapf(errs.ErrCourseExists, "%s", c.Name())
		}
		return nil
	})
	if err != nil {
		if errs.Is(err, errs.ErrCourseExists) {
			return nil, err
		}
		return nil, markStorageErr(err)
	}

	report := uc.replicator.Broadcast(ctx, leader.ID(), mutation.NewBatch(mutation.CreateCourse{Course: c}))

	uc.logger.Info("course created",
		"leader", leader.ID(),
		"course_id", c.ID(),
		"name", c.Name().String(),
		"capacity", c.Capacity().Value(),
		"replicated", len(report.Applied),
		"replication_failed", len(report.Failed))

	return &CreateCourseResult{
		CourseID:    c.ID(),
		Name:        c.Name().String(),
		Capacity:    c.Capacity().Value(),
		Leader:      leader.ID(),
		Replication: report,
	}, nil
}

// DeleteCourse soft-deletes by default: the course is flagged, its records
// cascade to REMOVED and a tombstone is written, all at one instant taken from
// the entry leader. Hard deletion removes the rows.
func (uc *courseCommandsImpl) DeleteCourse(ctx context.Context, req DeleteCourseRequest) (*DeleteCourseResult, error) {
	modeStr := req.Mode
	if modeStr == "" {
		modeStr = uc.defaultMode
	}
	mode, err := course.ParseDeleteMode(modeStr)
	if err != nil {
		return nil, err
	}
	leader, err := queries.ResolveLeader(ctx, uc.cluster, req.Leader)
	if err != nil {
		return nil, err
	}
	c, err := queries.FindCourse(ctx, leader.Reads(), req.Course)
	if err != nil {
		return nil, err
	}

	var batch mutation.Batch
	switch mode {
	case course.DeleteHard:
		batch = mutation.NewBatch(mutation.HardDeleteCourse{CourseID: c.ID()})
	default:
		now, err := leader.Reads().Now(ctx)
		if err != nil {
			return nil, markStorageErr(err)
		}
		batch = mutation.NewBatch(
			mutation.SoftDeleteCourse{CourseID: c.ID(), At: now},
			mutation.Tombstone{CourseID: c.ID(), At: now},
		)
	}

	if err := uc.replicator.Apply(ctx, leader.ID(), batch); err != nil {
		return nil, markStorageErr(err)
	}
	report := uc.replicator.Broadcast(ctx, leader.ID(), batch)

	uc.logger.Info("course deleted",
		"leader", leader.ID(),
		"course_id", c.ID(),
		"mode", mode.String(),
		"replicated", len(report.Applied),
		"replication_failed", len(report.Failed))

	return &DeleteCourseResult{
		CourseID:    c.ID(),
		Leader:      leader.ID(),
		Mode:        mode,
		Replication: report,
	}, nil
}
