package course

import (
	"enrollment-waitlist/internal/pkg/clock"

	"github.com/google/uuid"
)

type Course struct {
	id         uuid.UUID
	name       Name
	capacity   Capacity
	deleted    bool
	modifiedAt clock.Instant
}

func NewCourse(id uuid.UUID, name string, capacity int, now clock.Instant) (*Course, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	c, err := NewCapacity(capacity)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Course{
		id:         id,
		name:       n,
		capacity:   c,
		modifiedAt: now,
	}, nil
}

// Reconstruct rebuilds a course from storage without validation.
func Reconstruct(id uuid.UUID, name string, capacity int, deleted bool, modifiedAt clock.Instant) *Course {
	return &Course{
		id:         id,
		name:       Name{value: name},
		capacity:   Capacity{value: capacity},
		deleted:    deleted,
		modifiedAt: modifiedAt,
	}
}

func (c *Course) ID() uuid.UUID             { return c.id }
func (c *Course) Name() Name                { return c.name }
func (c *Course) Capacity() Capacity        { return c.capacity }
func (c *Course) IsDeleted() bool           { return c.deleted }
func (c *Course) ModifiedAt() clock.Instant { return c.modifiedAt }
