//go:build unit || e2e

package builder

import (
	"enrollment-waitlist/internal/domain/course"
	reqdto "enrollment-waitlist/internal/handler/dto/request"
	"enrollment-waitlist/internal/pkg/clock"

	"github.com/google/uuid"
)

type CourseBuilder struct {
	ID         uuid.UUID
	Name       string
	Capacity   int
	Deleted    bool
	ModifiedAt clock.Instant
}

func NewCourseBuilder() *CourseBuilder {
	return &CourseBuilder{
		ID:         uuid.New(),
		Name:       "Distributed Systems",
		Capacity:   2,
		ModifiedAt: At(0),
	}
}

func (c *CourseBuilder) With(mutate func(*CourseBuilder)) *CourseBuilder {
	mutate(c)
	return c
}

// Build methods
func (c *CourseBuilder) BuildDomain() (*course.Course, error) {
	return course.NewCourse(c.ID, c.Name, c.Capacity, c.ModifiedAt)
}

// Build skips validation, for storage fixtures.
func (c *CourseBuilder) Build() *course.Course {
	return course.Reconstruct(c.ID, c.Name, c.Capacity, c.Deleted, c.ModifiedAt)
}

func (c *CourseBuilder) BuildCreateRequestDTO() reqdto.CreateCourseRequest {
	capacity := c.Capacity
	return reqdto.CreateCourseRequest{
		Name:     c.Name,
		Capacity: &capacity,
	}
}

// Fluent builder methods
func (c *CourseBuilder) WithID(id uuid.UUID) *CourseBuilder {
	c.ID = id
	return c
}

func (c *CourseBuilder) WithName(name string) *CourseBuilder {
	c.Name = name
	return c
}

func (c *CourseBuilder) WithCapacity(capacity int) *CourseBuilder {
	c.Capacity = capacity
	return c
}

func (c *CourseBuilder) AsDeleted() *CourseBuilder {
	c.Deleted = true
	return c
}
