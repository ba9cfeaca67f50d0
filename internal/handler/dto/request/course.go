package request

import (
	"enrollment-waitlist/internal/usecase/commands"
)

type CreateCourseRequest struct {
	Name string `json:"name" binding:"required,max=200"`
	// pointer so that an explicit 0 passes the required check
	Capacity *int `json:"capacity" binding:"required,min=0"`
}

func (r *CreateCourseRequest) ToCommand(leader string) commands.CreateCourseRequest {
	capacity := 0
	if r.Capacity != nil {
		capacity = *r.Capacity
	}
	return commands.CreateCourseRequest{
		Leader:   leader,
		Name:     r.Name,
		Capacity: capacity,
	}
}
