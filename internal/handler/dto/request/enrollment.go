package request

import (
	"enrollment-waitlist/internal/usecase/commands"
)

type EnrollRequest struct {
	Student string `json:"student" binding:"required,max=200"`
}

func (r *EnrollRequest) ToCommand(leader, courseName string) commands.EnrollRequest {
	return commands.EnrollRequest{
		Leader:  leader,
		Student: r.Student,
		Course:  courseName,
	}
}
