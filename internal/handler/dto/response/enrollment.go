package response

import (
	"enrollment-waitlist/internal/usecase/commands"
)

type StatusChangeResponse struct {
	RecordID string `json:"record_id"`
	Student  string `json:"student"`
	From     string `json:"from"`
	To       string `json:"to"`
}

type EnrollResponse struct {
	RecordID    string                 `json:"record_id"`
	CourseID    string                 `json:"course_id"`
	Leader      string                 `json:"leader"`
	Status      string                 `json:"status"`
	Position    int                    `json:"position"`
	Capacity    int                    `json:"capacity"`
	Changes     []StatusChangeResponse `json:"changes"`
	Replication ReplicationResponse    `json:"replication" copier:"-"`
}

func FromEnrollResult(r *commands.EnrollResult) (*EnrollResponse, error) {
	res, err := copyInto[EnrollResponse](r)
	if err != nil {
		return nil, err
	}
	if res.Changes == nil {
		res.Changes = []StatusChangeResponse{}
	}
	res.Replication = FromReport(r.Replication)
	return res, nil
}

type RemoveResponse struct {
	CourseID    string                 `json:"course_id"`
	Leader      string                 `json:"leader"`
	Removed     []string               `json:"removed"`
	Changes     []StatusChangeResponse `json:"changes"`
	Replication ReplicationResponse    `json:"replication" copier:"-"`
}

func FromRemoveResult(r *commands.RemoveResult) (*RemoveResponse, error) {
	res, err := copyInto[RemoveResponse](r)
	if err != nil {
		return nil, err
	}
	if res.Changes == nil {
		res.Changes = []StatusChangeResponse{}
	}
	res.Replication = FromReport(r.Replication)
	return res, nil
}
