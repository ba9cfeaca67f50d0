package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"enrollment-waitlist/internal/pkg/errs"
	"enrollment-waitlist/internal/usecase/replication"
)

// TimeLayout keeps the microsecond precision the leaders store.
const TimeLayout = "2006-01-02T15:04:05.000000Z07:00"

var copyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: []uuid.UUID{},
			DstType: []string{},
			Fn: func(src any) (any, error) {
				ids := src.([]uuid.UUID)
				out := make([]string, len(ids))
				for i, id := range ids {
					out[i] = id.String()
				}
				return out, nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).UTC().Format(TimeLayout), nil
			},
		},
	},
}

func copyInto[T any](src any) (*T, error) {
	var dst T
	if err := copier.CopyWithOption(&dst, src, copyOption); err != nil {
		return nil, errs.Wrap(err, "copy response")
	}
	return &dst, nil
}

type FailureResponse struct {
	Leader string `json:"leader"`
	Error  string `json:"error"`
}

// ReplicationResponse lists the peers that took a batch and the ones that did not.
type ReplicationResponse struct {
	Applied []string          `json:"applied"`
	Failed  []FailureResponse `json:"failed"`
}

func FromReport(r replication.Report) ReplicationResponse {
	res := ReplicationResponse{
		Applied: append([]string{}, r.Applied...),
		Failed:  make([]FailureResponse, len(r.Failed)),
	}
	for i, f := range r.Failed {
		res.Failed[i] = FailureResponse{Leader: f.Leader, Error: f.Err.Error()}
	}
	return res
}
