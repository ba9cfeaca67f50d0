package clock

import "time"

// Precision matches PostgreSQL timestamptz.
const Precision = time.Microsecond

// Instant is the only timestamp type compared inside the engine.
// It is always UTC with no offset and truncated to Precision, so a value built
// in memory compares equal to the same value read back from any leader.
type Instant struct {
	t time.Time
}

// InstantOf converts t to UTC before dropping its zone.
func InstantOf(t time.Time) Instant {
	if t.IsZero() {
		return Instant{}
	}
	return Instant{t: t.UTC().Truncate(Precision)}
}

func NowInstant(c Clock) Instant {
	return InstantOf(c.Now())
}

func (i Instant) Time() time.Time { return i.t }
func (i Instant) IsZero() bool    { return i.t.IsZero() }

func (i Instant) Before(o Instant) bool { return i.t.Before(o.t) }
func (i Instant) After(o Instant) bool  { return i.t.After(o.t) }
func (i Instant) Equal(o Instant) bool  { return i.t.Equal(o.t) }

// Compare returns -1, 0 or +1.
func (i Instant) Compare(o Instant) int { return i.t.Compare(o.t) }

func (i Instant) Add(d time.Duration) Instant { return InstantOf(i.t.Add(d)) }

func (i Instant) String() string {
	if i.t.IsZero() {
		return "0001-01-01T00:00:00.000000Z"
	}
	return i.t.Format("2006-01-02T15:04:05.000000Z")
}
