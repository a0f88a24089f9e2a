package actors

// Status is the coarse availability status of an actor.
type Status uint8

const (
	StatusNone Status = iota
	StatusActive
	StatusInactive
	StatusCaptured
	StatusReserve
	StatusRecruitPool
	StatusHQ
	StatusDismissed
	StatusResigned
	StatusKilled
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusInactive:
		return "Inactive"
	case StatusCaptured:
		return "Captured"
	case StatusReserve:
		return "Reserve"
	case StatusRecruitPool:
		return "RecruitPool"
	case StatusHQ:
		return "HQ"
	case StatusDismissed:
		return "Dismissed"
	case StatusResigned:
		return "Resigned"
	case StatusKilled:
		return "Killed"
	default:
		return "None"
	}
}

// OnMap reports whether the status belongs to an actor occupying a slot.
func (s Status) OnMap() bool {
	return s == StatusActive || s == StatusInactive || s == StatusCaptured
}

// Terminal reports whether the status removes an actor from play.
func (s Status) Terminal() bool {
	return s == StatusDismissed || s == StatusResigned || s == StatusKilled
}

// InactiveReason is why an on-map actor is unavailable.
type InactiveReason uint8

const (
	InactiveNone InactiveReason = iota
	InactiveLieLow
	InactiveBreakdown
	InactiveStressLeave
)

func (r InactiveReason) String() string {
	switch r {
	case InactiveLieLow:
		return "Lying Low"
	case InactiveBreakdown:
		return "Breakdown"
	case InactiveStressLeave:
		return "Stress Leave"
	default:
		return "None"
	}
}

// State is the full availability state of an actor. Exactly one variant
// applies at a time, so sub-states can't drift out of sync with Status.
type State interface {
	Status() Status
	state()
}

// Active actors are on the map and available.
type Active struct{}

// Inactive actors are on the map but unavailable for Reason.
type Inactive struct{ Reason InactiveReason }

// Captured actors are held until Timer runs out.
type Captured struct{ Timer int }

// InReserve actors wait in the reserve pool.
type InReserve struct{}

// InRecruitPool actors are candidates not yet recruited.
type InRecruitPool struct{}

// AtHQ actors serve in the background hierarchy.
type AtHQ struct{ HQID int }

// Departed actors have left play for good.
type Departed struct{ Kind Status }

func (Active) Status() Status        { return StatusActive }
func (Inactive) Status() Status      { return StatusInactive }
func (Captured) Status() Status      { return StatusCaptured }
func (InReserve) Status() Status     { return StatusReserve }
func (InRecruitPool) Status() Status { return StatusRecruitPool }
func (AtHQ) Status() Status          { return StatusHQ }
func (d Departed) Status() Status    { return d.Kind }

func (Active) state()        {}
func (Inactive) state()      {}
func (Captured) state()      {}
func (InReserve) state()     {}
func (InRecruitPool) state() {}
func (AtHQ) state()          {}
func (Departed) state()      {}
