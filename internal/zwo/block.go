// Package zwo reads Zwift workout (.zwo) files into a typed block
// representation.
package zwo

// Document is a parsed workout file.
type Document struct {
	Name        string
	Description string
	Blocks      []Block
}

// Block is one child of the <workout> element. The set of implementations
// is closed: *SteadyBlock, *IntervalBlock and *UnknownBlock.
type Block interface {
	// Position is the 1-based index of the block within <workout>.
	Position() int
	// Tag is the element name as written in the source file.
	Tag() string
	block()
}

// SteadyKind identifies the single-segment block types.
type SteadyKind string

const (
	Warmup      SteadyKind = "warmup"
	Cooldown    SteadyKind = "cooldown"
	FreeRide    SteadyKind = "freeride"
	SteadyState SteadyKind = "steadystate"
)

const intervalsTag = "intervalst"

// PowerTarget holds the optional power attributes of a block or interval
// phase, as fractions of threshold power.
type PowerTarget struct {
	Target *float64
	Low    *float64
	High   *float64
}

// TextEvent is a message shown at an absolute offset from the start of the
// workout.
type TextEvent struct {
	Message string
	Offset  int
}

// SteadyBlock is a warmup, cooldown, free ride or steady state block.
// Free ride blocks never carry a power target or cadence.
type SteadyBlock struct {
	Cadence    *int
	tag        string
	Kind       SteadyKind
	TextEvents []TextEvent
	Power      PowerTarget
	Duration   float64
	position   int
}

// IntervalBlock is a repeated on/off interval set.
type IntervalBlock struct {
	Cadence        *int
	CadenceResting *int
	tag            string
	TextEvents     []TextEvent
	OnPower        PowerTarget
	OffPower       PowerTarget
	OnDuration     float64
	OffDuration    float64
	Repeat         int
	position       int
}

// UnknownBlock is any element this package does not understand.
type UnknownBlock struct {
	tag      string
	position int
}

func (b *SteadyBlock) Position() int   { return b.position }
func (b *SteadyBlock) Tag() string     { return b.tag }
func (b *IntervalBlock) Position() int { return b.position }
func (b *IntervalBlock) Tag() string   { return b.tag }
func (b *UnknownBlock) Position() int  { return b.position }
func (b *UnknownBlock) Tag() string    { return b.tag }

func (*SteadyBlock) block()   {}
func (*IntervalBlock) block() {}
func (*UnknownBlock) block()  {}
