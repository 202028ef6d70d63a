package zwo

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const textEventTag = "textevent"

// Limits on what a single file may expand to. Durations are in seconds.
const (
	MaxDuration = 24 * 60 * 60
	MaxRepeat   = 1000
	MaxSegments = 10000
)

type rawFile struct {
	Name        *string     `xml:"name"`
	Description *string     `xml:"description"`
	Workout     *rawWorkout `xml:"workout"`
}

type rawWorkout struct {
	Blocks []rawElement `xml:",any"`
}

type rawElement struct {
	XMLName  xml.Name
	Attrs    []xml.Attr   `xml:",any,attr"`
	Children []rawElement `xml:",any"`
}

// attrs gives case-insensitive access to the attributes of one block and
// records the block's position for error messages.
type attrs struct {
	values   map[string]string
	tag      string
	position int
}

func newAttrs(position int, el rawElement) attrs {
	a := attrs{
		values:   make(map[string]string, len(el.Attrs)),
		tag:      el.XMLName.Local,
		position: position,
	}

	for _, attr := range el.Attrs {
		a.values[strings.ToLower(attr.Name.Local)] = attr.Value
	}

	return a
}

// lookup returns the raw attribute value.
func (a attrs) lookup(name string) (string, bool) {
	v, ok := a.values[strings.ToLower(name)]
	return v, ok
}

// number returns the attribute value with surrounding whitespace removed,
// ready for numeric parsing.
func (a attrs) number(name string) (string, bool) {
	v, ok := a.lookup(name)
	return strings.TrimSpace(v), ok
}

func (a attrs) requiredFloat(name string) (float64, error) {
	if _, ok := a.lookup(name); !ok {
		return 0, ErrMissingAttribute.Fmt(a.position, a.tag, name)
	}

	v, err := a.optionalFloat(name)
	if err != nil {
		return 0, err
	}

	return *v, nil
}

func (a attrs) optionalFloat(name string) (*float64, error) {
	s, ok := a.number(name)
	if !ok {
		return nil, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, ErrInvalidNumber.Fmt(a.position, a.tag, name, s)
	}

	return &f, nil
}

func (a attrs) requiredInt(name string) (int, error) {
	s, ok := a.number(name)
	if !ok {
		return 0, ErrMissingAttribute.Fmt(a.position, a.tag, name)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrInvalidNumber.Fmt(a.position, a.tag, name, s)
	}

	return n, nil
}

// requiredDuration reads a duration in seconds within [0, MaxDuration].
func (a attrs) requiredDuration(name string) (float64, error) {
	d, err := a.requiredFloat(name)
	if err != nil {
		return 0, err
	}

	if d < 0 {
		return 0, ErrNegativeDuration.Fmt(a.position, a.tag, name, d)
	}

	if d > MaxDuration {
		return 0, ErrDurationTooLong.Fmt(a.position, a.tag, name, MaxDuration, d)
	}

	return d, nil
}

// optionalCadence reads a cadence in RPM. Decimal values are rounded to the
// nearest whole RPM.
func (a attrs) optionalCadence(name string) (*int, error) {
	f, err := a.optionalFloat(name)
	if err != nil || f == nil {
		return nil, err
	}

	rpm := int(math.Round(*f))

	return &rpm, nil
}

func (a attrs) powerTarget(target, low, high string) (PowerTarget, error) {
	var (
		p   PowerTarget
		err error
	)

	if p.Target, err = a.optionalFloat(target); err != nil {
		return p, err
	}

	if p.Low, err = a.optionalFloat(low); err != nil {
		return p, err
	}

	if p.High, err = a.optionalFloat(high); err != nil {
		return p, err
	}

	return p, nil
}

// Parse reads a workout file. Unknown block types are kept as UnknownBlock
// values rather than rejected.
func Parse(r io.Reader) (*Document, error) {
	var raw rawFile

	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, ErrMalformed.Wrap(err)
	}

	if raw.Name == nil {
		return nil, ErrMissingElement.Fmt("name")
	}

	if raw.Description == nil {
		return nil, ErrMissingElement.Fmt("description")
	}

	if raw.Workout == nil {
		return nil, ErrMissingElement.Fmt("workout")
	}

	doc := &Document{
		Name:        *raw.Name,
		Description: *raw.Description,
		Blocks:      make([]Block, 0, len(raw.Workout.Blocks)),
	}

	var segments int

	for i, el := range raw.Workout.Blocks {
		b, err := parseBlock(i+1, el)
		if err != nil {
			return nil, err
		}

		segments += segmentCount(b)
		if segments > MaxSegments {
			return nil, ErrTooManySegments.Fmt(b.Position(), b.Tag(), MaxSegments)
		}

		doc.Blocks = append(doc.Blocks, b)
	}

	return doc, nil
}

func segmentCount(b Block) int {
	switch blk := b.(type) {
	case *SteadyBlock:
		return 1
	case *IntervalBlock:
		return 2 * blk.Repeat
	default:
		return 0
	}
}

func parseBlock(position int, el rawElement) (Block, error) {
	a := newAttrs(position, el)

	switch kind := strings.ToLower(el.XMLName.Local); kind {
	case string(Warmup), string(Cooldown), string(FreeRide), string(SteadyState):
		return parseSteady(a, SteadyKind(kind), el.Children)
	case intervalsTag:
		return parseInterval(a, el.Children)
	default:
		return &UnknownBlock{tag: a.tag, position: position}, nil
	}
}

func parseSteady(a attrs, kind SteadyKind, children []rawElement) (*SteadyBlock, error) {
	b := &SteadyBlock{
		tag:      a.tag,
		position: a.position,
		Kind:     kind,
	}

	var err error

	if b.Duration, err = a.requiredDuration("Duration"); err != nil {
		return nil, err
	}

	if b.TextEvents, err = parseTextEvents(a, children); err != nil {
		return nil, err
	}

	// free rides have no target, so stray power or cadence attributes are
	// not even looked at
	if kind == FreeRide {
		return b, nil
	}

	if b.Power, err = a.powerTarget("Power", "PowerLow", "PowerHigh"); err != nil {
		return nil, err
	}

	if b.Cadence, err = a.optionalCadence("Cadence"); err != nil {
		return nil, err
	}

	return b, nil
}

func parseInterval(a attrs, children []rawElement) (*IntervalBlock, error) {
	b := &IntervalBlock{
		tag:      a.tag,
		position: a.position,
	}

	var err error

	if b.Repeat, err = a.requiredInt("Repeat"); err != nil {
		return nil, err
	}

	if b.Repeat < 0 {
		return nil, ErrNegativeRepeat.Fmt(a.position, a.tag, "Repeat", b.Repeat)
	}

	if b.Repeat > MaxRepeat {
		return nil, ErrRepeatTooLarge.Fmt(a.position, a.tag, "Repeat", MaxRepeat, b.Repeat)
	}

	if b.OnDuration, err = a.requiredDuration("OnDuration"); err != nil {
		return nil, err
	}

	if b.OffDuration, err = a.requiredDuration("OffDuration"); err != nil {
		return nil, err
	}

	if b.OnPower, err = a.powerTarget("OnPower", "PowerOnLow", "PowerOnHigh"); err != nil {
		return nil, err
	}

	if b.OffPower, err = a.powerTarget("OffPower", "PowerOffLow", "PowerOffHigh"); err != nil {
		return nil, err
	}

	if b.Cadence, err = a.optionalCadence("Cadence"); err != nil {
		return nil, err
	}

	if b.CadenceResting, err = a.optionalCadence("CadenceResting"); err != nil {
		return nil, err
	}

	if b.TextEvents, err = parseTextEvents(a, children); err != nil {
		return nil, err
	}

	return b, nil
}

func parseTextEvents(a attrs, children []rawElement) ([]TextEvent, error) {
	var events []TextEvent

	for _, child := range children {
		if !strings.EqualFold(child.XMLName.Local, textEventTag) {
			continue
		}

		ev := newAttrs(a.position, child)
		ev.tag = fmt.Sprintf("%s/%s", a.tag, child.XMLName.Local)

		offset, err := ev.requiredInt("timeoffset")
		if err != nil {
			return nil, err
		}

		msg, _ := ev.lookup("message")

		events = append(events, TextEvent{Offset: offset, Message: msg})
	}

	return events, nil
}
