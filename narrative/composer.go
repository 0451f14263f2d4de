// SPDX-License-Identifier: MIT
//
// File: composer.go
// Role: Composer, its options and the per-type phrase tables.

package narrative

import (
	"fmt"
	"math"

	"github.com/katalvlaran/indoornav/label"
	"github.com/katalvlaran/indoornav/maneuver"
)

// Composer defaults.
const (
	// DefaultWalkingSpeedKph is the pace used to time maneuvers for multi-cue.
	DefaultWalkingSpeedKph = 5.1

	// DefaultMultiCueSeconds is the longest maneuver that still chains its
	// successor into one spoken cue.
	DefaultMultiCueSeconds = 13.0
)

const (
	arrivedText = "You have arrived at your destination."
	thenJoiner  = " Then "
)

// Option customizes a Composer.
type Option func(*Composer)

// WithDistanceFormatter replaces MetricFormatter; f must be non-nil.
func WithDistanceFormatter(f DistanceFormatter) Option {
	if f == nil {
		panic("narrative: nil distance formatter")
	}

	return func(c *Composer) { c.distance = f }
}

// WithWalkingSpeed sets the pace in km/h used for multi-cue timing.
func WithWalkingSpeed(kph float64) Option {
	if !(kph > 0) {
		panic(fmt.Sprintf("narrative: walking speed %v must be positive", kph))
	}

	return func(c *Composer) { c.speedMps = kph * 1000 / 3600 }
}

// WithMultiCueSeconds sets the multi-cue threshold; 0 disables chaining.
func WithMultiCueSeconds(s float64) Option {
	if !(s >= 0) {
		panic(fmt.Sprintf("narrative: multi-cue threshold %v must be non-negative", s))
	}

	return func(c *Composer) { c.multiCue = s }
}

// Composer renders instruction slots. It is immutable after construction
// and safe for concurrent use.
type Composer struct {
	distance DistanceFormatter
	speedMps float64
	multiCue float64
}

// NewComposer returns a Composer with the given options applied.
func NewComposer(opts ...Option) *Composer {
	c := &Composer{
		distance: MetricFormatter{},
		speedMps: DefaultWalkingSpeedKph * 1000 / 3600,
		multiCue: DefaultMultiCueSeconds,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compose returns a copy of ms with every Instructions field filled.
// ms itself is not modified.
// Complexity: O(len(ms)).
func (c *Composer) Compose(ms []maneuver.Maneuver) []maneuver.Maneuver {
	out := make([]maneuver.Maneuver, len(ms))
	copy(out, ms)
	for k := range out {
		out[k].Instructions = c.instructions(ms, k)
	}

	return out
}

func (c *Composer) instructions(ms []maneuver.Maneuver, k int) maneuver.InstructionSet {
	m := ms[k]
	switch {
	case m.Type == maneuver.TypeDestination:
		return maneuver.InstructionSet{Primary: arrivedText, VerbalPreTransition: arrivedText}

	case m.Type.IsBuilding():
		return maneuver.InstructionSet{Primary: buildingText(m)}

	case m.Type.IsVertical():
		base := verticalText(m)
		set := maneuver.InstructionSet{Primary: base}
		if m.Type != maneuver.TypeStepsEnter && !m.IsPoint() {
			return set // edge elevators and escalators are not spoken
		}
		walk, partner, seconds := c.cueContext(ms, k)
		set.VerbalTransition = base
		set.VerbalPostTransition = base
		if partner != nil && seconds < c.multiCue && (partner.Type == maneuver.TypeContinue || partner.Type.IsTurn()) {
			set.VerbalPostTransition = base + thenJoiner + ShortText(*partner)
		}
		if walk != nil {
			c.arrival(&set, walk.Length)
		}
		return set

	default:
		set := maneuver.InstructionSet{
			Primary:             ShortText(m),
			VerbalPreTransition: succinctText(m),
		}
		set.VerbalPostTransition = set.Primary
		c.arrival(&set, m.Length)
		return set
	}
}

// cueContext finds, for vertical maneuver k, the walk that follows it, the
// maneuver that may be chained into its spoken cue, and how long the
// maneuver itself takes.
func (c *Composer) cueContext(ms []maneuver.Maneuver, k int) (walk, partner *maneuver.Maneuver, seconds float64) {
	next := func(i int) *maneuver.Maneuver {
		if i < len(ms) && ms[i].Type != maneuver.TypeDestination {
			return &ms[i]
		}
		return nil
	}
	m := ms[k]
	walk = next(k + 1)
	if !m.IsPoint() {
		return walk, walk, m.Length / c.speedMps
	}
	if walk == nil {
		return nil, nil, 0
	}
	partner = walk
	// A plain Continue here is the elevator's own exit walk, not a separate cue.
	if walk.Type == maneuver.TypeContinue {
		partner = next(k + 2)
	}

	return walk, partner, walk.Length / c.speedMps
}

func (c *Composer) arrival(set *maneuver.InstructionSet, meters float64) {
	set.ArrivalMeters = &meters
	set.VerbalArrivalDistance = c.distance.FormatDistance(meters)
}

// ShortText is the one-line cue of a walking maneuver, also used as the
// "Then ..." suffix of multi-cue instructions.
func ShortText(m maneuver.Maneuver) string {
	switch {
	case m.Type == maneuver.TypeStart:
		return "Walk " + Cardinal(m.Heading) + onWay(" on ", m.Way)
	case m.Type == maneuver.TypeDestination:
		return arrivedText
	case m.Type.IsTurn():
		return turnVerb[m.Type] + onWay(" onto ", m.Way)
	case m.Type.IsVertical():
		return verticalText(m)
	case m.Type.IsBuilding():
		return buildingText(m)
	default:
		return "Continue" + onWay(" on ", m.Way)
	}
}

func succinctText(m maneuver.Maneuver) string {
	switch {
	case m.Type == maneuver.TypeStart:
		return "Walk " + Cardinal(m.Heading) + "."
	case m.Type.IsTurn():
		return turnVerb[m.Type] + "."
	default:
		return "Continue."
	}
}

var turnVerb = map[maneuver.Type]string{
	maneuver.TypeSlightRight: "Bear right",
	maneuver.TypeRight:       "Turn right",
	maneuver.TypeSharpRight:  "Make a sharp right",
	maneuver.TypeUTurn:       "Make a U-turn",
	maneuver.TypeSharpLeft:   "Make a sharp left",
	maneuver.TypeLeft:        "Turn left",
	maneuver.TypeSlightLeft:  "Bear left",
}

var verticalNoun = map[maneuver.Type]string{
	maneuver.TypeElevatorEnter:  "elevator",
	maneuver.TypeEscalatorEnter: "escalator",
	maneuver.TypeStepsEnter:     "stairs",
}

// verticalText is "Take the <noun> to <label>." or "Take the <noun>.".
func verticalText(m maneuver.Maneuver) string {
	text := "Take the " + verticalNoun[m.Type]
	if to, changed := label.Change(m.StartLevel, m.EndLevel); changed {
		text += " to " + to
	}

	return text + "."
}

func buildingText(m maneuver.Maneuver) string {
	verb := "Enter"
	if m.Type == maneuver.TypeBuildingExit {
		verb = "Exit"
	}
	if m.Way == "" {
		return verb + " the building."
	}

	return verb + " the building, and continue on " + m.Way + "."
}

func onWay(prep, way string) string {
	if way == "" {
		return "."
	}

	return prep + way + "."
}

var cardinals = [...]string{"north", "northeast", "east", "southeast", "south", "southwest", "west", "northwest"}

// Cardinal names the compass direction of a heading in degrees.
func Cardinal(heading float64) string {
	h := math.Mod(heading, 360)
	if h < 0 {
		h += 360
	}

	return cardinals[int((h+22.5)/45)%len(cardinals)]
}
