// SPDX-License-Identifier: MIT

// Package narrative renders the instruction slots of finalized maneuvers.
//
// Every maneuver gets up to five slots: primary (visual) text, verbal
// pre-transition, verbal transition, verbal post-transition and the verbal
// arrival distance. Vertical maneuvers read "Take the stairs to Lobby." when
// they change floor and "Take the stairs." when they do not; building
// boundaries read "Enter the building, and continue on EF.".
//
// Stairs and node-modeled elevators are spoken: their post-transition slot
// gains " Then <next cue>" when the maneuver is short (below the multi-cue
// threshold at walking pace) and the next maneuver is a continue or a turn.
// A node-modeled elevator is a point; the walk after it supplies its
// duration and distance, and the cue after that walk becomes its partner.
//
// Distances are handed to a DistanceFormatter as raw meters; MetricFormatter
// is the default. The composer never changes maneuver boundaries.
package narrative
