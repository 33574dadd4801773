// Package laserbounce implements the Laser Bounce simulation: a player
// dodges bouncing enemies, collects timed orbs, and earns a limited-ammo
// laser as the score grows.
//
// The package has no terminal or Bubble Tea dependency. A Driver owns the
// current Run and is advanced by Timer tokens that an external Scheduler
// delivers on a single logical thread. Motion is a fixed displacement per
// tick, so a late tick slows the game down rather than moving entities
// further.
package laserbounce
