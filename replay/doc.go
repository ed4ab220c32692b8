// Package replay normalizes the decoded record sections of a StarCraft II
// replay into a queryable object graph: who occupied each lobby slot, what
// role they held (human, computer, observer), which team they belonged to,
// and the derived identifiers that link a participant to a battle.net
// account.
//
// The package consumes records that an external decoder has already
// extracted from the replay container (slot data from initData, user data
// from initData, player details from the details file, and attribute
// events). It performs no I/O and holds no process-wide state; independent
// replays can be normalized concurrently without coordination. Lookup
// tables are read-only configuration and safe to share across invocations.
package replay
