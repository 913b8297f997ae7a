// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ModuleStore: The ordered training-module list with its validation
//     contract. Exclusively owned and mutated by the session service.
//   - ConfigStore: Application configuration (headset, experiment assets,
//     module seed).
//   - LeaderboardStore: Score persistence for the scoring service.
//
// # Optional Interfaces
//
//   - Presenter: The presentation boundary the session service pushes full
//     list snapshots, status text and warnings to. A session without an
//     attached presenter mutates silently.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
