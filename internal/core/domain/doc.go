// Package domain defines the core business entities for the AiRobo trainer.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Training module names: the ordered, unique list the operator curates
//   - HeadsetSettings: static acquisition parameters for the BCI headset
//   - ExperimentAssets: per-instruction-mode text/avatar/video assets
//   - ScoreEntry: a leaderboard record for a completed training session
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
