package domain

// InstructionMode identifies what the trainee is asked to do during an
// experiment period.
type InstructionMode string

const (
	// ModeRelax asks the trainee to rest between movement imagery periods.
	ModeRelax InstructionMode = "relax"

	// ModeLeft asks for left-hand movement imagery.
	ModeLeft InstructionMode = "left"

	// ModeRight asks for right-hand movement imagery.
	ModeRight InstructionMode = "right"
)

// AllInstructionModes returns every valid instruction mode.
func AllInstructionModes() []InstructionMode {
	return []InstructionMode{ModeRelax, ModeLeft, ModeRight}
}

// IsValid reports whether the mode is a known instruction mode.
func (m InstructionMode) IsValid() bool {
	switch m {
	case ModeRelax, ModeLeft, ModeRight:
		return true
	default:
		return false
	}
}

// IsActive reports whether the mode is a movement-imagery mode.
// Only active periods accumulate intention samples for scoring.
func (m InstructionMode) IsActive() bool {
	return m == ModeLeft || m == ModeRight
}

// AwardsOnTransition reports whether closing a period in mode m by switching
// to next ends a scoreable period. Periods score on relax→left/right,
// left↔right and left/right→relax; relax→relax never scores.
func (m InstructionMode) AwardsOnTransition(next InstructionMode) bool {
	if m == ModeRelax {
		return next.IsActive()
	}
	if m.IsActive() {
		return next.IsActive() && next != m || next == ModeRelax
	}
	return false
}

// String returns the mode name.
func (m InstructionMode) String() string {
	return string(m)
}

// ModeAssets holds the presentation assets shown for one instruction mode.
type ModeAssets struct {
	// Text is the command text displayed to the trainee.
	Text string

	// Avatar is the path to the avatar image.
	Avatar string

	// Video is the path to the instruction video.
	Video string
}

// ExperimentAssets holds the assets for every instruction mode.
type ExperimentAssets struct {
	Left  ModeAssets
	Right ModeAssets
	Relax ModeAssets
}

// ForMode returns the assets configured for the given mode.
func (a ExperimentAssets) ForMode(mode InstructionMode) ModeAssets {
	switch mode {
	case ModeLeft:
		return a.Left
	case ModeRight:
		return a.Right
	default:
		return a.Relax
	}
}

// DefaultExperimentAssets returns the factory experiment assets.
func DefaultExperimentAssets() ExperimentAssets {
	return ExperimentAssets{
		Left: ModeAssets{
			Text:   "LEFT HAND\n\nImagine moving your left hand.\nFocus on the movement and muscle activation.",
			Avatar: "l_hand.png",
			Video:  "l_hand.mp4",
		},
		Right: ModeAssets{
			Text:   "RIGHT HAND\n\nImagine moving your right hand.\nFocus on the movement and muscle activation.",
			Avatar: "r_hand.png",
			Video:  "r_hand.mp4",
		},
		Relax: ModeAssets{
			Text: "Command: RELAX\n\nPlease follow the instructions to control the system using your thoughts.",
		},
	}
}
