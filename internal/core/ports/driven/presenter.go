package driven

// Presenter is the presentation boundary the session service talks to.
// The service pushes complete state after every mutation; the presenter never
// reads the store directly, so the displayed list cannot drift from the model.
//
// Implementations must treat every call as a full replacement of what is
// currently displayed, not an incremental edit.
type Presenter interface {
	// RenderList replaces the displayed list with the given entries.
	RenderList(entries []string)

	// SetStatus replaces the status readout.
	SetStatus(text string)

	// ShowWarning surfaces a user-visible warning. It must not block the
	// caller beyond presenting the message.
	ShowWarning(title, message string)
}
