package editor

// Prompter talks to the user on behalf of an operation.
type Prompter interface {
	// PromptInteger asks for an integer. Dismissing the prompt returns an
	// error matching operation.ErrCanceled.
	PromptInteger(label string) (int, error)

	// Confirm asks a yes/no question. Dismissing it returns an error
	// matching operation.ErrCanceled.
	Confirm(question string) (bool, error)

	// Message shows text to the user.
	Message(text string)
}

// FileChooser picks paths for the built-in Load and Save operations. Both
// methods return an error matching operation.ErrCanceled when dismissed.
type FileChooser interface {
	ChooseOpen() (string, error)
	ChooseSave() (string, error)
}

// IO bundles the collaborators of one operation invocation. A nil Prompter
// cancels every prompt and drops messages; a nil Files cancels Load and
// Save.
type IO struct {
	Prompter Prompter
	Files    FileChooser
}
