package ports

// MethodRequest describes a method call awaiting approval.
type MethodRequest struct {
	Key         string
	Description string
	Risk        string
}

// Prompter handles interactive method approval.
type Prompter interface {
	// IsInteractive returns true if running in an interactive terminal.
	IsInteractive() bool

	// PromptForMethod asks the user to approve a method call.
	// Returns: granted (allow this time), always (persist to store), error.
	PromptForMethod(req MethodRequest) (granted bool, always bool, err error)
}
