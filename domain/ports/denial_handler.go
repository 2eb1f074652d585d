package ports

// DenialHandler is called when the method policy refuses a call.
type DenialHandler interface {
	// OnDenial receives the method key (e.g. "wallet/backup") and a human-readable reason.
	OnDenial(method string, reason string)
}
