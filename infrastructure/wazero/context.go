package wazero

import (
	"context"

	"github.com/tetratelabs/wazero/api"
)

type contextKey struct {
	name string
}

var guestNameKey = &contextKey{name: "guest_name"}

// WithGuestName names the guest making calls on ctx. It is attached to the
// guest's log records.
func WithGuestName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, guestNameKey, name)
}

// GuestNameFromContext retrieves the name set by WithGuestName.
func GuestNameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(guestNameKey).(string)
	return name, ok && name != ""
}

// GuestName returns the guest name from ctx, falling back to the module name.
func GuestName(ctx context.Context, mod api.Module) string {
	if name, ok := GuestNameFromContext(ctx); ok {
		return name
	}
	if mod == nil {
		return ""
	}
	return mod.Name()
}
