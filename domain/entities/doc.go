// Package entities defines the wire vocabulary of the wallet bindings: the
// AccountMethod, WalletMethod and UtilsMethod command envelopes, the Response
// envelope, and the DTOs the engine hands back and forth.
// The bindings relay these values; they do not own them.
package entities
