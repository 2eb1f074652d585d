// Package utils implements the stateless helper methods: mnemonics,
// bech32 address conversion, output-derived ids and hex encoding.
// None of them needs a wallet engine.
package utils
