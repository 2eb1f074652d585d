// Package ports defines the interfaces the bindings depend on.
// The wallet engine is reached only through Account and Wallet; approval and
// schema lookups go through the smaller ports next to them.
package ports
