// Package dispatch maps wallet, account and utils commands onto engine calls
// and wraps every result, error or panic in a Response envelope.
package dispatch
