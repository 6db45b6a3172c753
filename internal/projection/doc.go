// Package projection derives every task view from one task collection.
//
// Functions here are pure: they never mutate their input, hold no state and
// read no clock. "Today" and "now" are always passed in. Every function is
// total over its input, including empty collections and malformed scheduling
// fields, which are passed through rather than rejected.
package projection
