// Package config resolves the effective configuration for one pipeline
// invocation. Three layers contribute values, lowest precedence first:
// built-in defaults, the key=value configuration file, and explicit
// command-line overrides. A layer only applies when it actually supplies a
// value; an absent layer never clobbers a lower one. The resolver performs
// no cross-field validation — a field may be irrelevant to the stages the
// user requested, so each stage validates its own inputs at dispatch time.
package config
