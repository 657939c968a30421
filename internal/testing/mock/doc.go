// Package mock provides test doubles for roster components.
//
// Prompter replays a scripted list of answers in place of the interactive
// readline prompter and records every prompt it receives, so tests can drive
// the menu and the action pipeline without a terminal.
package mock
