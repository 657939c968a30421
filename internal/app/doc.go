// Package app bootstraps roster and runs the interactive menu.
//
// Bootstrap resolves the configuration (defaults, config.yaml, environment,
// flags), initializes logging, opens the database and applies the embedded
// migrations. The resulting Application owns the store for the whole session.
//
// The menu offers every action of the pipeline catalogue plus Exit, runs the
// chosen action and offers the menu again. Failed or cancelled actions are
// reported by the pipeline and never end the session; only Exit, end of input
// (Ctrl+D) or an interrupt at the menu prompt does.
package app
