// Package pipeline runs the roster menu actions.
//
// Every action is a descriptor: the reference lists it fetches, the questions it
// asks, an optional confirmation, and the single mutation (or view) it performs.
// One Executor consumes all of them:
//
//	fetch reference data -> build option lists -> prompt -> check answers
//	  -> confirm -> mutate or render -> report
//
// Reference data is read fresh on every run. A failure at any step is reported on
// stderr and logged; it never ends the interactive session. Declining a
// confirmation, or interrupting a prompt, cancels the action before any write.
package pipeline
