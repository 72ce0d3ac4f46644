// Package navigator implements the Command Assist step machine.
//
// A Navigator maps (state, input) to the next state. It keeps the history
// stack consistent with the forward path so Back always lands on the screen
// the user came from, and clears the selections made after that screen.
package navigator
