// Package narration is the optional spoken side channel of the wizard.
//
// Speech is fire-and-forget: Say returns immediately, the latest message
// wins and Stop silences whatever is playing. Nothing in the wizard waits
// for, or depends on, narration succeeding.
package narration
