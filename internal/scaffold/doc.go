// Package scaffold creates the localization configuration file next to a
// selected file-system entry.
//
// A run has three parts. [ResolveParent] turns the selection into the
// directory that receives the l10n subdirectory: the selection itself when
// it is a directory, its parent otherwise. [Plan] computes the complete
// [Effect] without mutating anything. [Apply] executes an effect: it creates
// the directory (idempotently) and replaces the file's content with exactly
// one render.
//
// [Command] chains the parts with the host collaborators: the notifier, and
// the opener that shows the written file. All file access goes through an
// afero.Fs so the whole sequence runs against memory in tests.
package scaffold
