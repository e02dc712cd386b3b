// Package template describes the content of the generated localization
// configuration file as data.
//
// A [Template] is an ordered list of line groups framed by a header, an
// annotation marker and a class block. Built-in variants differ only in
// which groups they contain and how much commentary precedes each constant;
// they are selected by name with [Lookup] and filled from [Params].
//
// Rendering is a plain line writer: every line is emitted followed by a
// newline, nothing is evaluated. Definition files (YAML or TOML) carry the
// same structure for teams that want a house variant without code changes.
package template
