// Package shell locates and rewrites PATH declarations inside shell
// startup files. Each supported shell family gets a Handler that knows
// the family's config location, declaration syntax, and render format;
// the Rewrite algorithm and the Updater gateway are shared.
package shell

// ShellType identifies a supported shell family.
type ShellType string

const (
	Zsh     ShellType = "zsh"
	Bash    ShellType = "bash"
	Fish    ShellType = "fish"
	Tcsh    ShellType = "tcsh"
	Ksh     ShellType = "ksh"
	Generic ShellType = "sh"
)

// DeclarationKind classifies how a located statement sets PATH.
type DeclarationKind string

const (
	// KindAssignment is a plain assignment: export PATH=...
	KindAssignment DeclarationKind = "assignment"
	// KindAddition is an additive assignment: PATH=$PATH:...
	KindAddition DeclarationKind = "addition"
	// KindArrayLiteral is a single-line zsh array: path=(...)
	KindArrayLiteral DeclarationKind = "array"
	// KindArrayBlock is a multi-line zsh array bounded by "path+=(" and ")"
	KindArrayBlock DeclarationKind = "array_block"
	// KindSetEnv is the csh-style setenv PATH ... or set path = (...)
	KindSetEnv DeclarationKind = "setenv"
	// KindFishPath is fish_add_path or set -gx PATH
	KindFishPath DeclarationKind = "fish_path"
)

// Declaration is a located PATH statement within config content.
// Line numbers are 1-based and always refer to the original, unmodified
// content; EndLine is inclusive, and single-line declarations have
// StartLine == EndLine. Declarations are recomputed on every rewrite
// and never persisted.
type Declaration struct {
	StartLine int
	EndLine   int
	Text      string
	Kind      DeclarationKind
}
