package editor

import _ "embed"

// seedDocument is the document the editor opens with once ready.
//
//go:embed seed.md
var seedDocument string
