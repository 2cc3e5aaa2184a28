// Package render provides output renderers for pairgen's report patterns.
package render

import "github.com/dkoosis/pairgen/pkg/pattern"

// Renderer converts patterns to formatted output.
type Renderer interface {
	Render(patterns []pattern.Pattern) string
}
