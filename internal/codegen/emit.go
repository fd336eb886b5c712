package codegen

import (
	"fmt"
	"os"
	"strings"

	"github.com/brogergvhs/errgen/internal/rustdoc"
)

// Generator renders the Rust glue file: one use line, one extension-trait
// impl and one From impl per entry, in discovery order.
type Generator struct {
	TraitName   string
	WrapperType string
	OutputPath  string
}

// Render produces the full file content; the same entries render to
// byte-identical output.
func (g Generator) Render(entries []rustdoc.Entry) string {
	var b strings.Builder

	fmt.Fprintf(&b, `// Generated code, DO NOT MODIFY!
// This file contains the implementation of the %[1]s
// trait for most of the standard library errors as well as the
// implementation of the From trait for the %[2]s struct
// to support the same standard library errors.

`, g.TraitName, g.WrapperType)

	for _, e := range entries {
		fmt.Fprintf(&b, "use %s::%s;\n", e.Package, e.Name)
	}
	fmt.Fprintf(&b, "use crate::{%s, %s};\n\n", g.TraitName, g.WrapperType)

	for _, e := range entries {
		fmt.Fprintf(&b, `impl %s for %s {
    fn error_type(&self) -> &str {
        "%s"
    }
}
`, g.TraitName, e.Name, e.QualifiedName())
	}

	for _, e := range entries {
		fmt.Fprintf(&b, `impl From<%[2]s> for %[1]s {
    fn from(e: %[2]s) -> Self {
        %[1]s::new(e)
    }
}
`, g.WrapperType, e.Name)
	}

	return b.String()
}

// Write replaces whatever currently sits at the output path. The write is a
// plain single WriteFile, not a temp-and-rename; the caller guards against
// interrupts mid-write.
func (g Generator) Write(entries []rustdoc.Entry) error {
	fmt.Printf("found %d valid errors. Beginning code generation to %s\n", len(entries), g.OutputPath)

	if _, err := os.Stat(g.OutputPath); err == nil {
		if err := os.Remove(g.OutputPath); err != nil {
			return fmt.Errorf("cannot remove previous output: %w", err)
		}
	}

	return os.WriteFile(g.OutputPath, []byte(g.Render(entries)), 0644)
}
