package rustdoc

import "strings"

// APIs that are still unstable and cannot be referenced from stable code.
var unstableAPIs = map[string]struct{}{
	"std::alloc::AllocErr":             {},
	"std::alloc::CannotReallocInPlace": {},
	"std::char::CharTryFromError":      {},
	"std::num::TryFromIntError":        {},
}

// Errors that take generic type parameters; a single non-generic impl block
// cannot cover them.
var genericErrors = map[string]struct{}{
	"std::sync::TryLockError":       {},
	"std::sync::PoisonError":        {},
	"std::sync::mpsc::TrySendError": {},
	"std::sync::mpsc::SendError":    {},
	"std::io::IntoInnerError":       {},
}

// Box appears on the page because it documents the Error impl for boxed
// trait objects, not because Box is an error type.
const boxedTraitObject = "Box"

// Reason reports why an entry must be excluded, or "" to keep it.
func Reason(e Entry) string {
	switch {
	case e.Name == boxedTraitObject:
		return "boxed trait object, not an error type"
	case e.Name == "":
		return "missing type name"
	case strings.Contains(e.Package, ".html"):
		return "package path is a parse artifact"
	case e.Package == "":
		return "empty package path"
	}

	if _, ok := unstableAPIs[e.QualifiedName()]; ok {
		return "unstable API"
	}
	if _, ok := genericErrors[e.QualifiedName()]; ok {
		return "requires generic type parameters"
	}

	return ""
}

func Keep(e Entry) bool {
	return Reason(e) == ""
}
