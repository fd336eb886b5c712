package rustdoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReason(t *testing.T) {
	cases := []struct {
		name   string
		entry  Entry
		reason string
	}{
		{
			name:   "valid entry kept",
			entry:  Entry{Package: "std::io", Name: "Error"},
			reason: "",
		},
		{
			name:   "valid nested package kept",
			entry:  Entry{Package: "std::sync::mpsc", Name: "RecvError"},
			reason: "",
		},
		{
			name:   "box excluded regardless of package",
			entry:  Entry{Package: "std::boxed", Name: "Box"},
			reason: "boxed trait object, not an error type",
		},
		{
			name:   "missing name",
			entry:  Entry{Package: "std::io"},
			reason: "missing type name",
		},
		{
			name:   "html artifact in package",
			entry:  Entry{Package: "nav.html::std::io", Name: "Error"},
			reason: "package path is a parse artifact",
		},
		{
			name:   "empty package",
			entry:  Entry{Name: "Error"},
			reason: "empty package path",
		},
		{
			name:   "unstable API",
			entry:  Entry{Package: "std::num", Name: "TryFromIntError"},
			reason: "unstable API",
		},
		{
			name:   "generic error",
			entry:  Entry{Package: "std::sync", Name: "PoisonError"},
			reason: "requires generic type parameters",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.reason, Reason(tc.entry))
			assert.Equal(t, tc.reason == "", Keep(tc.entry))
		})
	}
}

func TestDenylistsCoverKnownEntries(t *testing.T) {
	unstable := []string{
		"std::alloc::AllocErr",
		"std::alloc::CannotReallocInPlace",
		"std::char::CharTryFromError",
		"std::num::TryFromIntError",
	}
	generic := []string{
		"std::sync::TryLockError",
		"std::sync::PoisonError",
		"std::sync::mpsc::TrySendError",
		"std::sync::mpsc::SendError",
		"std::io::IntoInnerError",
	}

	for _, q := range append(unstable, generic...) {
		i := strings.LastIndex(q, "::")
		e := Entry{Package: q[:i], Name: q[i+2:]}
		assert.False(t, Keep(e), "expected %s to be rejected", q)
	}
}
