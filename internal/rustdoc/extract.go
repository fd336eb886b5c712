package rustdoc

import (
	"strings"

	"golang.org/x/net/html"
)

// The docs page precedes every implementer with one of these two text
// nodes, depending on how the impl line is rendered.
const (
	markerSpaced = " Error for "
	markerImpl   = "impl Error for "
)

type diagnostics interface {
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Extract runs a single forward pass over the page tokens. A marker text
// node flips the scan into recording mode; the anchor seen while recording
// carries the implementer's package path in its href, and the next text node
// carries the type name. Entries that fail validation are dropped silently.
func Extract(body string, log diagnostics) []Entry {
	z := html.NewTokenizer(strings.NewReader(body))

	var (
		out       []Entry
		scratch   Entry
		recording bool
	)

	for {
		switch z.Next() {
		case html.ErrorToken:
			return out

		case html.StartTagToken:
			tok := z.Token()
			if !recording || tok.Data != "a" || len(tok.Attr) == 0 {
				continue
			}
			href := pickHref(tok.Attr)
			scratch.Package = packageFromHref(href)
			scratch.Href = href

		case html.TextToken:
			text := string(z.Text())

			if text == markerSpaced || text == markerImpl {
				if recording {
					// Malformed page region: drop the half-built entry and
					// scan on from the new marker.
					if log != nil {
						log.Errorf("marker seen while already recording, dropping partial entry (href=%q)\n", scratch.Href)
					}
					scratch = Entry{}
					continue
				}
				recording = true
				scratch = Entry{}
				continue
			}

			if !recording {
				continue
			}

			scratch.Name = text
			if reason := Reason(scratch); reason == "" {
				out = append(out, scratch)
			} else if log != nil {
				log.Debugf("skipping %s: %s\n", scratch.QualifiedName(), reason)
			}

			// fresh value on every reset
			scratch = Entry{}
			recording = false
		}
	}
}

// The href is not always the first attribute on the page's anchors: with
// exactly two attributes it is the second one, otherwise the first.
func pickHref(attrs []html.Attribute) string {
	if len(attrs) == 2 {
		return attrs[1].Val
	}
	return attrs[0].Val
}

// packageFromHref turns a relative link such as
// ../../std/io/struct.Error.html into std::io. Parent-directory hops are
// skipped and the final segment is the page file, which is dropped.
func packageFromHref(href string) string {
	parts := strings.Split(href, "/")

	var b strings.Builder
	for i, part := range parts {
		if part == ".." {
			continue
		}
		if i == len(parts)-1 {
			break
		}
		b.WriteString(part)
		b.WriteString("::")
	}

	return strings.TrimSuffix(b.String(), "::")
}
