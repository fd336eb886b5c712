package rustdoc

// Entry is one implementer of the std Error trait as listed on the docs
// page: a ::-joined package path plus the bare type name. Href keeps the raw
// link target for diagnostics.
type Entry struct {
	Package string
	Name    string
	Href    string
}

func (e Entry) QualifiedName() string {
	return e.Package + "::" + e.Name
}
