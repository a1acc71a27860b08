package dom

// Attr is one name/value pair from an element's start tag.
// https://dom.spec.whatwg.org/#attr
type Attr struct {
	Namespace string
	Name      string
	Value     string
}

// QualifiedName is Name prefixed with the namespace for foreign attributes,
// e.g. "xlink:href".
func (a Attr) QualifiedName() string {
	if a.Namespace == "" {
		return a.Name
	}
	return a.Namespace + ":" + a.Name
}
