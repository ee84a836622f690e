package parser

// Attr is a single tag attribute.
type Attr struct {
	Name  string
	Value string
}

// Attributes is the ordered attribute list of a tag, in document order.
type Attributes []Attr

// Get returns the value of the last attribute with the given name.
func (a Attributes) Get(name string) (string, bool) {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i].Name == name {
			return a[i].Value, true
		}
	}
	return "", false
}
