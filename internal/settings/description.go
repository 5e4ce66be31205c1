package settings

// Field is one entry of a settings description.
type Field struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Value       Value  `json:"value"`
}

// NewField creates a field.
func NewField(name, description string, value Value) Field {
	return Field{Name: name, Description: description, Value: value}
}

// Description is the ordered list of a component's settings. A field's
// position is the index used to assign it.
type Description struct {
	Fields []Field `json:"fields"`
}

// WithFields creates a description from fields in order.
func WithFields(fields ...Field) Description {
	return Description{Fields: fields}
}
