package contact

import "fmt"

// Field identifies one input of the contact form.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldMessage
)

// AllFields lists the form inputs in display order.
var AllFields = []Field{FieldName, FieldEmail, FieldMessage}

// String returns the form input name used in markup and request bodies.
func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	case FieldMessage:
		return "message"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// ParseField maps a form input name onto a Field.
func ParseField(name string) (Field, error) {
	switch name {
	case "name":
		return FieldName, nil
	case "email":
		return FieldEmail, nil
	case "message":
		return FieldMessage, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
}

// Fields holds the visitor's current form input. Values are stored exactly as
// typed; nothing is trimmed or validated.
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Get returns the value of a single field.
func (f Fields) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldMessage:
		return f.Message
	default:
		return ""
	}
}

// With returns a copy of f with one field overwritten.
func (f Fields) With(field Field, value string) Fields {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldMessage:
		f.Message = value
	}
	return f
}

// IsZero reports whether every field is empty.
func (f Fields) IsZero() bool {
	return f == Fields{}
}
