package models

// Field is the fixed column position of a submission field.
type Field int

const (
	FieldName Field = iota
	FieldAffiliation
	FieldRole
	FieldEmail
	FieldSessionName
	FieldSessionDescription
	FieldTitle
	FieldAbstract
	FieldAbstractURL
	FieldVideoURL

	// FieldCount is the number of fields in the operating range.
	FieldCount
)

// Record is one data row mapped onto the ten submission fields.
// Values are trimmed.
type Record [FieldCount]string

// Get returns the value of field f.
func (r Record) Get(f Field) string {
	return r[f]
}

// Name returns the author name.
func (r Record) Name() string { return r[FieldName] }

// Role returns the author role as written.
func (r Record) Role() string { return r[FieldRole] }

// Session returns the session name.
func (r Record) Session() string { return r[FieldSessionName] }

// Title returns the presentation title.
func (r Record) Title() string { return r[FieldTitle] }
