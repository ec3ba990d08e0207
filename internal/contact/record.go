package contact

import (
	"fmt"
	"strings"
)

// Field identifies one of the six record fields.
type Field int

const (
	FieldSurname Field = iota
	FieldFirstName
	FieldPatronymic
	FieldOrganization
	FieldWorkPhone
	FieldPersonalPhone
)

// Fields lists every field in serialization order.
var Fields = []Field{
	FieldSurname,
	FieldFirstName,
	FieldPatronymic,
	FieldOrganization,
	FieldWorkPhone,
	FieldPersonalPhone,
}

// headers are the literal column names written to the first row of the file.
var headers = [...]string{
	FieldSurname:       "Фамилия",
	FieldFirstName:     "Имя",
	FieldPatronymic:    "Отчество",
	FieldOrganization:  "Организация",
	FieldWorkPhone:     "Рабочий телефон",
	FieldPersonalPhone: "Личный телефон",
}

// Header returns the column name for the field.
func (f Field) Header() string {
	if f < 0 || int(f) >= len(headers) {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return headers[f]
}

// String implements fmt.Stringer.
func (f Field) String() string {
	return f.Header()
}

// Header returns the header row in field order.
func Header() []string {
	out := make([]string, len(Fields))
	for i, f := range Fields {
		out[i] = f.Header()
	}
	return out
}

// Record is a single directory entry.
type Record struct {
	Surname       string `json:"surname"        yaml:"surname"        validate:"required,alphaunicode"`
	FirstName     string `json:"first_name"     yaml:"first_name"     validate:"required,alphaunicode"`
	Patronymic    string `json:"patronymic"     yaml:"patronymic"     validate:"required,alphaunicode"`
	Organization  string `json:"organization"   yaml:"organization"`
	WorkPhone     string `json:"work_phone"     yaml:"work_phone"     validate:"required,phone"`
	PersonalPhone string `json:"personal_phone" yaml:"personal_phone" validate:"required,phone"`
}

// Get returns the value of field f.
func (r Record) Get(f Field) string {
	switch f {
	case FieldSurname:
		return r.Surname
	case FieldFirstName:
		return r.FirstName
	case FieldPatronymic:
		return r.Patronymic
	case FieldOrganization:
		return r.Organization
	case FieldWorkPhone:
		return r.WorkPhone
	case FieldPersonalPhone:
		return r.PersonalPhone
	}
	return ""
}

// Set assigns v to field f. Unknown fields are ignored.
func (r *Record) Set(f Field, v string) {
	switch f {
	case FieldSurname:
		r.Surname = v
	case FieldFirstName:
		r.FirstName = v
	case FieldPatronymic:
		r.Patronymic = v
	case FieldOrganization:
		r.Organization = v
	case FieldWorkPhone:
		r.WorkPhone = v
	case FieldPersonalPhone:
		r.PersonalPhone = v
	}
}

// Values returns the field values in serialization order.
func (r Record) Values() []string {
	out := make([]string, len(Fields))
	for i, f := range Fields {
		out[i] = r.Get(f)
	}
	return out
}

// FromValues builds a Record from columns in serialization order.
// Columns are mapped by position: missing trailing columns stay empty and
// extra columns are dropped.
func FromValues(values []string) Record {
	var r Record
	for i, f := range Fields {
		if i >= len(values) {
			break
		}
		r.Set(f, values[i])
	}
	return r
}

// String renders the record as "Header: value" pairs in field order.
func (r Record) String() string {
	parts := make([]string, len(Fields))
	for i, f := range Fields {
		parts[i] = f.Header() + ": " + r.Get(f)
	}
	return strings.Join(parts, ", ")
}
