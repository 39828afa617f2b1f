package structify

import (
	"strconv"
	"strings"
)

// SchemaBuilder assembles schema text one statement at a time.
// Statements are concatenated without separators.
type SchemaBuilder struct {
	b strings.Builder
}

// NewSchemaBuilder returns an empty schema builder.
func NewSchemaBuilder() *SchemaBuilder {
	return &SchemaBuilder{}
}

// AddField appends "type name;".
func (s *SchemaBuilder) AddField(name, typeName string) *SchemaBuilder {
	s.b.WriteString(typeName)
	s.b.WriteByte(' ')
	s.b.WriteString(name)
	s.b.WriteByte(';')
	return s
}

// AddEnumField appends the inline enum statement built by e.
func (s *SchemaBuilder) AddEnumField(e *EnumFieldBuilder) *SchemaBuilder {
	s.b.WriteString(e.Build())
	return s
}

// Build returns the schema text.
func (s *SchemaBuilder) Build() string {
	return s.b.String()
}

// EnumFieldBuilder assembles an inline enum statement:
//
//	enum {A=0,B=1} int8 name;
type EnumFieldBuilder struct {
	name     string
	variants strings.Builder
	count    int
}

// NewEnumFieldBuilder returns a builder for an enum field called name.
func NewEnumFieldBuilder(name string) *EnumFieldBuilder {
	return &EnumFieldBuilder{name: name}
}

// AddVariant appends name=value.
func (e *EnumFieldBuilder) AddVariant(name string, value int) *EnumFieldBuilder {
	if e.count > 0 {
		e.variants.WriteByte(',')
	}
	e.count++
	e.variants.WriteString(name)
	e.variants.WriteByte('=')
	e.variants.WriteString(strconv.Itoa(value))
	return e
}

// Build returns the enum statement. It may be called more than once.
func (e *EnumFieldBuilder) Build() string {
	return "enum {" + e.variants.String() + "} int8 " + e.name + ";"
}
