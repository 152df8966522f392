package models

// FieldType is the declared type of a schema field.
type FieldType string

const (
	// FieldPercentage marks an achievement percentage column.
	FieldPercentage FieldType = "percentage"
	// FieldValue marks an absolute value column.
	FieldValue FieldType = "value"
	// FieldCategory marks a categorical column.
	FieldCategory FieldType = "category"
)

// Field is one named column in a group layout.
type Field struct {
	// Name is the field identifier (e.g., "Conexao_105").
	Name string `json:"name" yaml:"name"`
	// Column is the lettered column label (e.g., "AB").
	Column string `json:"column" yaml:"column"`
	// Type is the declared field type.
	Type FieldType `json:"type" yaml:"type"`
}

// GroupSchema describes where a mobilizer group keeps its achievement values.
type GroupSchema struct {
	// Name is the group name.
	Name string `json:"name" yaml:"name"`
	// Fields lists the known fields in declaration order.
	Fields []Field `json:"fields" yaml:"fields"`
	// Preferred is the name of the preferred ranking field.
	Preferred string `json:"preferred" yaml:"preferred"`
	// ScanRange is an optional contiguous column run (e.g., "S:U") scanned
	// instead of the ranking field's single column.
	ScanRange string `json:"scan_range,omitempty" yaml:"scan_range,omitempty"`
}

// RankingField returns the preferred field, or the first percentage field
// when the preferred one is not declared.
func (g GroupSchema) RankingField() (Field, bool) {
	for _, f := range g.Fields {
		if f.Name == g.Preferred {
			return f, true
		}
	}
	for _, f := range g.Fields {
		if f.Type == FieldPercentage {
			return f, true
		}
	}
	return Field{}, false
}
