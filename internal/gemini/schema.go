package gemini

// Schema type names as the generateContent API expects them.
const (
	TypeObject = "OBJECT"
	TypeArray  = "ARRAY"
	TypeString = "STRING"
)

// Schema is the structured-output contract attached to a request. Only the
// subset of the API's schema language used by this service is modeled.
type Schema struct {
	Type             string             `json:"type"`
	Properties       map[string]*Schema `json:"properties,omitempty"`
	Items            *Schema            `json:"items,omitempty"`
	PropertyOrdering []string           `json:"propertyOrdering,omitempty"`
}

func StringSchema() *Schema {
	return &Schema{Type: TypeString}
}

func ArrayOf(items *Schema) *Schema {
	return &Schema{Type: TypeArray, Items: items}
}

func ObjectSchema(properties map[string]*Schema, ordering ...string) *Schema {
	return &Schema{Type: TypeObject, Properties: properties, PropertyOrdering: ordering}
}
