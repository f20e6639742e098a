package room

type Type string

const (
	TypeStandard Type = "Standard"
	TypeDeluxe   Type = "Deluxe"
	TypeSuperior Type = "Superior"
)

func AllTypes() []Type {
	return []Type{TypeStandard, TypeDeluxe, TypeSuperior}
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeStandard, TypeDeluxe, TypeSuperior:
		return true
	default:
		return false
	}
}
