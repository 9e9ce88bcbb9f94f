package dogs

import (
	"encoding/json"
	"time"
)

// FieldError señala un campo inválido dentro de un PATCH.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return "field " + e.Field + ": " + e.Reason
}

// Ref distingue "no enviado" de "enviado como null" para campos de
// referencia. Present=true con Value=nil significa limpiar la referencia.
type Ref struct {
	Present bool
	Value   *string
}

// Patch es la actualización parcial de un perro: solo los campos presentes
// se tocan. Reemplaza el PATCH por mapa dinámico con una whitelist tipada.
type Patch struct {
	Name      *string
	Breed     *string
	Sex       *Sex
	Status    *Status
	BirthDate *time.Time
	TutorID   Ref
	MotherID  Ref
	FatherID  Ref
}

// ParsePatch convierte el JSON crudo del PATCH en un Patch tipado. Campos
// fuera de la whitelist o con tipo incompatible devuelven FieldError
// nombrando al campo ofensor.
func ParsePatch(raw map[string]json.RawMessage) (Patch, error) {
	var p Patch

	for field, value := range raw {
		switch field {
		case "name":
			s, err := asString(value)
			if err != nil {
				return Patch{}, &FieldError{Field: field, Reason: "must be a string"}
			}
			p.Name = &s
		case "breed":
			s, err := asString(value)
			if err != nil {
				return Patch{}, &FieldError{Field: field, Reason: "must be a string"}
			}
			p.Breed = &s
		case "sex":
			s, err := asString(value)
			if err != nil {
				return Patch{}, &FieldError{Field: field, Reason: "must be a string"}
			}
			sex := Sex(s)
			if !ValidSex(sex) {
				return Patch{}, &FieldError{Field: field, Reason: "must be MALE or FEMALE"}
			}
			p.Sex = &sex
		case "status":
			s, err := asString(value)
			if err != nil {
				return Patch{}, &FieldError{Field: field, Reason: "must be a string"}
			}
			st := Status(s)
			if !ValidStatus(st) {
				return Patch{}, &FieldError{Field: field, Reason: "is not a valid status"}
			}
			p.Status = &st
		case "birth_date":
			s, err := asString(value)
			if err != nil {
				return Patch{}, &FieldError{Field: field, Reason: "must be YYYY-MM-DD"}
			}
			t, err := time.Parse("2006-01-02", s)
			if err != nil {
				return Patch{}, &FieldError{Field: field, Reason: "must be YYYY-MM-DD"}
			}
			p.BirthDate = &t
		case "tutor_id":
			ref, err := asRef(value)
			if err != nil {
				return Patch{}, &FieldError{Field: field, Reason: "must be an id string or null"}
			}
			p.TutorID = ref
		case "mother_id":
			ref, err := asRef(value)
			if err != nil {
				return Patch{}, &FieldError{Field: field, Reason: "must be an id string or null"}
			}
			p.MotherID = ref
		case "father_id":
			ref, err := asRef(value)
			if err != nil {
				return Patch{}, &FieldError{Field: field, Reason: "must be an id string or null"}
			}
			p.FatherID = ref
		default:
			return Patch{}, &FieldError{Field: field, Reason: "unknown field"}
		}
	}

	return p, nil
}

func asString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}
	return s, nil
}

func asRef(raw json.RawMessage) (Ref, error) {
	if string(raw) == "null" {
		return Ref{Present: true, Value: nil}, nil
	}
	s, err := asString(raw)
	if err != nil {
		return Ref{}, err
	}
	return Ref{Present: true, Value: &s}, nil
}
