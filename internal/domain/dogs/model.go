package dogs

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sex define el sexo de un perro.
// @Enum MALE, FEMALE
type Sex string

const (
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
)

func ValidSex(s Sex) bool {
	return s == SexMale || s == SexFemale
}

// Status define la situación del perro dentro del criadero.
// @Enum AVAILABLE, RESERVED, SOLD, BREEDING_STOCK, UNAVAILABLE
type Status string

const (
	StatusAvailable     Status = "AVAILABLE"
	StatusReserved      Status = "RESERVED"
	StatusSold          Status = "SOLD"
	StatusBreedingStock Status = "BREEDING_STOCK" // matriz/padreador que queda en el criadero
	StatusUnavailable   Status = "UNAVAILABLE"    // tratamiento médico u otros casos
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusSold, StatusBreedingStock, StatusUnavailable:
		return true
	}
	return false
}

// Dog es un perro registrado en el criadero. Las relaciones (tutor, padres,
// camada) son referencias por id; el lado inverso se resuelve consultando el
// repositorio, nunca con punteros en memoria.
type Dog struct {
	ID   string
	Name string
	Sex  Sex

	Breed     string
	BirthDate time.Time
	Status    Status

	TutorID  *string
	MotherID *string
	FatherID *string
	LitterID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expense es un gasto atribuido a un perro. No existe sin su perro.
type Expense struct {
	ID          string
	DogID       string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
}
