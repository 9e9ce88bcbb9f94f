package litters

import "time"

// Litter es un evento de cría: madre + padre + fecha. Las crías son perros
// propios que apuntan a la camada vía Dog.LitterID; se listan consultando el
// repositorio de perros.
type Litter struct {
	ID        string
	BirthDate time.Time
	MotherID  string
	FatherID  string

	CreatedAt time.Time
}
