package tutors

import "time"

// Tutor es la persona responsable de uno o más perros. La relación con los
// perros vive del lado del perro (Dog.TutorID); acá no se guarda la lista.
type Tutor struct {
	ID    string
	Name  string
	Email string
	Phone string

	CreatedAt time.Time
	UpdatedAt time.Time
}
