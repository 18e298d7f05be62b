// package models defines the data model for the course registrar
package models

import (
	"time"
)

// Model defines the base interface for all persistent models in the registrar.
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	CreatedAt() time.Time // CreatedAt returns when this model was created
	Validate() error      // Validate checks if the model's data is valid and returns an error if not
}

// Repository defines the interface for append-only data access.
// Implementations handle database interactions for specific model types.
type Repository[T Model] interface {
	Create(model T) error                      // Create inserts a new model into the database
	Get(id string) (T, error)                  // Get retrieves a model by its ID
	List(criteria map[string]any) ([]T, error) // List retrieves all models matching the given criteria
}

// CourseRecord is the display form of a [Course].
type CourseRecord struct {
	Code           string `json:"code" yaml:"code"`
	Title          string `json:"title" yaml:"title"`
	Description    string `json:"description" yaml:"description"`
	Schedule       string `json:"schedule" yaml:"schedule"`
	AvailableSlots int    `json:"available_slots" yaml:"available_slots"`
	Capacity       int    `json:"capacity" yaml:"capacity"`
}

// StudentDetails is the display form of a [Student], with course codes resolved to titles.
type StudentDetails struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Courses []string `json:"courses" yaml:"courses"`
}
