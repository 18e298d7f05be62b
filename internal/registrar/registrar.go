package registrar

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/registrar/internal/models"
	"github.com/desertthunder/registrar/internal/shared"
)

// Recorder receives one call per register/drop attempt. A nil err means the operation succeeded.
type Recorder interface {
	Record(action models.Action, studentID, courseCode string, err error) error
}

// Options contains dependencies for creating a [Registrar].
type Options struct {
	Logger   *log.Logger
	Recorder Recorder
}

// Registrar owns the Catalog (course code → Course) and the Roster (student id → Student).
type Registrar struct {
	mu           sync.Mutex
	courses      map[string]*models.Course
	courseOrder  []string
	students     map[string]*models.Student
	studentOrder []string
	recorder     Recorder
	logger       *log.Logger
}

// New creates an empty [Registrar].
func New(opts Options) *Registrar {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &Registrar{
		courses:  make(map[string]*models.Course),
		students: make(map[string]*models.Student),
		recorder: opts.Recorder,
		logger:   shared.WithLogger(opts.Logger, "component", "registrar"),
	}
}

// SetLogger replaces the registrar's logger. Not safe to call while operations are in flight.
func (r *Registrar) SetLogger(logger *log.Logger) {
	r.logger = shared.WithLogger(logger, "component", "registrar")
}

// FromConfig creates a [Registrar] seeded with the catalog and roster in cfg, in file order.
func FromConfig(cfg shared.CatalogConfig, opts Options) (*Registrar, error) {
	if err := shared.Validate(cfg); err != nil {
		return nil, err
	}

	r := New(opts)
	for _, seed := range cfg.Courses {
		course := models.NewCourse(seed.Code, seed.Title, seed.Description, seed.Schedule, seed.Capacity)
		if err := r.AddCourse(course); err != nil {
			return nil, err
		}
	}
	for _, seed := range cfg.Students {
		if err := r.AddStudent(models.NewStudent(seed.ID, seed.Name)); err != nil {
			return nil, err
		}
	}

	r.logger.Debug("seeded", "courses", len(cfg.Courses), "students", len(cfg.Students))
	return r, nil
}

// AddCourse places a course in the catalog. Codes must be unique.
func (r *Registrar) AddCourse(course *models.Course) error {
	if err := course.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.courses[course.Code()]; exists {
		return fmt.Errorf("%w: %s", shared.ErrDuplicateCourse, course.Code())
	}
	r.courses[course.Code()] = course
	r.courseOrder = append(r.courseOrder, course.Code())
	return nil
}

// AddStudent places a student on the roster. IDs must be unique and any codes the student already
// holds must exist in the catalog.
func (r *Registrar) AddStudent(student *models.Student) error {
	if err := student.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.students[student.ID()]; exists {
		return fmt.Errorf("%w: %s", shared.ErrDuplicateStudent, student.ID())
	}
	for _, code := range student.Courses() {
		if _, ok := r.courses[code]; !ok {
			return fmt.Errorf("%w: %s", shared.ErrCourseNotFound, code)
		}
	}
	r.students[student.ID()] = student
	r.studentOrder = append(r.studentOrder, student.ID())
	return nil
}

// FindCourse returns a copy of the course with the given code.
func (r *Registrar) FindCourse(code string) (models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	course, ok := r.courses[code]
	if !ok {
		return models.Course{}, fmt.Errorf("%w: %s", shared.ErrCourseNotFound, code)
	}
	return course.Clone(), nil
}

// FindStudent returns a copy of the student with the given id.
func (r *Registrar) FindStudent(id string) (models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	student, ok := r.students[id]
	if !ok {
		return models.Student{}, fmt.Errorf("%w: %s", shared.ErrStudentNotFound, id)
	}
	return student.Clone(), nil
}

// Register enrolls the student in the course.
func (r *Registrar) Register(studentID, courseCode string) error {
	err := r.apply(studentID, courseCode, func(s *models.Student, c *models.Course) error {
		if err := s.RegisterCourse(c); err != nil {
			return fmt.Errorf("%w: %w", shared.ErrRegistrationFailed, err)
		}
		return nil
	})

	r.record(models.ActionRegister, studentID, courseCode, err)
	return err
}

// Drop removes the student from the course.
func (r *Registrar) Drop(studentID, courseCode string) error {
	err := r.apply(studentID, courseCode, func(s *models.Student, c *models.Course) error {
		if err := s.DropCourse(c); err != nil {
			return fmt.Errorf("%w: %w", shared.ErrDropFailed, err)
		}
		return nil
	})

	r.record(models.ActionDrop, studentID, courseCode, err)
	return err
}

// ListCourses returns display records for the whole catalog in insertion order.
func (r *Registrar) ListCourses() []models.CourseRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := make([]models.CourseRecord, 0, len(r.courseOrder))
	for _, code := range r.courseOrder {
		records = append(records, r.courses[code].Record())
	}
	return records
}

// DescribeStudent returns the student with registered course titles in registration order.
func (r *Registrar) DescribeStudent(id string) (*models.StudentDetails, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	student, ok := r.students[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", shared.ErrStudentNotFound, id)
	}

	codes := student.Courses()
	details := &models.StudentDetails{
		ID:      student.ID(),
		Name:    student.Name(),
		Courses: make([]string, 0, len(codes)),
	}
	for _, code := range codes {
		details.Courses = append(details.Courses, r.courses[code].Title())
	}
	return details, nil
}

// Check verifies the enrollment invariants over the whole catalog and roster.
func (r *Registrar) Check() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	holders := make(map[string]int, len(r.courses))
	for _, id := range r.studentOrder {
		student := r.students[id]
		if err := student.Validate(); err != nil {
			return err
		}
		for _, code := range student.Courses() {
			if _, ok := r.courses[code]; !ok {
				return fmt.Errorf("%w: student %s holds unknown course %s", shared.ErrInvariantViolated, id, code)
			}
			holders[code]++
		}
	}

	for _, code := range r.courseOrder {
		course := r.courses[code]
		if err := course.Validate(); err != nil {
			return err
		}
		if course.Enrolled() != holders[code] {
			return fmt.Errorf("%w: course %s counts %d enrolled but %d students hold it",
				shared.ErrInvariantViolated, code, course.Enrolled(), holders[code])
		}
	}
	return nil
}

// apply resolves both identifiers and runs op in one critical section.
func (r *Registrar) apply(studentID, courseCode string, op func(*models.Student, *models.Course) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	student, ok := r.students[studentID]
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrStudentNotFound, studentID)
	}
	course, ok := r.courses[courseCode]
	if !ok {
		return fmt.Errorf("%w: %s", shared.ErrCourseNotFound, courseCode)
	}
	return op(student, course)
}

func (r *Registrar) record(action models.Action, studentID, courseCode string, opErr error) {
	if opErr != nil {
		r.logger.Debug("rejected", "action", action, "student", studentID, "course", courseCode, "error", opErr)
	} else {
		r.logger.Debug(string(action), "student", studentID, "course", courseCode)
	}

	if r.recorder == nil || studentID == "" || courseCode == "" {
		return
	}
	if err := r.recorder.Record(action, studentID, courseCode, opErr); err != nil {
		r.logger.Warn("failed to record activity", "action", action, "error", err)
	}
}
