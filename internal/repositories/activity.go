package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/registrar/internal/models"
	"github.com/desertthunder/registrar/internal/shared"
)

var _ models.Repository[*models.Activity] = (*ActivityRepository)(nil)

// ErrActivityNotFound is returned by [ActivityRepository.Get] for unknown IDs.
var ErrActivityNotFound = errors.New("activity not found")

// ActivityRepository implements [models.Repository] for the [models.Activity] log.
type ActivityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new [ActivityRepository] with the given database connection
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create inserts an activity with a generated ID and the next sequence number.
func (r *ActivityRepository) Create(activity *models.Activity) error {
	sequence, err := NextSequence(r.db, "activities")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	activity.SetID(shared.GenerateID())
	activity.SetSequence(sequence)

	if err := activity.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO activities (id, sequence, action, student_id, course_code, outcome, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		activity.ID(),
		activity.Sequence(),
		string(activity.Action()),
		activity.StudentID(),
		activity.CourseCode(),
		activity.Outcome(),
		activity.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}

	return nil
}

// Get retrieves an activity by ID.
func (r *ActivityRepository) Get(id string) (*models.Activity, error) {
	query := `
		SELECT id, sequence, action, student_id, course_code, outcome, created_at
		FROM activities
		WHERE id = ?
	`

	activity, err := scanActivity(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrActivityNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query activity: %w", err)
	}
	return activity, nil
}

// List retrieves activities in sequence order.
//
// Supported criteria: "student_id" (string), "course_code" (string), "action" ([models.Action]),
// "limit" (int, most recent N entries, still returned oldest first).
func (r *ActivityRepository) List(criteria map[string]any) ([]*models.Activity, error) {
	query := `
		SELECT id, sequence, action, student_id, course_code, outcome, created_at
		FROM activities
		WHERE 1 = 1
	`
	args := []any{}

	if studentID, ok := criteria["student_id"].(string); ok && studentID != "" {
		query += " AND student_id = ?"
		args = append(args, studentID)
	}
	if courseCode, ok := criteria["course_code"].(string); ok && courseCode != "" {
		query += " AND course_code = ?"
		args = append(args, courseCode)
	}
	if action, ok := criteria["action"].(models.Action); ok && action != "" {
		query += " AND action = ?"
		args = append(args, string(action))
	}

	query += " ORDER BY sequence DESC"
	if limit, ok := criteria["limit"].(int); ok && limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	// newest-first for LIMIT, flipped back to log order
	for i, j := 0, len(activities)-1; i < j; i, j = i+1, j-1 {
		activities[i], activities[j] = activities[j], activities[i]
	}
	return activities, nil
}

// Count returns the number of logged activities.
func (r *ActivityRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM activities").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (*models.Activity, error) {
	var (
		id         string
		sequence   int
		action     string
		studentID  string
		courseCode string
		outcome    string
		createdAt  time.Time
	)

	if err := row.Scan(&id, &sequence, &action, &studentID, &courseCode, &outcome, &createdAt); err != nil {
		return nil, err
	}

	activity := models.NewActivity(sequence, models.Action(action), studentID, courseCode, nil)
	activity.SetID(id)
	activity.SetOutcome(outcome)
	activity.SetCreatedAt(createdAt)
	return activity, nil
}
