// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/desertthunder/registrar/internal/models"
)

// RecordedCall is one call captured by [MockRecorder].
type RecordedCall struct {
	Action     models.Action
	StudentID  string
	CourseCode string
	Err        error
}

// MockRecorder is a test double for registrar.Recorder. Set Fail to make every call return an error.
type MockRecorder struct {
	mu    sync.Mutex
	calls []RecordedCall
	Fail  bool
}

func (m *MockRecorder) Record(action models.Action, studentID, courseCode string, err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, RecordedCall{Action: action, StudentID: studentID, CourseCode: courseCode, Err: err})
	if m.Fail {
		return errors.New("record failed")
	}
	return nil
}

// Calls returns a copy of the captured calls.
func (m *MockRecorder) Calls() []RecordedCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]RecordedCall(nil), m.calls...)
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites int, target io.Writer) *LimitedWriter {
	return &LimitedWriter{maxWrites: maxWrites, target: target}
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
