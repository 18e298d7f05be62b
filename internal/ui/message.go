package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/registrar/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgCoursesLoaded MsgKind = iota
	MsgOperationDone
	MsgStudentLoaded
)

// operationResult carries the outcome of a register or drop attempt.
type operationResult struct {
	action     models.Action
	studentID  string
	courseCode string
	err        error
}

// studentResult carries the outcome of a student lookup.
type studentResult struct {
	details *models.StudentDetails
	err     error
}

// coursesLoadedMsg is the constructor for [MsgCoursesLoaded]
func coursesLoadedMsg(records []models.CourseRecord) Msg {
	return Msg{kind: MsgCoursesLoaded, data: records}
}

// operationDoneMsg is the constructor for [MsgOperationDone]
func operationDoneMsg(action models.Action, studentID, courseCode string, err error) Msg {
	return Msg{kind: MsgOperationDone, data: operationResult{action, studentID, courseCode, err}}
}

// studentLoadedMsg is the constructor for [MsgStudentLoaded]
func studentLoadedMsg(details *models.StudentDetails, err error) Msg {
	return Msg{kind: MsgStudentLoaded, data: studentResult{details, err}}
}

// Kind reports which member of the union m holds.
func (m Msg) Kind() MsgKind { return m.kind }
