package main

import (
	"bufio"
	"context"
	"strings"

	"github.com/desertthunder/registrar/internal/formatter"
	"github.com/desertthunder/registrar/internal/models"
	"github.com/desertthunder/registrar/internal/registrar"
	"github.com/urfave/cli/v3"
)

const (
	msgInvalidChoice = "Invalid choice. Please select a valid option."
	msgGoodbye       = "Exiting the system. Goodbye!"
)

// menuSession reads operator input line by line for one [Runner.Menu] run.
type menuSession struct {
	r       *Runner
	scanner *bufio.Scanner
}

// Menu runs the numbered text menu until the operator exits or input ends.
//
// Operation failures are printed and the loop continues.
func (r *Runner) Menu(ctx context.Context, cmd *cli.Command) error {
	s := &menuSession{r: r, scanner: bufio.NewScanner(r.input)}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		choice, ok := s.prompt("Enter your choice: ")
		if !ok {
			r.writePlainln(msgGoodbye)
			return s.scanner.Err()
		}

		switch choice {
		case "1":
			s.displayCourses()
		case "2":
			ok = s.enroll(models.ActionRegister)
		case "3":
			ok = s.enroll(models.ActionDrop)
		case "4":
			ok = s.displayStudent()
		case "5":
			s.displayActivity()
		case "6":
			r.writePlain("%s\n", msgGoodbye)
			return nil
		default:
			r.writePlain("%s\n", msgInvalidChoice)
		}

		if !ok {
			r.writePlainln(msgGoodbye)
			return s.scanner.Err()
		}
	}
}

func (s *menuSession) printMenu() {
	s.r.writePlainln("=== Course Management System ===")
	s.r.writePlain("1. View Available Courses\n")
	s.r.writePlain("2. Register Student for a Course\n")
	s.r.writePlain("3. Drop a Course\n")
	s.r.writePlain("4. View Student Details\n")
	s.r.writePlain("5. View Activity Log\n")
	s.r.writePlain("6. Exit\n")
}

// prompt writes label and returns the next trimmed input line. ok is false at end of input.
func (s *menuSession) prompt(label string) (string, bool) {
	s.r.writePlain("%s", label)
	if !s.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.scanner.Text()), true
}

func (s *menuSession) displayCourses() {
	s.r.writePlainln("=== Available Courses ===")
	s.r.writeBytes(formatter.CoursesToText(s.r.registrar.ListCourses()))
}

// enroll asks for a student, then a course, reporting an unknown student before asking for the course.
func (s *menuSession) enroll(action models.Action) bool {
	studentID, ok := s.prompt("Enter Student ID: ")
	if !ok {
		return false
	}
	if _, err := s.r.registrar.FindStudent(studentID); err != nil {
		s.r.writePlain("%s\n", registrar.MsgStudentMissing)
		return true
	}

	label := "Enter Course Code to Register: "
	if action == models.ActionDrop {
		label = "Enter Course Code to Drop: "
	}
	courseCode, ok := s.prompt(label)
	if !ok {
		return false
	}

	var err error
	if action == models.ActionDrop {
		err = s.r.registrar.Drop(studentID, courseCode)
	} else {
		err = s.r.registrar.Register(studentID, courseCode)
	}
	s.r.writePlain("%s\n", registrar.Outcome(action, err))
	return true
}

func (s *menuSession) displayStudent() bool {
	studentID, ok := s.prompt("Enter Student ID: ")
	if !ok {
		return false
	}

	details, err := s.r.registrar.DescribeStudent(studentID)
	if err != nil {
		s.r.writePlain("%s\n", registrar.MsgStudentMissing)
		return true
	}

	s.r.writePlainln("=== Student Details ===")
	s.r.writeBytes(formatter.StudentToText(details))
	return true
}

func (s *menuSession) displayActivity() {
	records, err := s.r.activityRecords("", "", 0)
	if err != nil {
		s.r.logger.Warn("failed to read activity log", "error", err)
		s.r.writePlain("Activity log unavailable.\n")
		return
	}

	s.r.writePlainln("=== Activity Log ===")
	s.r.writeBytes(formatter.ActivitiesToText(records))
}
