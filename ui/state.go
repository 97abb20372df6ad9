package ui

import "fmt"

// ModalKind enumerates the overlay dialogs. Exactly one may be open at a
// time; State enforces that instead of leaving it as a convention.
type ModalKind string

const (
	ModalNone          ModalKind = ""
	ModalLogin         ModalKind = "login"
	ModalRegister      ModalKind = "register"
	ModalCourse        ModalKind = "course"
	ModalProfile       ModalKind = "profile"
	ModalDeleteConfirm ModalKind = "deleteConfirm"
)

// ParseModalKind validates a modal name coming off the wire.
func ParseModalKind(s string) (ModalKind, error) {
	switch k := ModalKind(s); k {
	case ModalLogin, ModalRegister, ModalCourse, ModalProfile, ModalDeleteConfirm:
		return k, nil
	}
	return ModalNone, fmt.Errorf("unknown modal %q", s)
}

// ContentView is the two-state switch inside the course modal.
type ContentView string

const (
	ViewModules ContentView = "modules"
	ViewTasks   ContentView = "tasks"
)

func ParseContentView(s string) (ContentView, error) {
	switch v := ContentView(s); v {
	case ViewModules, ViewTasks:
		return v, nil
	}
	return ViewModules, fmt.Errorf("unknown content view %q", s)
}

// FilterAll is the sentinel that bypasses category filtering.
const FilterAll = "all"

// State is the transient UI state of one browser session: which modal is
// showing, which sub-view of the course modal is active, and the catalog
// filter. It is a plain value; the session layer owns synchronization.
type State struct {
	Modal       ModalKind   `json:"modal"`
	ContentView ContentView `json:"content_view"`
	Filter      string      `json:"filter"`
	// CourseID is the course shown in the course modal, zero otherwise.
	CourseID int `json:"course_id,omitempty"`
	// ModuleID is set while the course modal shows a single module's
	// detail instead of the content tabs.
	ModuleID int `json:"module_id,omitempty"`
}

func NewState() State {
	return State{
		Modal:       ModalNone,
		ContentView: ViewModules,
		Filter:      FilterAll,
	}
}

// OpenModal closes whatever was showing and opens kind. Opening the course
// modal resets the content view to modules, its default tab.
func (s *State) OpenModal(kind ModalKind) {
	s.CloseModal()
	s.Modal = kind
	if kind == ModalCourse {
		s.ContentView = ViewModules
	}
}

// OpenCourseModal opens the course modal focused on one course.
func (s *State) OpenCourseModal(courseID int) {
	s.OpenModal(ModalCourse)
	s.CourseID = courseID
}

// OpenModuleDetail shows one module inside the course modal. Going back to
// the progress view happens by reopening the course modal, which clears it.
func (s *State) OpenModuleDetail(courseID, moduleID int) {
	s.OpenModal(ModalCourse)
	s.CourseID = courseID
	s.ModuleID = moduleID
}

func (s *State) CloseModal() {
	s.Modal = ModalNone
	s.CourseID = 0
	s.ModuleID = 0
}

// SwitchContentView toggles between the modules and tasks sub-views. Only
// meaningful while the course modal is open, but harmless otherwise.
func (s *State) SwitchContentView(v ContentView) {
	s.ContentView = v
}

func (s *State) SetFilter(category string) {
	s.Filter = category
}
