package models

import "time"

type Enrollment struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	CourseID   int       `json:"course_id"`
	Status     string    `json:"status"` // active, completed, dropped
	EnrolledAt time.Time `json:"enrolled_at"`
}

// Progress tracks one user's advancement through one course. One instance
// per enrollment, created right after enrolling.
type Progress struct {
	ID                int              `json:"id"`
	UserID            int              `json:"user_id"`
	CourseID          int              `json:"course_id"`
	OverallCompletion float64          `json:"overall_completion"` // 0-100
	TotalTimeSpent    float64          `json:"total_time_spent"`   // minutes
	Status            string           `json:"status"`             // not_started, in_progress, completed
	ProgressRecords   []ProgressRecord `json:"progress_records"`
}

type ProgressRecord struct {
	ID          int        `json:"id"`
	ModuleID    int        `json:"module_id"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

// DefaultProgress is the safe substitute rendered when the progress service
// has no record for an enrollment yet.
func DefaultProgress(userID, courseID int) *Progress {
	return &Progress{
		UserID:          userID,
		CourseID:        courseID,
		Status:          TaskStatusNotStarted,
		ProgressRecords: []ProgressRecord{},
	}
}

const (
	TaskStatusNotStarted = "not_started"
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusOverdue    = "overdue"
)

type Task struct {
	ID          int        `json:"id"`
	CourseID    int        `json:"course_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"` // high, medium, low
	Points      int        `json:"points"`
	DueDate     *time.Time `json:"due_date"`
	// UserStatus is relative to the requesting user: pending, in_progress,
	// completed. Overdue is derived, see EffectiveStatus.
	UserStatus  string     `json:"user_status"`
	CompletedAt *time.Time `json:"completed_at"`
}

// EffectiveStatus returns the status to display at instant now. A task past
// its due date that has not been completed shows as overdue regardless of
// where it sits in the pending/in_progress chain. Submission existence is a
// separate overlay and does not feed into this.
func (t Task) EffectiveStatus(now time.Time) string {
	status := t.UserStatus
	if status == "" {
		status = TaskStatusPending
	}
	if status != TaskStatusCompleted && t.DueDate != nil && now.After(*t.DueDate) {
		return TaskStatusOverdue
	}
	return status
}

type Submission struct {
	ID                 int        `json:"id"`
	UserID             int        `json:"user_id"`
	TaskID             int        `json:"task_id"`
	CourseID           int        `json:"course_id"`
	SubmissionText     string     `json:"submission_text"`
	SubmissionFileURL  string     `json:"submission_file_url"`
	SubmissionFileName string     `json:"submission_file_name"`
	Grade              *float64   `json:"grade"`
	Feedback           string     `json:"feedback"`
	SubmittedAt        time.Time  `json:"submitted_at"`
	GradedAt           *time.Time `json:"graded_at"`
}
