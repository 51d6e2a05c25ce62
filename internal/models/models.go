package models

// User is an account on the Vikunja instance
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Created  Time   `json:"created"`
	Updated  Time   `json:"updated"`
}

// DisplayName returns the full name when set, the username otherwise
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

// Project represents a Vikunja project. ParentProjectID 0 means top level.
type Project struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Identifier      string  `json:"identifier"`
	HexColor        string  `json:"hex_color"`
	ParentProjectID int64   `json:"parent_project_id"`
	Owner           *User   `json:"owner"`
	IsArchived      bool    `json:"is_archived"`
	IsFavorite      bool    `json:"is_favorite"`
	Position        float64 `json:"position"`
	Created         Time    `json:"created"`
	Updated         Time    `json:"updated"`
}

// Label can be attached to any number of tasks
type Label struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	HexColor    string `json:"hex_color"`
	CreatedBy   *User  `json:"created_by"`
	Created     Time   `json:"created"`
	Updated     Time   `json:"updated"`
}

// Comment represents a comment on a task
type Comment struct {
	ID      int64 `json:"id"`
	Author  User  `json:"author"`
	Comment HTML  `json:"comment"`
	Created Time  `json:"created"`
	Updated Time  `json:"updated"`
}

// Task represents a single task
type Task struct {
	ID           int64                   `json:"id"`
	Title        string                  `json:"title"`
	Description  HTML                    `json:"description"`
	Done         bool                    `json:"done"`
	DoneAt       Time                    `json:"done_at"`
	DueDate      Time                    `json:"due_date"`
	StartDate    Time                    `json:"start_date"`
	EndDate      Time                    `json:"end_date"`
	Priority     int                     `json:"priority"`
	PercentDone  float64                 `json:"percent_done"`
	IsFavorite   bool                    `json:"is_favorite"`
	ProjectID    int64                   `json:"project_id"`
	Identifier   string                  `json:"identifier"`
	Index        int64                   `json:"index"`
	HexColor     string                  `json:"hex_color"`
	Labels       []Label                 `json:"labels"`
	Assignees    []User                  `json:"assignees"`
	RelatedTasks map[RelationKind][]Task `json:"related_tasks"`
	CreatedBy    *User                   `json:"created_by"`
	Created      Time                    `json:"created"`
	Updated      Time                    `json:"updated"`
}

// HasLabel reports whether the task carries a label with the given title.
// Titles are compared after trimming surrounding whitespace.
func (t Task) HasLabel(title string) bool {
	for _, l := range t.Labels {
		if trimmed(l.Title) == trimmed(title) {
			return true
		}
	}
	return false
}

// TaskRelation links two tasks with a relation kind
type TaskRelation struct {
	TaskID       int64        `json:"task_id"`
	OtherTaskID  int64        `json:"other_task_id"`
	RelationKind RelationKind `json:"relation_kind"`
}
