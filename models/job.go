package models

import (
	"slices"
	"time"
)

// JobCategories is the fixed set of job-function tags a posting may carry.
// The category column is CHECK-constrained against the same list.
var JobCategories = []string{
	"Frontend Developer",
	"Backend Developer",
	"Full Stack Developer",
	"Mobile Developer",
	"DevOps Engineer",
	"Data Scientist",
	"Machine Learning Engineer",
	"QA Engineer",
	"UI/UX Designer",
	"Product Manager",
	"Project Manager",
	"Business Analyst",
	"System Administrator",
	"Database Administrator",
	"Security Engineer",
	"Cloud Engineer",
}

// IsValidJobCategory reports whether category is one of the fixed
// JobCategories values.
func IsValidJobCategory(category string) bool {
	return slices.Contains(JobCategories, category)
}

// Job represents a job posting created by an administrator.
type Job struct {
	// JobID is the internal unique identifier of the posting.
	JobID int64 `json:"id"`

	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`

	// Category is exactly one value from JobCategories.
	Category string `json:"category"`

	// Interests is the set of tags matched against user interests when the
	// posting is created. It may differ from Category.
	Interests []string `json:"interests"`

	// Applicants lists the users who applied, in application order.
	// A user appears at most once.
	Applicants []Applicant `json:"applicants"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Job model.
func (j Job) TableName() string {
	return "jobs"
}

// Applicant is the resolved view of a user who applied to a job.
type Applicant struct {
	UserID int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
