package models

// RegisterRequest is the payload accepted by POST /api/auth/register.
// Role defaults to RoleUser when empty.
type RegisterRequest struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Role      string   `json:"role,omitempty"`
	Interests []string `json:"interests,omitempty"`
	LinkedIn  string   `json:"linkedin,omitempty"`
}

// LoginRequest is the payload accepted by POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateJobRequest is the payload accepted by POST /api/job/create.
type CreateJobRequest struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Interests   []string `json:"interests,omitempty"`
}

// Job returns the domain posting described by the request.
func (r CreateJobRequest) Job() Job {
	return Job{
		Title:       r.Title,
		Company:     r.Company,
		Location:    r.Location,
		Description: r.Description,
		Category:    r.Category,
		Interests:   r.Interests,
	}
}

// UpdateInterestsRequest is the payload accepted by PUT /api/user/interests.
type UpdateInterestsRequest struct {
	Interests []string `json:"interests"`
}

// UpdateLinkedInRequest is the payload accepted by PUT /api/user/linkedin.
type UpdateLinkedInRequest struct {
	LinkedIn string `json:"linkedin"`
}
