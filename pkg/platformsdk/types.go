// Package platformsdk holds the wire types of the platform API and a small
// HTTP client for them. Services that consume the platform (site backends,
// ops tooling) import this instead of redefining request shapes.
package platformsdk

import "time"

// ErrorResponse is the uniform error body every endpoint returns.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type IssueInviteRequest struct {
	Role       string `json:"role"`
	TenantName string `json:"tenant_name,omitempty"`
	StudentID  string `json:"student_id,omitempty"`
}

type IssueInviteResponse struct {
	Code      string    `json:"code"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// InviteDetails is the join page's read-only view of a pending invite. The
// code itself is never echoed back.
type InviteDetails struct {
	TenantID   string    `json:"tenant_id"`
	TenantName string    `json:"tenant_name"`
	Role       string    `json:"role"`
	StudentID  string    `json:"student_id,omitempty"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type RedeemInviteRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type RedeemInviteResponse struct {
	ProfileID   string `json:"profile_id"`
	TenantID    string `json:"tenant_id"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type CreateUserRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	FullName        string `json:"full_name"`
	Role            string `json:"role"`
	LinkedStudentID string `json:"linked_student_id,omitempty"`
}

type CreateUserResponse struct {
	ProfileID string `json:"profile_id"`
}

type UpdateRolesRequest struct {
	Roles []string `json:"roles"`
}

type TenantUser struct {
	ProfileID string `json:"profile_id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Roles     string `json:"roles"`
	Status    string `json:"status"`
}

type TenantUserList struct {
	Users []TenantUser `json:"users"`
}

type LessonPlanRequest struct {
	Subject         string `json:"subject"`
	GradeLevel      string `json:"grade_level"`
	Topic           string `json:"topic"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
}

type LessonPlanResponse struct {
	Plan string `json:"plan"`
}

type LeadRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Message    string `json:"message"`
	SourcePage string `json:"source_page,omitempty"`
}

type LeadResponse struct {
	LeadID string `json:"lead_id"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Uptime  string `json:"uptime,omitempty"`
}
