// Package api holds the HTTP request and response bodies.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a numeric identifier that also accepts a quoted number in JSON bodies.
type ID int64

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 1 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(s)
	}
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = 0
		return nil
	}
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", b)
	}
	*id = ID(v)
	return nil
}

// CredentialsRequest is the register/login form.
type CredentialsRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// CreateProjectRequest is the body of POST /create-project.
type CreateProjectRequest struct {
	Title string `json:"title" form:"title"`
}

// InviteUserRequest is the body of POST /invite-user.
type InviteUserRequest struct {
	Username  string `json:"username" form:"username"`
	ProjectID ID     `json:"project_id" form:"project_id"`
}

// SendMessageRequest is the body of POST /send-message.
type SendMessageRequest struct {
	ProjectID ID     `json:"project_id" form:"project_id"`
	Message   string `json:"message" form:"message"`
}

// MessageResponse acknowledges a write.
type MessageResponse struct {
	Message   string `json:"message"`
	ProjectID int64  `json:"project_id,omitempty"`
}

// ErrorResponse carries a failure message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FormPage describes a form the client should render.
type FormPage struct {
	Page   string   `json:"page"`
	Action string   `json:"action"`
	Fields []string `json:"fields"`
}

// DashboardPage is the body of GET /dashboard.
type DashboardPage struct {
	ProjectCount int64 `json:"project_count"`
	PendingTasks int64 `json:"pending_tasks"`
}

// Client is an entry of the client directory.
type Client struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// ClientsPage is the body of GET /clients.
type ClientsPage struct {
	Clients []Client `json:"clients"`
}

// Project is a project summary.
type Project struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	CreatedBy int64  `json:"created_by"`
}

// ProjectsPage is the body of GET /projects and GET /client-projects/{id}.
type ProjectsPage struct {
	Projects []Project `json:"projects"`
}

// ChatMessage is a rendered chat line.
type ChatMessage struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Username  string `json:"username"`
}

// ChatPage is the body of GET /chat/{project_id}.
type ChatPage struct {
	ProjectID int64         `json:"project_id"`
	Messages  []ChatMessage `json:"messages"`
}
