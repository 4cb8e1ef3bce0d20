// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"freelance-flow/internal/api"
	"freelance-flow/internal/entities"

	"github.com/samber/lo"
)

// ToAPIDashboard maps the dashboard summary.
func ToAPIDashboard(d entities.Dashboard) api.DashboardPage {
	return api.DashboardPage{ProjectCount: d.ProjectCount, PendingTasks: d.PendingTasks}
}

// ToAPIClients maps the client directory.
func ToAPIClients(clients []entities.Client) []api.Client {
	return lo.Map(clients, func(c entities.Client, _ int) api.Client {
		return api.Client{ID: c.ID, Username: c.Username}
	})
}

// ToAPIProjects maps a project list.
func ToAPIProjects(projects []entities.Project) []api.Project {
	return lo.Map(projects, func(p entities.Project, _ int) api.Project {
		return api.Project{ID: p.ID, Title: p.Title, CreatedBy: p.CreatedBy}
	})
}

// ToAPIChatMessages maps chat history, keeping its order.
func ToAPIChatMessages(msgs []entities.Message) []api.ChatMessage {
	return lo.Map(msgs, func(m entities.Message, _ int) api.ChatMessage {
		return api.ChatMessage{
			Message:   m.Body,
			Timestamp: m.Timestamp,
			Username:  m.Username,
		}
	})
}
