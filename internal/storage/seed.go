package storage

import (
	"context"
	"fmt"

	"github.com/Blazehue/TaskMasterV1/internal/models"
)

// Seed inserts the sample projects into the store. Intended for empty
// databases; repeated runs insert duplicates.
func Seed(ctx context.Context, s Store) (int, error) {
	samples := []models.Project{
		{
			Title:          "Website Redesign",
			Description:    text("Complete overhaul of the company website for better user experience and modern aesthetics."),
			TaskCount:      12,
			CompletedTasks: 8,
			DueDate:        text("2024-07-30T00:00:00.000Z"),
			Category:       text("Design"),
		},
		{
			Title:          "Mobile App Development",
			Description:    text("Development of an iOS and Android application with core features for Q3 launch."),
			TaskCount:      25,
			CompletedTasks: 15,
			DueDate:        text("2024-08-20T00:00:00.000Z"),
			Category:       text("Development"),
		},
		{
			Title:          "Marketing Campaign Q4",
			Description:    text("Planning and execution of the end-of-year marketing campaign across all digital channels."),
			TaskCount:      8,
			CompletedTasks: 3,
			DueDate:        text("2024-09-15T00:00:00.000Z"),
			Category:       text("Marketing"),
		},
		{
			Title:          "E-commerce Platform",
			Description:    text("Building a robust e-commerce solution with integrated payment gateways and inventory management."),
			TaskCount:      30,
			CompletedTasks: 20,
			DueDate:        text("2024-08-01T00:00:00.000Z"),
			Category:       text("Development"),
		},
		{
			Title:          "Brand Identity Refresh",
			Description:    text("Revisiting and updating the company's brand guidelines, logo, and visual assets."),
			TaskCount:      6,
			CompletedTasks: 6,
			DueDate:        text("2024-06-10T00:00:00.000Z"),
			Category:       text("Design"),
		},
		{
			Title:          "Social Media Strategy",
			Description:    text("Developing a comprehensive social media strategy for increased engagement and brand awareness."),
			TaskCount:      10,
			CompletedTasks: 7,
			DueDate:        text("2024-07-05T00:00:00.000Z"),
			Category:       text("Marketing"),
		},
		{
			Title:          "API Integration Project",
			Description:    text("Integrating third-party APIs for enhanced functionality and data exchange within our systems."),
			TaskCount:      15,
			CompletedTasks: 10,
			DueDate:        text("2024-09-01T00:00:00.000Z"),
			Category:       text("Development"),
		},
		{
			Title:          "User Research Study",
			Description:    text("Conducting in-depth user research to understand pain points and inform future product development."),
			TaskCount:      5,
			CompletedTasks: 2,
			DueDate:        text("2024-07-25T00:00:00.000Z"),
			Category:       text("Research"),
		},
	}

	for i, p := range samples {
		if _, err := s.CreateProject(ctx, p, nil); err != nil {
			return i, fmt.Errorf("seed project %q: %w", p.Title, err)
		}
	}
	return len(samples), nil
}

func text(s string) *string {
	return &s
}
