package dto

import "todolist-api/pkg/datetime"

type ExportResponse struct {
	URL         string                 `json:"url"`
	Path        string                 `json:"path"`
	TasksCount  int                    `json:"tasks_count"`
	GeneratedAt datetime.FormattedDate `json:"generated_at"`
}

// TaskExport is the document written to storage
type TaskExport struct {
	User        UserResponse           `json:"user"`
	GeneratedAt datetime.FormattedDate `json:"generated_at"`
	Timezone    string                 `json:"timezone"`
	Categories  []CategoryResponse     `json:"categories"`
	Tasks       []TaskResponse         `json:"tasks"`
}
