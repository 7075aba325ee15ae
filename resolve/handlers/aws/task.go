package aws

import (
	"strings"

	"opsboard/pkg/snapshot"
	"opsboard/resolve"
)

// taskIDSeparator joins the service name and the task id into one composite
// identifier. Service names must not contain a colon.
const taskIDSeparator = ":"

// TaskHandler serves the task family. ECS tasks never appear in the
// infrastructure snapshot; they are resolved through the ECS API
// collaborator, so the static lookups intentionally report nothing.
type TaskHandler struct{}

// NewTaskHandler creates a new ECS task handler.
func NewTaskHandler() *TaskHandler {
	return &TaskHandler{}
}

// ResourceType returns the registry tag.
func (h *TaskHandler) ResourceType() string {
	return "task"
}

// GetID builds the composite "<service>:<taskId>" identifier. The full
// 36-character task id is required, not the abbreviated display form: the
// identifier is replayed against DescribeTasks, which rejects short forms.
// When either half is missing the task id alone is used, never a partial
// composite.
func (h *TaskHandler) GetID(rec snapshot.Record) string {
	service := rec.StrAny("service", "serviceName")
	full := rec.StrAny("fullId", "taskId")
	if service == "" || full == "" {
		return full
	}
	return service + taskIDSeparator + full
}

// FindInInfra always reports not found: tasks have no static snapshot
// representation.
func (h *TaskHandler) FindInInfra(id string, snap *snapshot.Snapshot) snapshot.Record {
	return nil
}

// FindAll always reports empty, for the same reason as FindInInfra.
func (h *TaskHandler) FindAll(snap *snapshot.Snapshot) []snapshot.Record {
	return nil
}

// ParseID splits the composite identifier on the first colon only. Without
// a colon the whole string is the task id and the service stays unknown,
// which downstream consumers treat as a valid outcome.
func (h *TaskHandler) ParseID(id string) resolve.ParsedID {
	idx := strings.Index(id, taskIDSeparator)
	if idx < 0 {
		return resolve.ParsedID{ID: id, TaskID: id, FullID: id}
	}
	task := id[idx+1:]
	return resolve.ParsedID{
		ID:      task,
		Service: id[:idx],
		TaskID:  task,
		FullID:  task,
	}
}
