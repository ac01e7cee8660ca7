package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	ProjectKeyPrefix = "project:%d"
	ProjectListKey   = "projects:all"
)

const (
	ProjectTTL     = 10 * time.Minute
	ProjectListTTL = 5 * time.Minute
)

func ProjectKey(projectID uint) string {
	return fmt.Sprintf(ProjectKeyPrefix, projectID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateProject drops both the single-project entry and the list,
// which embeds every project.
func InvalidateProject(ctx context.Context, projectID uint) {
	Invalidate(ctx, ProjectKey(projectID))
	Invalidate(ctx, ProjectListKey)
}
