package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/zkortam/tritontory-sub002/internal/models"
)

func TestDisabledServiceIsNilSafe(t *testing.T) {
	var svc *Service

	if err := svc.Record(context.Background(), &models.AnalyticsEvent{Name: "page_view"}); err != nil {
		t.Errorf("Record() on nil service = %v, want nil", err)
	}

	counts, err := svc.TopContent(context.Background(), time.Now().Add(-time.Hour), 10)
	if err != nil {
		t.Errorf("TopContent() on nil service = %v, want nil", err)
	}
	if len(counts) != 0 {
		t.Errorf("TopContent() on nil service returned %d rows, want 0", len(counts))
	}

	if err := svc.Close(); err != nil {
		t.Errorf("Close() on nil service = %v, want nil", err)
	}
	if err := svc.Health(context.Background()); err != nil {
		t.Errorf("Health() on nil service = %v, want nil", err)
	}
}
