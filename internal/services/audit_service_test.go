package services

import (
	"strings"
	"testing"

	"profilecat/internal/logger"
	"profilecat/internal/models"
	"profilecat/internal/testutil"
)

func init() {
	logger.Init("test")
}

func TestAuditLog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)
	profile := testutil.CreateTestProfile(t, db)
	cat := testutil.CreateTestCategory(t, db, profile.ID)

	svc.Log(profile.ID, "CREATE_CATEGORY", "category", cat.ID, "127.0.0.1",
		map[string]interface{}{"name": cat.Name})

	var entries []models.AuditLog
	if err := db.Where("profile_id = ?", profile.ID).Find(&entries).Error; err != nil {
		t.Fatalf("failed to read audit logs: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Action != "CREATE_CATEGORY" || entry.ResourceID != cat.ID {
		t.Errorf("unexpected entry %+v", entry)
	}
	if !strings.Contains(entry.Changes, cat.Name) {
		t.Errorf("expected changes to mention %q, got %s", cat.Name, entry.Changes)
	}
}

func TestAuditLogWithoutChanges(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)
	profile := testutil.CreateTestProfile(t, db)

	svc.Log(profile.ID, "DELETE_CATEGORY", "category", "", "", nil)

	var entry models.AuditLog
	if err := db.First(&entry).Error; err != nil {
		t.Fatalf("expected an audit entry: %v", err)
	}
	if entry.Changes != "" {
		t.Errorf("expected empty changes, got %q", entry.Changes)
	}
}
