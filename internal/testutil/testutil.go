package testutil

import (
	"context"
	"sync"

	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/config"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/logger"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/types"
)

const (
	// TestLandlordID is the landlord scope used by service tests.
	TestLandlordID = "landlord_test"
	// TestUserID is the acting user in service tests.
	TestUserID = "user_test"
)

// SetupContext returns a context carrying the standard test identifiers.
func SetupContext() context.Context {
	ctx := context.Background()
	ctx = types.SetLandlordID(ctx, TestLandlordID)
	ctx = types.SetUserID(ctx, TestUserID)
	return ctx
}

// GetLogger returns a logger suitable for tests.
func GetLogger() *logger.Logger {
	cfg := config.GetDefaultConfig()
	log, err := logger.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	return log
}

// unitPropertyIndex maps unit ids to property ids so in-memory stores can
// honor property_id filters the way the SQL repositories do with a join.
type unitPropertyIndex struct {
	mu    sync.RWMutex
	byUID map[string]string
}

func newUnitPropertyIndex() *unitPropertyIndex {
	return &unitPropertyIndex{byUID: make(map[string]string)}
}

func (x *unitPropertyIndex) set(unitID, propertyID string) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.byUID[unitID] = propertyID
}

func (x *unitPropertyIndex) belongsTo(unitID, propertyID string) bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.byUID[unitID] == propertyID
}
