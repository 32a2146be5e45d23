//go:build integration

// Package testutil runs a MongoDB testcontainer shared by the integration tests of a package.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// MongoImage is the server image the integration tests run against.
const MongoImage = "mongo:7.0"

// maxDBNameLen keeps generated names under MongoDB's 64 byte database name limit.
const maxDBNameLen = 50

// MongoDBContainer wraps a MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

var shared struct {
	once      sync.Once
	mu        sync.RWMutex
	container *MongoDBContainer
	err       error
}

// SetupMongoDB starts a dedicated MongoDB container. Prefer the shared
// container through SetupTestMainWithMongoDB.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	container, err := mongodb.Run(ctx, MongoImage)
	if err != nil {
		return nil, fmt.Errorf("start MongoDB container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("MongoDB connection string: %w", err)
	}

	return &MongoDBContainer{Container: container, URI: uri}, nil
}

// Cleanup terminates the container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m == nil || m.Container == nil {
		return nil
	}
	if err := m.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("terminate MongoDB container: %w", err)
	}
	return nil
}

// GetSharedMongoDB starts the package-wide container on first use.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	shared.once.Do(func() {
		shared.mu.Lock()
		defer shared.mu.Unlock()
		shared.container, shared.err = SetupMongoDB(ctx)
	})

	shared.mu.RLock()
	defer shared.mu.RUnlock()
	return shared.container, shared.err
}

// CleanupSharedMongoDB terminates the shared container.
func CleanupSharedMongoDB(ctx context.Context) error {
	shared.mu.Lock()
	defer shared.mu.Unlock()

	err := shared.container.Cleanup(ctx)
	shared.container = nil
	return err
}

// SetupTestMainWithMongoDB runs m against the shared container and tears it down.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedMongoDB(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "integration tests need Docker: %v\n", err)
		return 1
	}

	code := m.Run()

	if err := CleanupSharedMongoDB(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return code
}

// GetSharedContainerURI returns the URI of the shared container. It panics
// when the container was not started.
func GetSharedContainerURI() string {
	shared.mu.RLock()
	defer shared.mu.RUnlock()

	if shared.container == nil {
		panic("shared MongoDB container not started; call SetupTestMainWithMongoDB from TestMain")
	}
	return shared.container.URI
}

// SanitizeDBName turns a test name into a unique MongoDB database name.
// Characters MongoDB rejects in database names become underscores.
func SanitizeDBName(testName string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', ' ', '"', '$', '*', '<', '>', ':', '|', '?':
			return '_'
		}
		return r
	}, testName)

	if len(sanitized) > maxDBNameLen {
		sanitized = sanitized[:maxDBNameLen]
	}
	return fmt.Sprintf("%s_%d", sanitized, time.Now().UnixNano()%1000000)
}
