// Package testinfra starts disposable databases for integration tests and local development.
package testinfra

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/goccy/go-json"
	"github.com/localnerve/daycare-data/internal/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Default PostgreSQL settings for a disposable container
const (
	DefaultPostgresImage = "postgres:17-alpine"
	DefaultDatabase      = "daycare"
	DefaultUser          = "daycare"
	DefaultPassword      = "daycare"
)

// Postgres is a running PostgreSQL container and the address it is mapped to
type Postgres struct {
	Container testcontainers.Container
	Host      string
	Port      string
	Database  string
	User      string
	Password  string
}

// StartPostgres starts a PostgreSQL container and waits until it accepts connections.
// An empty image selects DefaultPostgresImage.
func StartPostgres(ctx context.Context, image string) (*Postgres, error) {
	if image == "" {
		image = DefaultPostgresImage
	}

	tcpPort, err := nat.NewPort("tcp", "5432")
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres port: %w", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(tcpPort)},
			Env: map[string]string{
				"POSTGRES_DB":       DefaultDatabase,
				"POSTGRES_USER":     DefaultUser,
				"POSTGRES_PASSWORD": DefaultPassword,
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort(tcpPort),
				// postgres restarts once after running init scripts
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres: %w", err)
	}

	pg := &Postgres{
		Container: container,
		Database:  DefaultDatabase,
		User:      DefaultUser,
		Password:  DefaultPassword,
	}

	if pg.Host, err = container.Host(ctx); err != nil {
		_ = pg.Terminate(ctx)
		return nil, fmt.Errorf("failed to get postgres host: %w", err)
	}
	mapped, err := container.MappedPort(ctx, tcpPort)
	if err != nil {
		_ = pg.Terminate(ctx)
		return nil, fmt.Errorf("failed to get postgres port: %w", err)
	}
	pg.Port = mapped.Port()

	return pg, nil
}

// Config returns a configuration that connects to the container
func (pg *Postgres) Config() *config.Config {
	return &config.Config{
		Port:              "3000",
		AppEnv:            "test",
		LogLevel:          "info",
		DBType:            "postgres",
		DBHost:            pg.Host,
		DBPort:            pg.Port,
		DBDatabase:        pg.Database,
		DBConnectionLimit: 5,
		Credentials:       pg.Credentials(),
	}
}

// Credentials returns a service account credential for the container's database user
func (pg *Postgres) Credentials() config.Credentials {
	return config.Credentials{
		Type:        "service_account",
		ProjectID:   "daycare-local",
		ClientEmail: "devdb@daycare-local.invalid",
		DBUser:      pg.User,
		DBPassword:  pg.Password,
	}
}

// WriteCredentials writes the credential file config.Load reads
func (pg *Postgres) WriteCredentials(path string) error {
	data, err := json.MarshalIndent(pg.Credentials(), "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Terminate stops and removes the container
func (pg *Postgres) Terminate(ctx context.Context) error {
	if pg == nil || pg.Container == nil {
		return nil
	}
	return pg.Container.Terminate(ctx)
}
