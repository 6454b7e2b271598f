package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		fname VARCHAR(100) NOT NULL,
		lname VARCHAR(100) NOT NULL,
		email VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role INT NOT NULL DEFAULT 0,
		birthday VARCHAR(30) NOT NULL,
		city VARCHAR(100) NOT NULL,
		state VARCHAR(100) NOT NULL,
		zip VARCHAR(20) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS trips (
		trip_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_email VARCHAR(100) NOT NULL,
		location_address TEXT NOT NULL,
		trip_start VARCHAR(30) NOT NULL DEFAULT '',
		trip_end VARCHAR(30) NOT NULL DEFAULT '',
		stay_expense NUMERIC NOT NULL DEFAULT 0,
		travel_expense NUMERIC NOT NULL DEFAULT 0,
		car_expense NUMERIC NOT NULL DEFAULT 0,
		other_expense NUMERIC NOT NULL DEFAULT 0,
		image_url TEXT NOT NULL,
		is_favorite BOOLEAN NOT NULL DEFAULT FALSE,
		activities JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS wishlists (
		wishlist_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		list_name VARCHAR(200) NOT NULL,
		email VARCHAR(100) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
		UNIQUE (email, list_name)
	);

	-- trip_id carries no foreign key: deleting a trip must not cascade
	-- into wishlists, dangling references are allowed.
	CREATE TABLE IF NOT EXISTS wishlist_trips (
		wishlist_id UUID NOT NULL REFERENCES wishlists (wishlist_id) ON DELETE CASCADE,
		trip_id UUID NOT NULL,
		added_at TIMESTAMP NOT NULL DEFAULT NOW(),
		UNIQUE (wishlist_id, trip_id)
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}
