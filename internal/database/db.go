package database

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var Pool *pgxpool.Pool

func envOrError(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("%s environment variable is required", key)
	}
	return v, nil
}

func connString() (string, error) {
	host, err := envOrError("DB_HOST")
	if err != nil {
		return "", err
	}
	port, err := envOrError("DB_PORT")
	if err != nil {
		return "", err
	}
	user, err := envOrError("DB_USERNAME")
	if err != nil {
		return "", err
	}
	password, err := envOrError("DB_PASSWORD")
	if err != nil {
		return "", err
	}
	database, err := envOrError("DB_DATABASE")
	if err != nil {
		return "", err
	}

	// Use url.UserPassword to properly encode username and password
	userInfo := url.UserPassword(user, password)
	return fmt.Sprintf(
		"postgres://%s@%s:%s/%s?sslmode=disable",
		userInfo.String(),
		host,
		port,
		url.PathEscape(database),
	), nil
}

// EnsureDatabaseExists connects to the maintenance database and creates the
// target database if it is missing.
func EnsureDatabaseExists() error {
	host, err := envOrError("DB_HOST")
	if err != nil {
		return err
	}
	port, err := envOrError("DB_PORT")
	if err != nil {
		return err
	}
	user, err := envOrError("DB_USERNAME")
	if err != nil {
		return err
	}
	password, err := envOrError("DB_PASSWORD")
	if err != nil {
		return err
	}
	database, err := envOrError("DB_DATABASE")
	if err != nil {
		return err
	}

	userInfo := url.UserPassword(user, password)
	dsn := fmt.Sprintf("postgres://%s@%s:%s/postgres?sslmode=disable", userInfo.String(), host, port)

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var exists bool
	err = pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", database).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if !exists {
		log.Printf("Database '%s' does not exist. Creating it...", database)
		// CREATE DATABASE cannot be parameterized; quote the identifier instead.
		if _, err := pool.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", pgx.Identifier{database}.Sanitize())); err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
		log.Printf("Database '%s' created successfully", database)
	}

	return nil
}

// Connect builds a pgx connection pool from the DB_* environment variables and
// verifies it with a ping.
func Connect() (*pgxpool.Pool, error) {
	dsn, err := connString()
	if err != nil {
		return nil, err
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string (check your .env file): %w", err)
	}

	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	Pool = pool
	log.Println("Database connection pool established successfully")
	return pool, nil
}

func Close() {
	if Pool != nil {
		Pool.Close()
		log.Println("Database connection pool closed")
	}
}
