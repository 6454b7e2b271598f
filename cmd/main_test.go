package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

// setSecrets sets the required token secrets
func setSecrets() {
	os.Setenv("ACCESS_TOKEN_SECRET", "access-secret")
	os.Setenv("REFRESH_TOKEN_SECRET", "refresh-secret")
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-28"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !contains(output, "v1.0.0") ||
		!contains(output, "abcd1234") ||
		!contains(output, "2026-08-28") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_MissingSecrets(t *testing.T) {
	resetEnv()

	if _, err := parseConfig("nonexistent.env"); err == nil {
		t.Fatal("expected error when token secrets are unset")
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()
	setSecrets()

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if cfg.appHost != "localhost" || cfg.appPort != "8080" || cfg.logLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", cfg.appHost, cfg.appPort, cfg.logLevel)
	}
	if cfg.enforceOwnership {
		t.Error("ownership enforcement should default to off")
	}

	// PostgreSQL
	if cfg.pgHost != "localhost" || cfg.pgPort != 5432 || cfg.pgUser != "user" || cfg.pgPassword != "password" ||
		cfg.pgDB != "getaway" || cfg.pgMaxOpenConns != 16 || cfg.pgMaxIdleConns != 8 {
		t.Errorf("unexpected postgres config")
	}

	// Redis
	if cfg.redisHost != "localhost" || cfg.redisPort != 6379 || cfg.redisDB != 0 || cfg.redisPassword != "" ||
		cfg.weatherTTLSecond != 600 {
		t.Errorf("unexpected redis config")
	}

	// Kafka is off by default
	if cfg.kafkaAddr != "" || cfg.kafkaTopic != "getaway-events" {
		t.Errorf("unexpected kafka config")
	}

	// Tokens
	if cfg.accessSecret != "access-secret" || cfg.refreshSecret != "refresh-secret" ||
		cfg.accessExpHour != 24 || cfg.refreshExpHour != 168 {
		t.Errorf("unexpected token config")
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	setSecrets()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")
	os.Setenv("APP_ENFORCE_OWNERSHIP", "true")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "mydb")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	os.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("WEATHER_CACHE_TTL_SECOND", "120")

	os.Setenv("KAFKA_ADDR", "kafka.example.com:9092")
	os.Setenv("KAFKA_TOPIC", "audit")

	os.Setenv("ACCESS_TOKEN_EXP_HOUR", "1")
	os.Setenv("REFRESH_TOKEN_EXP_HOUR", "72")

	os.Setenv("GOOGLEAPIKEY", "google-key")
	os.Setenv("OPENWEATHERAPIKEY", "weather-key")
	os.Setenv("OPENAI_API_KEY", "openai-key")

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.appHost != "127.0.0.1" || cfg.appPort != "9090" || cfg.logLevel != "debug" || !cfg.enforceOwnership {
		t.Errorf("unexpected app config")
	}
	if cfg.pgHost != "pg.example.com" || cfg.pgPort != 5433 || cfg.pgUser != "admin" || cfg.pgPassword != "secret" ||
		cfg.pgDB != "mydb" || cfg.pgMaxOpenConns != 20 || cfg.pgMaxIdleConns != 10 {
		t.Errorf("unexpected postgres config")
	}
	if cfg.redisHost != "redis.example.com" || cfg.redisPort != 6380 || cfg.redisDB != 2 ||
		cfg.redisPassword != "redispass" || cfg.weatherTTLSecond != 120 {
		t.Errorf("unexpected redis config")
	}
	if cfg.kafkaAddr != "kafka.example.com:9092" || cfg.kafkaTopic != "audit" {
		t.Errorf("unexpected kafka config")
	}
	if cfg.accessExpHour != 1 || cfg.refreshExpHour != 72 {
		t.Errorf("unexpected token config")
	}
	if cfg.googleAPIKey != "google-key" || cfg.weatherAPIKey != "weather-key" || cfg.openaiAPIKey != "openai-key" {
		t.Errorf("unexpected api key config")
	}
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	ctx := context.Background()

	// ------------------ Postgres container ------------------
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	// ------------------ Redis container ------------------
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	// ------------------ Run ------------------
	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cfg := config{
		appHost:          "127.0.0.1",
		appPort:          "8086",
		logLevel:         "debug",
		pgHost:           pgHost,
		pgPort:           pgPort.Int(),
		pgUser:           "user",
		pgPassword:       "password",
		pgDB:             "testdb",
		pgMaxOpenConns:   5,
		pgMaxIdleConns:   2,
		redisHost:        redisHost,
		redisPort:        redisPort.Int(),
		accessSecret:     "access-secret",
		refreshSecret:    "refresh-secret",
		accessExpHour:    24,
		refreshExpHour:   168,
		weatherTTLSecond: 60,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	select {
	case <-time.After(11 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to succeed, got error: %v", err)
		}
		t.Log("run completed successfully")
	}
}
