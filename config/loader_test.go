package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvKeyMapper_Path(t *testing.T) {
	mapper := envKeyMapper{tree: map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master":  map[string]any{"userName": "user"},
		},
		"pubsub":     map[string]any{"topicId": ""},
		"assignment": map[string]any{"searchRadiusKm": 20, "timeZone": "Local"},
		"pickupPass": map[string]any{"secret": ""},
	}}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "ASSIGNMENT_SEARCHRADIUSKM", want: "assignment.searchRadiusKm"},
		{envKey: "ASSIGNMENT__TIMEZONE", want: "assignment.timeZone"},
		{envKey: "PICKUPPASS_SECRET", want: "pickupPass.secret"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, mapper.path(tt.envKey))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	yaml := "assignment:\n  searchRadiusKm: 20\n  timeZone: Local\npickupPass:\n  gracePeriod: 2h\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dropzone-test.yaml"), []byte(yaml), 0o600))
	t.Setenv("ASSIGNMENT_SEARCHRADIUSKM", "35.5")
	t.Setenv("PICKUPPASS_GRACEPERIOD", "90m")

	cfg, err := Load[Config]("dropzone-test", filepath.Join(dir, "missing"), dir)
	require.NoError(t, err)

	assert.InDelta(t, 35.5, cfg.Assignment.SearchRadiusKm, 1e-9)
	assert.Equal(t, "Local", cfg.Assignment.TimeZone)
	assert.Equal(t, 90*time.Minute, cfg.PickupPass.GracePeriod)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load[Config]("absent", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestReplicasFromEnv(t *testing.T) {
	env := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-a",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-b",
		"POSTGRES_REPLICAS_1_PORT":     "5433",
		"POSTGRES_REPLICAS_3_HOST":     "skipped",
		"POSTGRES_REPLICAS_3_PORT":     "5434",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	assert.Equal(t, []postgres.ConnectionConfig{
		{Host: "replica-a", Port: "5432", UserName: "reader"},
		{Host: "replica-b", Port: "5433"},
	}, replicasFromEnv(lookup))
	assert.Empty(t, replicasFromEnv(func(string) (string, bool) { return "", false }))
}
