package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/urlgen/pkg/urlgen"
	"github.com/randalmurphal/urlgen/pkg/urlgen/config"
)

const yamlJob = `
templates:
  - https://example.com/[1-3]
  - "q={a|b}"
empty_policy: collapse
max_results: 100
log_level: debug
store: ./batches.db
unknown_key: ignored
`

const jsonJob = `{
  "templates": ["https://example.com/[1-3]", "q={a|b}"],
  "empty_policy": "collapse",
  "max_results": 100,
  "log_level": "debug",
  "store": "./batches.db"
}`

func expectedJob() config.Job {
	return config.Job{
		Templates:   []string{"https://example.com/[1-3]", "q={a|b}"},
		EmptyPolicy: "collapse",
		MaxResults:  100,
		LogLevel:    "debug",
		Store:       "./batches.db",
	}
}

func TestFromYAML(t *testing.T) {
	job, err := config.FromYAML([]byte(yamlJob))
	require.NoError(t, err)
	assert.Equal(t, expectedJob(), job)
}

func TestFromJSON(t *testing.T) {
	job, err := config.FromJSON([]byte(jsonJob))
	require.NoError(t, err)
	assert.Equal(t, expectedJob(), job)
}

func TestFromYAML_Invalid(t *testing.T) {
	_, err := config.FromYAML([]byte("templates: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml")
}

func TestFromJSON_Invalid(t *testing.T) {
	_, err := config.FromJSON([]byte("{"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse json")
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{name: "job.yaml", content: yamlJob},
		{name: "job.YML", content: yamlJob},
		{name: "job.json", content: jsonJob},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			job, err := config.FromFile(path)
			require.NoError(t, err)
			assert.Equal(t, expectedJob(), job)
		})
	}

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "job.toml")
		require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o644))
		_, err := config.FromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported job file extension: .toml")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.FromFile(filepath.Join(dir, "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestJob_Validate(t *testing.T) {
	tests := []struct {
		name    string
		job     config.Job
		wantErr []error
	}{
		{name: "zero job is valid", job: config.Job{}},
		{name: "full job is valid", job: expectedJob()},
		{name: "warning alias", job: config.Job{LogLevel: "WARNING"}},
		{
			name:    "bad policy",
			job:     config.Job{EmptyPolicy: "drop"},
			wantErr: []error{config.ErrInvalidEmptyPolicy},
		},
		{
			name:    "all errors reported",
			job:     config.Job{EmptyPolicy: "drop", LogLevel: "loud", MaxResults: -1},
			wantErr: []error{config.ErrInvalidEmptyPolicy, config.ErrInvalidLogLevel, config.ErrNegativeMaxResults},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.job.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestJob_ExpanderOptions(t *testing.T) {
	ctx := context.Background()

	collapse := urlgen.New(config.Job{EmptyPolicy: "collapse"}.ExpanderOptions()...)
	results, err := collapse.Expand(ctx, "{x|y}[5-3]")
	require.NoError(t, err)
	assert.Empty(t, results)

	quirk := urlgen.New(config.Job{}.ExpanderOptions()...)
	results, err = quirk.Expand(ctx, "{x|y}[5-3]")
	require.NoError(t, err)
	assert.Equal(t, []string{"x[5-3]", "y[5-3]"}, results)

	limited := urlgen.New(config.Job{MaxResults: 2}.ExpanderOptions()...)
	_, err = limited.Expand(ctx, "[1-3]")
	assert.ErrorIs(t, err, urlgen.ErrTooManyResults)
}

func TestJob_Merge(t *testing.T) {
	base := expectedJob()
	merged := base.Merge(config.Job{
		Templates:  []string{"extra/[1-2]"},
		MaxResults: 5,
	})

	assert.Equal(t, []string{"https://example.com/[1-3]", "q={a|b}", "extra/[1-2]"}, merged.Templates)
	assert.Equal(t, 5, merged.MaxResults)
	assert.Equal(t, "collapse", merged.EmptyPolicy)
	assert.Equal(t, "./batches.db", merged.Store)
	assert.Len(t, base.Templates, 2, "base must not be modified")
}
