package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	headlesserrors "github.com/alexisbeaulieu97/headless/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
name: "Test Document"
settings:
  typeahead_delay: 750ms
widgets:
  - id: faq
    kind: accordion
    expanded: [one]
    items:
      - value: one
        label: "One"
      - value: two
        label: "Two"
`

	invalidYAML := `version: [1, 0]
name: "Broken"
widgets:
  - id: missing_kind
`

	missingRequired := `version: "1.0"
name: "No Widgets"
`

	badVersion := `version: "beta"
name: "Bad Version"
widgets:
  - id: faq
    kind: accordion
    items:
      - value: one
        label: "One"
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid document is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				require.Equal(t, "Test Document", cfg.Name)
				require.Len(t, cfg.Widgets, 1)
				require.Equal(t, KindAccordion, cfg.Widgets[0].Kind)
				require.Equal(t, []string{"one"}, cfg.Widgets[0].Expanded)
				require.Equal(t, 750*time.Millisecond, cfg.Settings.Delay())
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				require.Nil(t, cfg)
				var parseErr *headlesserrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "missing widgets fails validation",
			contents: missingRequired,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *headlesserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "config.widgets", validationErr.Field)
			},
		},
		{
			name:     "bad version fails validation",
			contents: badVersion,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *headlesserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "semver")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			path := filepath.Join(dir, "widgets.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o600))

			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *headlesserrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 0, parseErr.Line)
}

func TestDefaultDocumentIsValid(t *testing.T) {
	t.Parallel()

	cfg, err := Default()
	require.NoError(t, err)
	require.Equal(t, "Playground", cfg.Name)

	kinds := make([]string, 0, len(cfg.Widgets))
	for _, w := range cfg.Widgets {
		kinds = append(kinds, w.Kind)
	}
	require.Equal(t, []string{KindAccordion, KindTabs, KindListbox}, kinds)
	require.Equal(t, 500*time.Millisecond, cfg.Settings.Delay())

	require.Equal(t, "fruits", cfg.Widgets[2].ID)
	require.True(t, cfg.Widgets[2].Multi)
}

func TestExampleDocumentsAreValid(t *testing.T) {
	t.Parallel()

	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			t.Parallel()
			cfg, err := ParseConfig(path)
			require.NoError(t, err)
			require.NotEmpty(t, cfg.Widgets)
		})
	}
}
