package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DayoWang/memobase/internal/config"
	"github.com/DayoWang/memobase/internal/profile"
	"github.com/DayoWang/memobase/internal/prompts"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func missingConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "none.yaml")
}

func TestTopicsCmd_Defaults(t *testing.T) {
	out, err := run(t, "topics", "--config", missingConfig(t))
	require.NoError(t, err)

	defaults, err := profile.DefaultTopics()
	require.NoError(t, err)
	assert.Equal(t, profile.RenderAll(defaults)+"\n", out)
	assert.Contains(t, out, "- basic_info ()\n  - name\n  - age(integer)")
}

func TestTopicsCmd_Overwrite(t *testing.T) {
	path := writeConfig(t, `
overwrite_user_profiles:
  - topic: Food
    sub_topics: [Sweet]
  - topic: Hobby
    sub_topics: []
`)
	out, err := run(t, "topics", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "- food ()\n  - sweet\n- hobby\n", out)
}

func TestTopicsCmd_DefaultsFlag(t *testing.T) {
	path := writeConfig(t, `
overwrite_user_profiles:
  - topic: Food
`)
	out, err := run(t, "topics", "--defaults", "--config", path)
	require.NoError(t, err)

	defaults, err := profile.DefaultTopics()
	require.NoError(t, err)
	assert.Equal(t, profile.RenderAll(defaults)+"\n", out)
	assert.NotContains(t, out, "- food")
}

func TestTopicsCmd_InvalidConfig(t *testing.T) {
	path := writeConfig(t, `
additional_user_profiles:
  - topic: Food
    sub_topics: [42]
`)
	_, err := run(t, "topics", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestSubtopicsCmd(t *testing.T) {
	path := writeConfig(t, `
additional_user_profiles:
  - topic: Interest
    sub_topics:
      - name: Board Games
        description: strategy titles
`)

	t.Run("merged topics", func(t *testing.T) {
		out, err := run(t, "subtopics", "Interest", "--config", path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		assert.Equal(t, "- books", lines[0])
		assert.Equal(t, "- board_games(strategy titles)", lines[len(lines)-1])
	})

	t.Run("unknown topic", func(t *testing.T) {
		out, err := run(t, "subtopics", "nonexistent", "--config", path)
		require.NoError(t, err)
		assert.Equal(t, "None\n", out)
	})

	t.Run("requires one argument", func(t *testing.T) {
		_, err := run(t, "subtopics", "--config", path)
		assert.Error(t, err)
	})
}

func TestExportCmd(t *testing.T) {
	path := writeConfig(t, `
overwrite_user_profiles:
  - topic: 饮食
    description: 偏好
    sub_topics:
      - name: 甜食
        update_description: keep newest
`)

	t.Run("stdout", func(t *testing.T) {
		out, err := run(t, "export", "--config", path)
		require.NoError(t, err)
		assert.Contains(t, out, "topic: 饮食")
		assert.NotContains(t, out, "update_description")

		var doc profile.Document
		require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
		require.Len(t, doc.Profiles, 1)
		assert.Equal(t, "偏好", doc.Profiles[0].Description)
		assert.Equal(t, "甜食", doc.Profiles[0].SubTopics[0].Name)
	})

	t.Run("file", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "profiles.yaml")
		out, err := run(t, "export", "--config", path, "--output", target)
		require.NoError(t, err)
		assert.Empty(t, out)

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "profiles:\n"))
	})
}

func TestPromptCmd(t *testing.T) {
	cfg := missingConfig(t)

	t.Run("list", func(t *testing.T) {
		out, err := run(t, "prompt", "--config", cfg)
		require.NoError(t, err)
		assert.Equal(t, prompts.SummaryProfileID+"\n", out)
	})

	t.Run("template", func(t *testing.T) {
		out, err := run(t, "prompt", prompts.SummaryProfileID, "--config", cfg)
		require.NoError(t, err)
		assert.Equal(t, prompts.SummaryProfile{}.Prompt(), out)
	})

	t.Run("kwargs", func(t *testing.T) {
		out, err := run(t, "prompt", prompts.SummaryProfileID, "--kwargs", "--config", cfg)
		require.NoError(t, err)
		assert.JSONEq(t, `{"prompt_id":"summary_profile"}`, out)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := run(t, "prompt", "nope", "--config", cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown prompt "nope"`)
	})
}

func TestInitConfigCmd(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := run(t, "init-config", target)
	require.NoError(t, err)
	assert.Equal(t, "Wrote "+target+"\n", out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, string(config.DefaultConfigBytes()), string(data))

	t.Run("refuses to overwrite", func(t *testing.T) {
		_, err := run(t, "init-config", target)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("force replaces a broken file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(target, []byte("log: [\n"), 0o644))
		_, err := run(t, "init-config", "--force", "--config", target)
		require.NoError(t, err)

		out, err := run(t, "topics", "--config", target)
		require.NoError(t, err)
		assert.Contains(t, out, "- basic_info")
	})
}

func TestMustGetHelpers(t *testing.T) {
	cmd := &cobra.Command{}
	assert.Panics(t, func() { mustGetString(cmd, "nonexistent_flag") })
	assert.Panics(t, func() { mustGetBool(cmd, "nonexistent_flag") })

	cmd.Flags().String("name", "", "test")
	cmd.Flags().Bool("on", false, "test")
	require.NoError(t, cmd.Flags().Set("name", "value"))
	require.NoError(t, cmd.Flags().Set("on", "true"))
	assert.Equal(t, "value", mustGetString(cmd, "name"))
	assert.True(t, mustGetBool(cmd, "on"))
}
