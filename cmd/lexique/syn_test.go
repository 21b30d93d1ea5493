package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/avernet/lexique"
	main "github.com/avernet/lexique/cmd/lexique"
	"github.com/avernet/lexique/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func synonymPipeline(record *lexique.SynonymRecord) *mock.Pipeline {
	return &mock.Pipeline{
		RunFn: func(_ context.Context, _ string) (*lexique.Result, error) {
			return &lexique.Result{Kind: lexique.KindSynonym, Record: record}, nil
		},
	}
}

func TestSynCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints synonyms and antonyms", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Synonyms: synonymPipeline(&lexique.SynonymRecord{
				Synonyms: []string{"demeure", "logis"},
				Antonyms: []string{"dehors"},
			}),
		}

		cmd := &main.SynCmd{Term: "maison", At: -1, Pick: -1}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "* Synonymes")
		assert.Contains(t, stdout.String(), "demeure")
		assert.Contains(t, stdout.String(), "* Antonymes")
		assert.Contains(t, stdout.String(), "dehors")
	})

	t.Run("not found prints localized message without failing", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Synonyms: &mock.Pipeline{
				RunFn: func(_ context.Context, _ string) (*lexique.Result, error) {
					return nil, lexique.Errorf(lexique.ENOTFOUND, "no page")
				},
			},
		}

		cmd := &main.SynCmd{Term: "zzzz", At: -1, Pick: -1}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Aucun résultat pour « zzzz »")
	})

	t.Run("upstream failure is reported on stderr", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Synonyms: &mock.Pipeline{
				RunFn: func(_ context.Context, _ string) (*lexique.Result, error) {
					return nil, lexique.Errorf(lexique.EUNAVAILABLE, "host unreachable")
				},
			},
		}

		cmd := &main.SynCmd{Term: "maison", At: -1, Pick: -1}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, lexique.EUNAVAILABLE, lexique.ErrorCode(err))
		assert.Contains(t, stderr.String(), "host unreachable")
	})

	t.Run("replaces the picked token in the origin file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "note.txt")
		require.NoError(t, os.WriteFile(path, []byte("ma maison bleue"), 0o644))

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Synonyms: synonymPipeline(&lexique.SynonymRecord{
				Synonyms: []string{"demeure", "logis"},
			}),
		}

		cmd := &main.SynCmd{Term: "maison", ReplaceIn: path, At: 3, Pick: 1}

		err := cmd.Run(deps)

		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "ma logis bleue", string(data))
		assert.Contains(t, stdout.String(), "Replaced")
	})

	t.Run("pick without replace-in is invalid", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Synonyms: synonymPipeline(&lexique.SynonymRecord{Synonyms: []string{"demeure"}}),
		}

		cmd := &main.SynCmd{Term: "maison", At: -1, Pick: 0}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, lexique.EINVALID, lexique.ErrorCode(err))
	})

	t.Run("replace-in without at is invalid", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Synonyms: synonymPipeline(&lexique.SynonymRecord{Synonyms: []string{"demeure"}}),
		}

		cmd := &main.SynCmd{Term: "maison", ReplaceIn: "note.txt", At: -1, Pick: -1}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, lexique.EINVALID, lexique.ErrorCode(err))
	})

	t.Run("pick out of range leaves the file untouched", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "note.txt")
		require.NoError(t, os.WriteFile(path, []byte("ma maison bleue"), 0o644))

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Synonyms: synonymPipeline(&lexique.SynonymRecord{Synonyms: []string{"demeure"}}),
		}

		cmd := &main.SynCmd{Term: "maison", ReplaceIn: path, At: 3, Pick: 5}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, lexique.EINVALID, lexique.ErrorCode(err))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "ma maison bleue", string(data))
	})
}
