package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/zone-cup/storage"
)

type memoryUploader struct {
	objects map[string][]byte
	fail    error
}

func newMemoryUploader() *memoryUploader {
	return &memoryUploader{objects: make(map[string][]byte)}
}

func (u *memoryUploader) Upload(_ context.Context, key, _ string, r io.Reader) (*storage.UploadResult, error) {
	if u.fail != nil {
		return nil, u.fail
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	u.objects[key] = body
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *memoryUploader) Delete(_ context.Context, key string) error {
	delete(u.objects, key)
	return nil
}

func (u *memoryUploader) List(_ context.Context, prefix string) ([]storage.ObjectInfo, error) {
	var out []storage.ObjectInfo
	for key, body := range u.objects {
		if strings.HasPrefix(key, prefix) {
			out = append(out, storage.ObjectInfo{Key: key, Location: u.GetPublicURL(key), Size: int64(len(body))})
		}
	}
	return out, nil
}

func (u *memoryUploader) GetPublicURL(key string) string {
	return "https://cdn.example.test/" + key
}

func TestExportService_Snapshot(t *testing.T) {
	ctx := context.Background()
	env := knockoutEnv(t)
	uploader := newMemoryUploader()
	svc := NewExportService(env.teamRepo, env.matchRepo, env.tournament, env.bracket, uploader, nil)
	generated := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.(*exportService).now = func() time.Time { return generated }

	result, err := svc.ExportSnapshot(ctx)
	require.NoError(t, err)
	assert.Regexp(t, `^exports/[0-9a-f-]{36}\.json$`, result.Key)
	assert.Equal(t, "https://cdn.example.test/"+result.Key, result.Location)

	var snap Snapshot
	require.NoError(t, json.Unmarshal(uploader.objects[result.Key], &snap))
	assert.True(t, generated.Equal(snap.GeneratedAt))
	assert.Len(t, snap.Teams, 4)
	assert.Len(t, snap.Matches, 2)
	assert.Equal(t, "Semifinals", snap.Overview.Stage.Round)
	assert.Len(t, snap.Bracket.Rounds, 2)

	listed, err := svc.ListExports(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, result.Key, listed[0].Key)
	assert.Equal(t, int64(len(uploader.objects[result.Key])), listed[0].Size)

	err = svc.DeleteExport(ctx, "teams/logo.png")
	assert.ErrorIs(t, err, ErrValidationFailed)
	err = svc.DeleteExport(ctx, "exports/../secret")
	assert.ErrorIs(t, err, ErrValidationFailed)
	require.NoError(t, svc.DeleteExport(ctx, result.Key))
	assert.Empty(t, uploader.objects)
}

func TestExportService_UploadFailure(t *testing.T) {
	env := newTestEnv(t, testRules([]string{"A", "B"}, 1, 2, true))
	uploader := newMemoryUploader()
	uploader.fail = errors.New("bucket unavailable")
	svc := NewExportService(env.teamRepo, env.matchRepo, env.tournament, env.bracket, uploader, nil)

	_, err := svc.ExportSnapshot(context.Background())
	assert.ErrorIs(t, err, uploader.fail)
}

func TestExportService_Disabled(t *testing.T) {
	env := newTestEnv(t, testRules([]string{"A", "B"}, 1, 2, true))
	svc := NewExportService(env.teamRepo, env.matchRepo, env.tournament, env.bracket, nil, nil)

	_, err := svc.ExportSnapshot(context.Background())
	assert.ErrorIs(t, err, ErrExportDisabled)
	_, err = svc.ListExports(context.Background())
	assert.ErrorIs(t, err, ErrExportDisabled)
	assert.ErrorIs(t, svc.DeleteExport(context.Background(), "exports/x.json"), ErrExportDisabled)
}
