package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Dosada05/zone-cup/metrics"
	"github.com/Dosada05/zone-cup/models"
	"github.com/Dosada05/zone-cup/repositories"
	"github.com/Dosada05/zone-cup/storage"
)

const exportPrefix = "exports/"

type ExportService interface {
	ExportSnapshot(ctx context.Context) (*storage.UploadResult, error)
	ListExports(ctx context.Context) ([]storage.ObjectInfo, error)
	DeleteExport(ctx context.Context, key string) error
}

// Snapshot is the JSON document written to object storage.
type Snapshot struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Overview    *models.Overview `json:"overview"`
	Teams       []models.Team    `json:"teams"`
	Matches     []models.Match   `json:"matches"`
	Bracket     *models.Bracket  `json:"bracket"`
}

type exportService struct {
	teamRepo   repositories.TeamRepository
	matchRepo  repositories.MatchRepository
	tournament TournamentService
	bracket    BracketService
	uploader   storage.FileUploader
	now        func() time.Time
	logger     *slog.Logger
}

// NewExportService accepts a nil uploader; exports then fail with ErrExportDisabled.
func NewExportService(
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
	tournament TournamentService,
	bracket BracketService,
	uploader storage.FileUploader,
	logger *slog.Logger,
) ExportService {
	return &exportService{
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		tournament: tournament,
		bracket:    bracket,
		uploader:   uploader,
		now:        time.Now,
		logger:     loggerOrDefault(logger),
	}
}

func (s *exportService) ExportSnapshot(ctx context.Context) (*storage.UploadResult, error) {
	if s.uploader == nil {
		return nil, ErrExportDisabled
	}

	overview, err := s.tournament.Overview(ctx)
	if err != nil {
		return nil, err
	}
	bracket, err := s.bracket.GetBracket(ctx)
	if err != nil {
		return nil, err
	}
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := s.matchRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.MarshalIndent(Snapshot{
		GeneratedAt: s.now().UTC(),
		Overview:    overview,
		Teams:       teams,
		Matches:     matches,
		Bracket:     bracket,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	key := exportPrefix + uuid.NewString() + ".json"
	result, err := s.uploader.Upload(ctx, key, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	metrics.ExportsUploaded.Inc()
	s.logger.InfoContext(ctx, "Snapshot exported", slog.String("key", result.Key), slog.String("location", result.Location))
	return result, nil
}

func (s *exportService) DeleteExport(ctx context.Context, key string) error {
	if s.uploader == nil {
		return ErrExportDisabled
	}
	if !strings.HasPrefix(key, exportPrefix) || strings.Contains(key, "..") {
		return fieldError("key", "must name an export")
	}
	return s.uploader.Delete(ctx, key)
}

// ListExports returns stored snapshots, newest first.
func (s *exportService) ListExports(ctx context.Context) ([]storage.ObjectInfo, error) {
	if s.uploader == nil {
		return nil, ErrExportDisabled
	}
	objects, err := s.uploader.List(ctx, exportPrefix)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].LastModified.After(objects[j].LastModified)
	})
	return objects, nil
}
