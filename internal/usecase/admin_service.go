package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gosimple/slug"
	"github.com/panjf2000/ants/v2"

	"github.com/crickethub/club-api/internal/domain/announcement"
	"github.com/crickethub/club-api/internal/domain/club"
	"github.com/crickethub/club-api/internal/domain/match"
	"github.com/crickethub/club-api/internal/domain/player"
	"github.com/crickethub/club-api/internal/domain/team"
	"github.com/crickethub/club-api/internal/domain/tournament"
	"github.com/crickethub/club-api/internal/infrastructure/storage/clubstore"
	"github.com/crickethub/club-api/internal/platform/id"
	"github.com/crickethub/club-api/internal/platform/logging"
)

const importWorkerCount = 8

// AdminService is the sole write path into the club document. Each entity
// kind has its own typed constructor with its own required-field validation;
// there is deliberately no update-in-place for any entity, correction is
// delete plus recreate.
type AdminService struct {
	store  *clubstore.Store
	ids    id.Generator
	logger *logging.Logger
	now    func() time.Time
}

func NewAdminService(store *clubstore.Store, ids id.Generator, logger *logging.Logger) *AdminService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AdminService{
		store:  store,
		ids:    ids,
		logger: logger,
		now:    time.Now,
	}
}

type CreatePlayerInput struct {
	Name     string
	Username string
	Password string
}

// CreatePlayer registers a new member with zero career counters and the
// default Batsman role. Username uniqueness is not enforced at write time;
// login resolves the first match.
func (s *AdminService) CreatePlayer(ctx context.Context, in CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.CreatePlayer")
	defer span.End()

	name := strings.TrimSpace(in.Name)
	username := strings.TrimSpace(in.Username)
	if name == "" || username == "" || in.Password == "" {
		return player.Player{}, fmt.Errorf("%w: player name, username and password are required", ErrInvalidInput)
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	created := player.Player{
		ID:       newID,
		Name:     name,
		Username: username,
		Password: in.Password,
		Role:     player.RoleBatsman,
	}

	err = s.store.Update(ctx, func(doc *club.Document) error {
		doc.Players = append(doc.Players, created)
		return nil
	})
	if err != nil {
		return player.Player{}, err
	}

	s.logger.InfoContext(ctx, "player created", "player_id", created.ID, "username", username)
	return created, nil
}

type CreateTeamInput struct {
	Name      string
	ShortName string
	Logo      string
}

func (s *AdminService) CreateTeam(ctx context.Context, in CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.CreateTeam")
	defer span.End()

	name := strings.TrimSpace(in.Name)
	short := strings.TrimSpace(in.ShortName)
	if name == "" || short == "" {
		return team.Team{}, fmt.Errorf("%w: team name and short name are required", ErrInvalidInput)
	}

	logo := strings.TrimSpace(in.Logo)
	if logo == "" {
		logo = fmt.Sprintf("https://picsum.photos/seed/%s/150/150", slug.Make(short))
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	created := team.Team{
		ID:        newID,
		Name:      name,
		ShortName: short,
		Logo:      logo,
	}

	err = s.store.Update(ctx, func(doc *club.Document) error {
		doc.Teams = append(doc.Teams, created)
		return nil
	})
	if err != nil {
		return team.Team{}, err
	}

	s.logger.InfoContext(ctx, "team created", "team_id", created.ID, "short_name", short)
	return created, nil
}

type CreateTournamentInput struct {
	Name string
	Year int
}

func (s *AdminService) CreateTournament(ctx context.Context, in CreateTournamentInput) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.CreateTournament")
	defer span.End()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament name is required", ErrInvalidInput)
	}
	if in.Year <= 0 {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament year must be a positive integer", ErrInvalidInput)
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("generate tournament id: %w", err)
	}

	created := tournament.Tournament{
		ID:     newID,
		Name:   name,
		Year:   in.Year,
		Status: tournament.StatusUpcoming,
	}

	err = s.store.Update(ctx, func(doc *club.Document) error {
		doc.Tournaments = append(doc.Tournaments, created)
		return nil
	})
	if err != nil {
		return tournament.Tournament{}, err
	}

	s.logger.InfoContext(ctx, "tournament created", "tournament_id", created.ID, "year", in.Year)
	return created, nil
}

type CreateMatchInput struct {
	Stage        string
	TournamentID string
	TeamAID      string
	TeamBID      string
	Venue        string
	Date         time.Time
}

// CreateMatch schedules a fixture. Unspecified references default to the
// first known tournament and the first two teams; creation fails while fewer
// than two teams exist. Team A and B are expected to differ but this is not
// enforced, matching the rest of the referential-integrity posture.
func (s *AdminService) CreateMatch(ctx context.Context, in CreateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.CreateMatch")
	defer span.End()

	stage := strings.TrimSpace(in.Stage)
	if stage == "" {
		return match.Match{}, fmt.Errorf("%w: match stage is required", ErrInvalidInput)
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	created := match.Match{
		ID:           newID,
		TournamentID: strings.TrimSpace(in.TournamentID),
		TeamAID:      strings.TrimSpace(in.TeamAID),
		TeamBID:      strings.TrimSpace(in.TeamBID),
		Stage:        stage,
		Status:       match.StatusScheduled,
		Venue:        strings.TrimSpace(in.Venue),
		Date:         in.Date,
	}
	if created.Venue == "" {
		created.Venue = "Main Stadium"
	}
	if created.Date.IsZero() {
		created.Date = s.now()
	}

	err = s.store.Update(ctx, func(doc *club.Document) error {
		if len(doc.Teams) < 2 {
			return fmt.Errorf("%w: at least two teams must exist before scheduling a match", ErrInvalidInput)
		}
		if created.TournamentID == "" && len(doc.Tournaments) > 0 {
			created.TournamentID = doc.Tournaments[0].ID
		}
		if created.TeamAID == "" {
			created.TeamAID = doc.Teams[0].ID
		}
		if created.TeamBID == "" {
			created.TeamBID = doc.Teams[1].ID
		}
		doc.Matches = append(doc.Matches, created)
		return nil
	})
	if err != nil {
		return match.Match{}, err
	}

	s.logger.InfoContext(ctx, "match created", "match_id", created.ID, "stage", stage)
	return created, nil
}

type CreateAnnouncementInput struct {
	Text string
}

// CreateAnnouncement prepends so the collection stays newest-first.
func (s *AdminService) CreateAnnouncement(ctx context.Context, in CreateAnnouncementInput) (announcement.Announcement, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.CreateAnnouncement")
	defer span.End()

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return announcement.Announcement{}, fmt.Errorf("%w: announcement text is required", ErrInvalidInput)
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("generate announcement id: %w", err)
	}

	created := announcement.Announcement{
		ID:        newID,
		Text:      text,
		CreatedAt: s.now(),
	}

	err = s.store.Update(ctx, func(doc *club.Document) error {
		doc.Announcements = append([]announcement.Announcement{created}, doc.Announcements...)
		return nil
	})
	if err != nil {
		return announcement.Announcement{}, err
	}

	s.logger.InfoContext(ctx, "announcement created", "announcement_id", created.ID)
	return created, nil
}

// Delete removes the entity with the given id from its collection. An unknown
// id is a no-op, not an error, and the document is re-persisted either way.
// Deletes never cascade: matches referencing a removed team or tournament keep
// their dangling ids. The explicit-confirmation gate sits with the caller.
func (s *AdminService) Delete(ctx context.Context, col club.Collection, entityID string) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.Delete")
	defer span.End()

	entityID = strings.TrimSpace(entityID)
	if entityID == "" {
		return false, fmt.Errorf("%w: entity id is required", ErrInvalidInput)
	}

	removed := false
	err := s.store.Update(ctx, func(doc *club.Document) error {
		switch col {
		case club.CollectionPlayers:
			doc.Players, removed = deleteByID(doc.Players, entityID, func(p player.Player) string { return p.ID })
		case club.CollectionTeams:
			doc.Teams, removed = deleteByID(doc.Teams, entityID, func(t team.Team) string { return t.ID })
		case club.CollectionTournaments:
			doc.Tournaments, removed = deleteByID(doc.Tournaments, entityID, func(t tournament.Tournament) string { return t.ID })
		case club.CollectionMatches:
			doc.Matches, removed = deleteByID(doc.Matches, entityID, func(m match.Match) string { return m.ID })
		case club.CollectionAnnouncements:
			doc.Announcements, removed = deleteByID(doc.Announcements, entityID, func(a announcement.Announcement) string { return a.ID })
		default:
			return fmt.Errorf("%w: unknown collection %q", ErrInvalidInput, col)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	s.logger.InfoContext(ctx, "delete applied", "collection", string(col), "entity_id", entityID, "removed", removed)
	return removed, nil
}

func deleteByID[T any](items []T, entityID string, idOf func(T) string) ([]T, bool) {
	out := items[:0:0]
	removed := false
	for _, item := range items {
		if idOf(item) == entityID {
			removed = true
			continue
		}
		out = append(out, item)
	}

	return out, removed
}

// ExportDocument returns a snapshot of the full club document.
func (s *AdminService) ExportDocument(ctx context.Context) (club.Document, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.ExportDocument")
	defer span.End()

	return s.store.Snapshot(ctx), nil
}

// ImportDocument validates every entity of the supplied document across a
// worker pool, checks per-collection id uniqueness, then replaces the stored
// document whole.
func (s *AdminService) ImportDocument(ctx context.Context, doc club.Document) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.ImportDocument")
	defer span.End()

	tasks := importValidationTasks(doc)
	if len(tasks) > 0 {
		pool, err := ants.NewPool(importWorkerCount)
		if err != nil {
			return fmt.Errorf("create worker pool: %w", err)
		}
		defer pool.Release()

		errs := make(chan error, len(tasks))
		var workers sync.WaitGroup
		for _, task := range tasks {
			task := task
			workers.Add(1)
			if err := pool.Submit(func() {
				defer workers.Done()
				errs <- task()
			}); err != nil {
				workers.Done()
				return fmt.Errorf("submit validation task: %w", err)
			}
		}
		workers.Wait()
		close(errs)

		for err := range errs {
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
		}
	}

	if err := checkUniqueIDs(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.store.Replace(ctx, doc); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "document imported",
		"players", len(doc.Players),
		"teams", len(doc.Teams),
		"tournaments", len(doc.Tournaments),
		"matches", len(doc.Matches),
		"announcements", len(doc.Announcements),
	)
	return nil
}

func importValidationTasks(doc club.Document) []func() error {
	tasks := make([]func() error, 0,
		len(doc.Players)+len(doc.Teams)+len(doc.Tournaments)+len(doc.Matches)+len(doc.Announcements))

	for _, p := range doc.Players {
		p := p
		tasks = append(tasks, func() error { return p.Validate() })
	}
	for _, t := range doc.Teams {
		t := t
		tasks = append(tasks, func() error { return t.Validate() })
	}
	for _, tr := range doc.Tournaments {
		tr := tr
		tasks = append(tasks, func() error { return tr.Validate() })
	}
	for _, m := range doc.Matches {
		m := m
		tasks = append(tasks, func() error { return m.Validate() })
	}
	for _, a := range doc.Announcements {
		a := a
		tasks = append(tasks, func() error { return a.Validate() })
	}

	return tasks
}

func checkUniqueIDs(doc club.Document) error {
	collections := map[club.Collection][]string{
		club.CollectionPlayers:       idsOf(doc.Players, func(p player.Player) string { return p.ID }),
		club.CollectionTeams:         idsOf(doc.Teams, func(t team.Team) string { return t.ID }),
		club.CollectionTournaments:   idsOf(doc.Tournaments, func(t tournament.Tournament) string { return t.ID }),
		club.CollectionMatches:       idsOf(doc.Matches, func(m match.Match) string { return m.ID }),
		club.CollectionAnnouncements: idsOf(doc.Announcements, func(a announcement.Announcement) string { return a.ID }),
	}

	for col, ids := range collections {
		seen := make(map[string]struct{}, len(ids))
		for _, entityID := range ids {
			if _, dup := seen[entityID]; dup {
				return fmt.Errorf("duplicate id %q in collection %s", entityID, col)
			}
			seen[entityID] = struct{}{}
		}
	}

	return nil
}

func idsOf[T any](items []T, idOf func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, idOf(item))
	}
	return out
}
