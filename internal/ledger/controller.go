// Package ledger implements the poker session ledger: the player registry,
// group membership, and the game lifecycle state machine with its end-game
// fold into lifetime player statistics.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hleth/pokerledger/internal/dependencies/clock"
	"github.com/hleth/pokerledger/internal/dependencies/random"
	"github.com/hleth/pokerledger/internal/model"
	"github.com/hleth/pokerledger/internal/storage"
)

// SeatRequest describes one seat for starting or joining a game
type SeatRequest struct {
	PlayerID model.PlayerID
	BuyIn    float64
}

// Ledger owns the full ledger state for one profile namespace.
//
// State lives in memory and is mirrored to storage after every committed
// mutation, so a persisted snapshot always reflects all mutations that
// preceded it. Operations are serialized behind a single mutex; each runs to
// completion before the next is accepted. Validation failures leave state
// completely untouched.
type Ledger struct {
	store   storage.Storage
	profile model.ProfileID
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	mu           sync.Mutex
	players      []model.Player
	groups       []model.Group
	games        []model.Game
	activeGameID model.GameID
}

// New creates a ledger for the given profile namespace. Call Load before
// using it.
func New(store storage.Storage, profile model.ProfileID, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Ledger {
	return &Ledger{
		store:   store,
		profile: profile,
		clock:   clk,
		random:  rnd,
		logger:  logger,
	}
}

// Load reads the persisted snapshot for this profile. Missing or malformed
// entries load as empty (handled by the storage layer); only transport
// failures surface as errors.
func (l *Ledger) Load(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	players, err := l.store.LoadPlayers(ctx, l.profile)
	if err != nil {
		return fmt.Errorf("load players: %w", err)
	}
	groups, err := l.store.LoadGroups(ctx, l.profile)
	if err != nil {
		return fmt.Errorf("load groups: %w", err)
	}
	games, err := l.store.LoadGames(ctx, l.profile)
	if err != nil {
		return fmt.Errorf("load games: %w", err)
	}
	activeID, err := l.store.LoadActiveGameID(ctx, l.profile)
	if err != nil {
		return fmt.Errorf("load active game id: %w", err)
	}

	l.players = players
	l.groups = groups
	l.games = games
	l.activeGameID = activeID

	l.logger.Info("ledger loaded",
		slog.String("profile", string(l.profile)),
		slog.Int("players", len(players)),
		slog.Int("groups", len(groups)),
		slog.Int("games", len(games)),
	)
	return nil
}

// activeGame resolves the currently open game: the game matching the stored
// hint if it is still open, otherwise whichever game (if any) is open. The
// caller must hold the mutex. Re-resolved on every operation; never cached
// across an operation boundary.
func (l *Ledger) activeGame() *model.Game {
	if l.activeGameID != "" {
		for i := range l.games {
			if l.games[i].ID == l.activeGameID && l.games[i].IsActive {
				return &l.games[i]
			}
		}
	}
	for i := range l.games {
		if l.games[i].IsActive {
			return &l.games[i]
		}
	}
	return nil
}

func (l *Ledger) playerByID(id model.PlayerID) *model.Player {
	for i := range l.players {
		if l.players[i].ID == id {
			return &l.players[i]
		}
	}
	return nil
}

// Persistence mirrors. Each saves one entry; saveGames keeps the active-game
// hint in sync with it, matching the snapshot layout.

func (l *Ledger) savePlayers(ctx context.Context) error {
	if err := l.store.SavePlayers(ctx, l.profile, l.players); err != nil {
		l.logger.Error("failed to persist players", slog.String("error", err.Error()))
		return fmt.Errorf("save players: %w", err)
	}
	return nil
}

func (l *Ledger) saveGroups(ctx context.Context) error {
	if err := l.store.SaveGroups(ctx, l.profile, l.groups); err != nil {
		l.logger.Error("failed to persist groups", slog.String("error", err.Error()))
		return fmt.Errorf("save groups: %w", err)
	}
	return nil
}

func (l *Ledger) saveGames(ctx context.Context) error {
	if err := l.store.SaveGames(ctx, l.profile, l.games); err != nil {
		l.logger.Error("failed to persist games", slog.String("error", err.Error()))
		return fmt.Errorf("save games: %w", err)
	}
	if l.activeGameID != "" {
		if err := l.store.SaveActiveGameID(ctx, l.profile, l.activeGameID); err != nil {
			return fmt.Errorf("save active game id: %w", err)
		}
	} else {
		if err := l.store.ClearActiveGameID(ctx, l.profile); err != nil {
			return fmt.Errorf("clear active game id: %w", err)
		}
	}
	return nil
}

// AddPlayer appends a new player with zeroed lifetime stats. Names need not
// be unique.
func (l *Ledger) AddPlayer(ctx context.Context, name string) (model.Player, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	player := model.Player{
		ID:   model.PlayerID(l.random.UUID()),
		Name: name,
	}
	l.players = append(l.players, player)

	if err := l.savePlayers(ctx); err != nil {
		return model.Player{}, err
	}

	l.logger.Info("player added", slog.String("player_id", string(player.ID)))
	return player, nil
}

// RenamePlayer updates the player's display name. If the player holds a seat
// in the currently open game, the seat's cached name is updated in place;
// past ended games keep the name they froze at the time. Unknown ids are a
// silent no-op.
func (l *Ledger) RenamePlayer(ctx context.Context, id model.PlayerID, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	player := l.playerByID(id)
	if player == nil {
		return nil
	}
	player.Name = name

	if err := l.savePlayers(ctx); err != nil {
		return err
	}

	if game := l.activeGame(); game != nil {
		if seat := game.Seat(id); seat != nil {
			seat.Name = name
			if err := l.saveGames(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

// DeletePlayer removes a player from the registry and from every group's
// member list. It fails with ErrPlayerSeated while the player holds an
// active (not cashed-out) seat in the open game. Past game records keep
// their seat entries; lifetime totals already folded are not unwound.
func (l *Ledger) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if game := l.activeGame(); game != nil {
		if seat := game.Seat(id); seat != nil && seat.IsActive {
			return model.ErrPlayerSeated
		}
	}

	if l.playerByID(id) == nil {
		return nil
	}

	players := l.players[:0]
	for _, p := range l.players {
		if p.ID != id {
			players = append(players, p)
		}
	}
	l.players = players

	for i := range l.groups {
		members := l.groups[i].PlayerIDs[:0]
		for _, pid := range l.groups[i].PlayerIDs {
			if pid != id {
				members = append(members, pid)
			}
		}
		l.groups[i].PlayerIDs = members
	}

	if err := l.savePlayers(ctx); err != nil {
		return err
	}
	if err := l.saveGroups(ctx); err != nil {
		return err
	}

	l.logger.Info("player deleted", slog.String("player_id", string(id)))
	return nil
}

// CreateGroup appends a new group with the given name and member set.
// Duplicate group names are allowed.
func (l *Ledger) CreateGroup(ctx context.Context, name string, memberIDs []model.PlayerID) (model.Group, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	group := model.Group{
		ID:        model.GroupID(l.random.UUID()),
		Name:      name,
		PlayerIDs: append([]model.PlayerID(nil), memberIDs...),
	}
	l.groups = append(l.groups, group)

	if err := l.saveGroups(ctx); err != nil {
		return model.Group{}, err
	}

	l.logger.Info("group created",
		slog.String("group_id", string(group.ID)),
		slog.Int("members", len(group.PlayerIDs)),
	)
	return group.Clone(), nil
}

// StartGame opens a new game with the given initial seats. It fails with
// ErrGameInProgress if a game is already open, and ErrInsufficientSeats for
// fewer than 2 seats. Seat names snapshot the players' current display
// names.
func (l *Ledger) StartGame(ctx context.Context, seats []SeatRequest) (model.Game, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.activeGame() != nil {
		return model.Game{}, model.ErrGameInProgress
	}
	if len(seats) < 2 {
		return model.Game{}, model.ErrInsufficientSeats
	}

	game := model.Game{
		ID:       model.GameID(l.random.UUID()),
		Date:     l.clock.Now(),
		IsActive: true,
		Players:  make([]model.Seat, 0, len(seats)),
	}
	for _, req := range seats {
		game.Players = append(game.Players, l.newSeat(req))
	}

	l.games = append(l.games, game)
	l.activeGameID = game.ID

	if err := l.saveGames(ctx); err != nil {
		return model.Game{}, err
	}

	l.logger.Info("game started",
		slog.String("game_id", string(game.ID)),
		slog.Int("seats", len(game.Players)),
	)
	return game.Clone(), nil
}

func (l *Ledger) newSeat(req SeatRequest) model.Seat {
	name := ""
	if p := l.playerByID(req.PlayerID); p != nil {
		name = p.Name
	}
	return model.Seat{
		PlayerID: req.PlayerID,
		Name:     name,
		BuyIn:    req.BuyIn,
		CashOut:  nil,
		IsActive: true,
	}
}

// AddPlayerToGame appends a new active seat to the open game. Silent no-op
// when no game is open, the player is unknown, or the player is already
// seated in this game.
func (l *Ledger) AddPlayerToGame(ctx context.Context, id model.PlayerID, buyIn float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	game := l.activeGame()
	if game == nil {
		return nil
	}
	if l.playerByID(id) == nil || game.HasSeat(id) {
		return nil
	}

	game.Players = append(game.Players, l.newSeat(SeatRequest{PlayerID: id, BuyIn: buyIn}))
	return l.saveGames(ctx)
}

// UpdateBuyIn adds the amount to the seat's cumulative buy-in. The caller is
// responsible for passing a positive finite amount. Silent no-op when no
// game is open or the player holds no seat in it.
func (l *Ledger) UpdateBuyIn(ctx context.Context, id model.PlayerID, amount float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	game := l.activeGame()
	if game == nil {
		return nil
	}
	seat := game.Seat(id)
	if seat == nil {
		return nil
	}

	seat.BuyIn += amount
	return l.saveGames(ctx)
}

// LeaveTable records the seat's cash-out and marks it inactive. Irreversible:
// a seat that has left cannot be reactivated. Silent no-op when no game is
// open, the player holds no seat, or the seat already left.
func (l *Ledger) LeaveTable(ctx context.Context, id model.PlayerID, cashOut float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	game := l.activeGame()
	if game == nil {
		return nil
	}
	seat := game.Seat(id)
	if seat == nil || !seat.IsActive {
		return nil
	}

	seat.CashOut = model.CashOutAmount(cashOut)
	seat.IsActive = false
	return l.saveGames(ctx)
}

// EndGame closes the open game and folds its results into every
// participating player's lifetime statistics. It fails with ErrNoActiveGame
// when nothing is open, and ErrSeatsUnresolved while any seat is still
// active without a recorded cash-out. Each participating player's four
// cumulative fields change together, exactly once, regardless of anything
// else in that game. Returns the id of the now-closed game.
func (l *Ledger) EndGame(ctx context.Context) (model.GameID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	game := l.activeGame()
	if game == nil {
		return "", model.ErrNoActiveGame
	}
	if !game.AllSeatsResolved() {
		return "", model.ErrSeatsUnresolved
	}

	for i := range l.players {
		seat := game.Seat(l.players[i].ID)
		if seat == nil {
			continue
		}
		// cash-out defaults to zero here; unreachable in practice since
		// every seat was just checked as resolved
		cashOut := seat.CashOutOrZero()
		l.players[i].TotalBuyIns += seat.BuyIn
		l.players[i].TotalCashOuts += cashOut
		l.players[i].NetProfits += cashOut - seat.BuyIn
		l.players[i].GamesPlayed++
	}

	now := l.clock.Now()
	game.IsActive = false
	game.EndedAt = &now
	endedID := game.ID
	l.activeGameID = ""

	if err := l.savePlayers(ctx); err != nil {
		return "", err
	}
	if err := l.saveGames(ctx); err != nil {
		return "", err
	}

	l.logger.Info("game ended",
		slog.String("game_id", string(endedID)),
		slog.Int("seats", len(game.Players)),
	)
	return endedID, nil
}

// Players returns a snapshot of the roster
func (l *Ledger) Players() []model.Player {
	l.mu.Lock()
	defer l.mu.Unlock()
	return model.ClonePlayers(l.players)
}

// Groups returns a snapshot of all groups
func (l *Ledger) Groups() []model.Group {
	l.mu.Lock()
	defer l.mu.Unlock()
	return model.CloneGroups(l.groups)
}

// Games returns a snapshot of all games, open and closed
func (l *Ledger) Games() []model.Game {
	l.mu.Lock()
	defer l.mu.Unlock()
	return model.CloneGames(l.games)
}

// ActiveGame returns a snapshot of the currently open game, or nil when no
// game is open
func (l *Ledger) ActiveGame() *model.Game {
	l.mu.Lock()
	defer l.mu.Unlock()
	game := l.activeGame()
	if game == nil {
		return nil
	}
	snapshot := game.Clone()
	return &snapshot
}
