package session

import (
	"bytes"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func newTestManager() *Manager {
	cfg := config.NewConfigBuilder().WithVerbosity(0).Build()
	return NewManager(cfg)
}

func TestCreateAndGet(t *testing.T) {
	m := newTestManager()
	id := m.Create()

	_, err := uuid.Parse(id)
	testutil.AssertNoError(t, err, "id %q is a uuid", id)

	snap, err := m.Get(id)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, snap.ID, id)
	testutil.AssertEqual(t, snap.FEN, engine.InitialFEN)
	testutil.AssertEqual(t, snap.CurrentPlayer, chess.White)
	testutil.AssertEqual(t, snap.Status, engine.InProgress)
	testutil.AssertNil(t, snap.Result)
	testutil.AssertEqual(t, snap.Ply, 0)
	testutil.AssertEqual(t, m.Len(), 1)
}

func TestCreateFromFEN(t *testing.T) {
	m := newTestManager()

	id, err := m.CreateFromFEN("4k3/8/8/8/8/8/8/R3K3 b - - 3 40")
	testutil.AssertNoError(t, err)
	snap, err := m.Get(id)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, snap.CurrentPlayer, chess.Black)
	testutil.AssertEqual(t, snap.FEN, "4k3/8/8/8/8/8/8/R3K3 b - - 3 40")

	_, err = m.CreateFromFEN("not a fen")
	testutil.AssertTrue(t, errors.Is(err, chesserrors.ErrInvalidFEN), "got %v", err)
	testutil.AssertEqual(t, m.Len(), 1)
}

func TestMove(t *testing.T) {
	m := newTestManager()
	id := m.Create()

	snap, err := m.Move(id, "e2e4")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, snap.CurrentPlayer, chess.Black)
	testutil.AssertEqual(t, snap.Ply, 1)
	testutil.AssertEqual(t, snap.StateString, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq -")

	snap, err = m.Move(id, "e2e4")
	var moveErr *chesserrors.MoveError
	if !errors.As(err, &moveErr) {
		t.Fatalf("Move error %v is not a *MoveError", err)
	}
	testutil.AssertEqual(t, moveErr.GameID, id)
	testutil.AssertEqual(t, moveErr.Ply, 2)
	testutil.AssertTrue(t, errors.Is(err, chesserrors.ErrIllegalMove))
	testutil.AssertContains(t, err.Error(), "game "+id)
	testutil.AssertEqual(t, snap.Ply, 1, "rejected move leaves the game as it was")
}

func TestMoveUntilMate(t *testing.T) {
	buf := &bytes.Buffer{}
	m := NewManager(config.NewConfigBuilder().WithLog(buf).WithVerbosity(1).Build())
	id := m.Create()

	var snap Snapshot
	var err error
	for _, text := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		snap, err = m.Move(id, text)
		testutil.AssertNoError(t, err, text)
	}
	testutil.AssertEqual(t, snap.Status, engine.StatusCheckmate)
	testutil.AssertEqual(t, *snap.Result, engine.Win(chess.Black, engine.Checkmate))
	testutil.AssertContains(t, buf.String(), "finished: 0-1 Checkmate")

	moves, err := m.LegalMoves(id)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(moves), 0)

	_, err = m.Move(id, "e2e4")
	testutil.AssertTrue(t, errors.Is(err, chesserrors.ErrGameOver), "got %v", err)
}

func TestLegalMoves(t *testing.T) {
	m := newTestManager()
	id := m.Create()

	moves, err := m.LegalMoves(id)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(moves), 20)
	testutil.AssertTrue(t, sort.StringsAreSorted(moves), "moves sorted")
}

func TestUnknownGame(t *testing.T) {
	m := newTestManager()

	_, err := m.Get("missing")
	testutil.AssertTrue(t, errors.Is(err, chesserrors.ErrUnknownGame))
	_, err = m.Move("missing", "e2e4")
	testutil.AssertTrue(t, errors.Is(err, chesserrors.ErrUnknownGame))
	_, err = m.LegalMoves("missing")
	testutil.AssertTrue(t, errors.Is(err, chesserrors.ErrUnknownGame))
	testutil.AssertTrue(t, errors.Is(m.Remove("missing"), chesserrors.ErrUnknownGame))
}

func TestRemoveAndIDs(t *testing.T) {
	m := newTestManager()
	ids := []string{m.Create(), m.Create(), m.Create()}

	got := m.IDs()
	testutil.AssertTrue(t, sort.StringsAreSorted(got), "IDs sorted")
	sort.Strings(ids)
	testutil.AssertEqual(t, got, ids)

	testutil.AssertNoError(t, m.Remove(ids[1]))
	testutil.AssertEqual(t, m.Len(), 2)
	testutil.AssertEqual(t, m.IDs(), []string{ids[0], ids[2]})

	_, err := m.Get(ids[1])
	testutil.AssertTrue(t, errors.Is(err, chesserrors.ErrUnknownGame))
}

func TestPositionsSeen(t *testing.T) {
	m := newTestManager()
	a, b := m.Create(), m.Create()
	testutil.AssertEqual(t, m.PositionsSeen(), 1, "both games start in the same position")

	_, err := m.Move(a, "e2e4")
	testutil.AssertNoError(t, err)
	_, err = m.Move(b, "e2e4")
	testutil.AssertNoError(t, err)
	_, err = m.Move(b, "c7c5")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.PositionsSeen(), 3)
}

func TestConcurrentGames(t *testing.T) {
	m := newTestManager()
	const numGames = 8
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}

	var wg sync.WaitGroup
	errs := make(chan error, numGames*len(shuffle))
	for i := 0; i < numGames; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := m.Create()
			for _, text := range shuffle {
				if _, err := m.Move(id, text); err != nil {
					errs <- err
				}
			}
			_ = m.IDs()
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent move: %v", err)
	}
	testutil.AssertEqual(t, m.Len(), numGames)
	for _, id := range m.IDs() {
		snap, err := m.Get(id)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, snap.FEN, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 4 3")
	}
}

func TestNewManagerNilConfig(t *testing.T) {
	m := NewManager(nil)
	id := m.Create()
	_, err := m.Move(id, "a2a5")
	testutil.AssertError(t, err)
}
