package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// playMoves plays coordinate moves in order, failing on the first error.
func playMoves(t *testing.T, game *GameState, moves ...string) {
	t.Helper()
	for _, text := range moves {
		if err := game.MakeMoveString(text); err != nil {
			t.Fatalf("MakeMoveString(%q) error: %v", text, err)
		}
	}
}

func TestNewGame(t *testing.T) {
	game := NewGame()

	testutil.AssertEqual(t, game.CurrentPlayer(), chess.White)
	testutil.AssertFalse(t, game.IsGameOver())
	testutil.AssertNil(t, game.Result())
	testutil.AssertEqual(t, game.Status(), InProgress)
	testutil.AssertEqual(t, game.StateString(), "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	testutil.AssertEqual(t, game.FEN(), InitialFEN)
	testutil.AssertEqual(t, game.Occurrences(), 1)
	testutil.AssertEqual(t, len(game.AllLegalMovesFor(chess.White)), 20)
	testutil.AssertEqual(t, len(game.AllLegalMovesFor(chess.Black)), 20)
}

func TestLegalMovesForPiece(t *testing.T) {
	game := NewGame()

	testutil.AssertMoves(t, game.LegalMovesForPiece(chess.Sq("g1")), "g1f3", "g1h3")

	testutil.AssertEqual(t, len(game.LegalMovesForPiece(chess.Sq("e4"))), 0, "empty square")
	testutil.AssertEqual(t, len(game.LegalMovesForPiece(chess.Sq("g8"))), 0, "opponent piece")
	testutil.AssertEqual(t, len(game.LegalMovesForPiece(chess.Position{Row: 9, Column: 0})), 0, "off board")

	playMoves(t, game, "e2e4")
	testutil.AssertMoves(t, game.LegalMovesForPiece(chess.Sq("g8")), "g8f6", "g8h6")
}

func TestCheckmateGameOver(t *testing.T) {
	board := testutil.PlacePieces(t, map[string]chess.Piece{
		"a8": testutil.Moved(chess.Black, chess.King),
		"h1": testutil.Moved(chess.White, chess.King),
		"b2": testutil.Moved(chess.White, chess.Queen),
		"b1": testutil.Moved(chess.White, chess.Rook),
	})
	game := NewGameState(board, chess.White)
	testutil.AssertFalse(t, game.IsGameOver())

	err := game.MakeMove(NewNormalMove(chess.Sq("b2"), chess.Sq("b7")))
	testutil.AssertNoError(t, err)

	testutil.AssertTrue(t, game.IsGameOver())
	testutil.AssertTrue(t, IsInCheck(game.Board(), chess.Black))
	testutil.AssertEqual(t, len(game.AllLegalMovesFor(chess.Black)), 0)
	testutil.AssertEqual(t, *game.Result(), Result{Winner: chess.White, Reason: Checkmate})
	testutil.AssertEqual(t, game.Status(), StatusCheckmate)
}

func TestFoolsMate(t *testing.T) {
	game := NewGame()
	playMoves(t, game, "f2f3", "e7e5", "g2g4", "d8h4")

	testutil.AssertEqual(t, *game.Result(), Win(chess.Black, Checkmate))
	testutil.AssertTrue(t, game.InCheck())
	testutil.AssertEqual(t, len(game.LegalMovesForPiece(chess.Sq("e1"))), 0)

	err := game.MakeMoveString("e2e4")
	testutil.AssertTrue(t, errors.Is(err, chesserrors.ErrGameOver), "move after mate: %v", err)
	err = game.MakeMove(NewNormalMove(chess.Sq("e2"), chess.Sq("e3")))
	testutil.AssertTrue(t, errors.Is(err, chesserrors.ErrGameOver), "MakeMove after mate: %v", err)
	testutil.AssertEqual(t, len(game.History()), 4)
}

func TestStalemateGameOver(t *testing.T) {
	game, err := NewGameFromFEN("7k/8/6K1/8/8/8/8/5Q2 w - - 0 1")
	testutil.AssertNoError(t, err)

	playMoves(t, game, "f1f7")
	testutil.AssertEqual(t, *game.Result(), Draw(Stalemate))
	testutil.AssertEqual(t, game.Status(), StatusStalemate)
	testutil.AssertFalse(t, game.InCheck())
}

func TestGameOverAtConstruction(t *testing.T) {
	game, err := NewGameFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, game.IsGameOver())
	testutil.AssertEqual(t, game.Result().Reason, Stalemate)
}

func TestInsufficientMaterialAfterCapture(t *testing.T) {
	game, err := NewGameFromFEN("4k3/8/8/8/8/8/3r4/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)

	playMoves(t, game, "e1d2")
	testutil.AssertEqual(t, *game.Result(), Draw(InsufficientMaterial))
	testutil.AssertEqual(t, game.Status(), DrawInsufficientMaterial)
}

func TestFiftyMoveRule(t *testing.T) {
	game, err := NewGameFromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 98 60")
	testutil.AssertNoError(t, err)

	playMoves(t, game, "a1a2")
	testutil.AssertFalse(t, game.IsGameOver(), "99 half-moves")
	playMoves(t, game, "e8d8")
	testutil.AssertEqual(t, game.HalfMoveClock(), 100)
	testutil.AssertEqual(t, *game.Result(), Draw(FiftyMoveRule))
	testutil.AssertEqual(t, game.Status(), DrawFiftyMove)
}

func TestMoveClocks(t *testing.T) {
	game := NewGame()

	steps := []struct {
		move     string
		wantHalf int
		wantFull int
	}{
		{"e2e4", 0, 1},
		{"e7e5", 0, 2},
		{"g1f3", 1, 2},
		{"b8c6", 2, 3},
		{"f3e5", 0, 3},
		{"c6e5", 0, 4},
		{"f1e2", 1, 4},
	}
	for _, step := range steps {
		playMoves(t, game, step.move)
		testutil.AssertEqual(t, game.HalfMoveClock(), step.wantHalf, "half-move clock after %s", step.move)
		testutil.AssertEqual(t, game.FullMoveNumber(), step.wantFull, "full-move number after %s", step.move)
	}
	testutil.AssertEqual(t, game.FEN(), "r1bqkbnr/pppp1ppp/8/4n3/4P3/8/PPPPBPPP/RNBQK2R b KQkq - 1 4")
}

func TestThreefoldRepetition(t *testing.T) {
	game := NewGame()
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}

	playMoves(t, game, shuffle...)
	testutil.AssertEqual(t, game.Occurrences(), 2)
	testutil.AssertFalse(t, game.IsGameOver())

	playMoves(t, game, shuffle[:3]...)
	testutil.AssertFalse(t, game.IsGameOver(), "one move short of the third occurrence")

	playMoves(t, game, shuffle[3])
	testutil.AssertEqual(t, game.Occurrences(), 3)
	testutil.AssertEqual(t, *game.Result(), Draw(ThreefoldRepetition))
	testutil.AssertEqual(t, game.Status(), DrawRepetition)
}

func TestRepetitionCountsPositions(t *testing.T) {
	game := NewGame()
	// A longer route back to the start is still the same position.
	playMoves(t, game, "g1f3", "g8f6", "f3g5", "f6g4", "g5f3", "g4f6", "f3g1", "f6g8")
	testutil.AssertEqual(t, game.Occurrences(), 2)
	testutil.AssertFalse(t, game.IsGameOver())
}

func TestMakeMoveErrors(t *testing.T) {
	tests := []struct {
		name     string
		play     func(*GameState) error
		wantErr  error
		wantText string
	}{
		{
			name:    "nil move",
			play:    func(g *GameState) error { return g.MakeMove(nil) },
			wantErr: chesserrors.ErrIllegalMove,
		},
		{
			name:     "unreachable destination",
			play:     func(g *GameState) error { return g.MakeMove(NewNormalMove(chess.Sq("e2"), chess.Sq("e5"))) },
			wantErr:  chesserrors.ErrIllegalMove,
			wantText: "e2e5",
		},
		{
			name:     "opponent's piece",
			play:     func(g *GameState) error { return g.MakeMoveString("e7e5") },
			wantErr:  chesserrors.ErrIllegalMove,
			wantText: "e7e5",
		},
		{
			name:     "empty square",
			play:     func(g *GameState) error { return g.MakeMoveString("e4e5") },
			wantErr:  chesserrors.ErrIllegalMove,
			wantText: "e4e5",
		},
		{
			name:     "malformed text",
			play:     func(g *GameState) error { return g.MakeMoveString("castle") },
			wantErr:  chesserrors.ErrIllegalMove,
			wantText: "castle",
		},
		{
			name:     "bad promotion letter",
			play:     func(g *GameState) error { return g.MakeMoveString("e2e4k") },
			wantErr:  chesserrors.ErrInvalidPromotion,
			wantText: "e2e4k",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			game := NewGame()
			err := tt.play(game)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			var moveErr *chesserrors.MoveError
			if !errors.As(err, &moveErr) {
				t.Fatalf("error %v is not a *MoveError", err)
			}
			testutil.AssertEqual(t, moveErr.Ply, 1)
			testutil.AssertEqual(t, moveErr.MoveText, tt.wantText)
			testutil.AssertEqual(t, game.CurrentPlayer(), chess.White, "failed move leaves the game untouched")
			testutil.AssertEqual(t, len(game.History()), 0)
		})
	}
}

func TestPromotion(t *testing.T) {
	const fen = "8/P7/8/8/8/8/8/k6K w - - 0 1"

	tests := []struct {
		text string
		want chess.PieceKind
	}{
		{"a7a8", chess.Queen},
		{"a7a8q", chess.Queen},
		{"a7a8r", chess.Rook},
		{"a7a8b", chess.Bishop},
		{"a7a8n", chess.Knight},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			game, err := NewGameFromFEN(fen)
			testutil.AssertNoError(t, err)
			playMoves(t, game, tt.text)

			piece := game.Board().At(chess.Sq("a8"))
			testutil.AssertEqual(t, piece.Kind, tt.want)
			testutil.AssertEqual(t, piece.Color, chess.White)
			testutil.AssertTrue(t, game.Board().IsEmpty(chess.Sq("a7")))
			testutil.AssertEqual(t, game.HalfMoveClock(), 0)
		})
	}

	t.Run("king promotion rejected", func(t *testing.T) {
		t.Parallel()
		game, err := NewGameFromFEN(fen)
		testutil.AssertNoError(t, err)
		err = game.MakeMove(NewPawnPromotion(chess.Sq("a7"), chess.Sq("a8"), chess.King))
		testutil.AssertTrue(t, errors.Is(err, chesserrors.ErrInvalidPromotion), "got %v", err)
		testutil.AssertEqual(t, game.Board().At(chess.Sq("a7")).Kind, chess.Pawn)
	})
}

func TestHistoryIsACopy(t *testing.T) {
	game := NewGame()
	playMoves(t, game, "e2e4", "e7e5")

	history := game.History()
	history[0] = nil
	got := testutil.SortedStrings(game.History())
	if diff := cmp.Diff([]string{"e2e4", "e7e5"}, got); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestResultIsACopy(t *testing.T) {
	game := NewGame()
	playMoves(t, game, "f2f3", "e7e5", "g2g4", "d8h4")

	result := game.Result()
	result.Winner = chess.White
	testutil.AssertEqual(t, game.Result().Winner, chess.Black)
}
