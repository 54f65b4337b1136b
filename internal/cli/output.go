package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case Match:
		o.printMatch(v)
	case MatchResult:
		o.printMatchResult(v)
	case MoveResult:
		o.printMoveResult(v)
	case MoveSubmitResult:
		o.printMoveSubmitResult(v)
	case LegalMovesResult:
		o.printLegalMoves(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
	IsCPU       bool   `json:"is_cpu,omitempty"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// Move response type
type Move struct {
	BoardX int `json:"board_x"`
	BoardY int `json:"board_y"`
	CellX  int `json:"cell_x"`
	CellY  int `json:"cell_y"`
}

func (m Move) String() string {
	return fmt.Sprintf("board (%d,%d) cell (%d,%d)", m.BoardX, m.BoardY, m.CellX, m.CellY)
}

// Constraint response type
type Constraint struct {
	Any    bool `json:"any"`
	BoardX int  `json:"board_x,omitempty"`
	BoardY int  `json:"board_y,omitempty"`
}

func (c Constraint) String() string {
	if c.Any {
		return "any open board"
	}
	return fmt.Sprintf("board (%d,%d)", c.BoardX, c.BoardY)
}

// BoardState response type
type BoardState struct {
	Cells     []string   `json:"cells"`
	Winners   []string   `json:"winners"`
	ToMove    string     `json:"to_move"`
	Active    Constraint `json:"active"`
	Status    string     `json:"status"`
	Winner    string     `json:"winner,omitempty"`
	LastMove  *Move      `json:"last_move,omitempty"`
	MoveCount int        `json:"move_count"`
}

// CellAt returns the mark at global grid coordinates, where column gx and
// row gy each run 0-8 across the full position.
func (b *BoardState) CellAt(gx, gy int) string {
	bx, cx := gx/3, gx%3
	by, cy := gy/3, gy%3
	idx := (bx*3+by)*9 + (cx*3 + cy)
	if idx < 0 || idx >= len(b.Cells) {
		return ""
	}
	return b.Cells[idx]
}

// WinnerAt returns the winner of small board (bx, by), or "".
func (b *BoardState) WinnerAt(bx, by int) string {
	idx := bx*3 + by
	if idx < 0 || idx >= len(b.Winners) {
		return ""
	}
	return b.Winners[idx]
}

// MoveResult response type
type MoveResult struct {
	Move           Move       `json:"move"`
	Mark           string     `json:"mark"`
	BoardWon       bool       `json:"board_won"`
	BoardDrawn     bool       `json:"board_drawn"`
	GameWon        bool       `json:"game_won"`
	GameDrawn      bool       `json:"game_drawn"`
	NextConstraint Constraint `json:"next_constraint"`
	NextToMove     string     `json:"next_to_move,omitempty"`
}

// Match response type
type Match struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	Board       BoardState `json:"board"`
	SeatX       string     `json:"seat_x,omitempty"`
	SeatO       string     `json:"seat_o,omitempty"`
	CPUSeat     string     `json:"cpu_seat,omitempty"`
	CPUStrategy string     `json:"cpu_strategy,omitempty"`
	ResignedBy  string     `json:"resigned_by,omitempty"`
}

// MatchResult wraps a match with any CPU moves that were played
type MatchResult struct {
	Match    Match        `json:"match"`
	CPUMoves []MoveResult `json:"cpu_moves,omitempty"`
}

// MoveSubmitResult is the response to a submitted move
type MoveSubmitResult struct {
	Result   MoveResult   `json:"result"`
	CPUMoves []MoveResult `json:"cpu_moves,omitempty"`
	Match    Match        `json:"match"`
}

// LegalMovesResult response type
type LegalMovesResult struct {
	Moves []Move `json:"moves"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.DisplayName, p.ID)
	guestStr := "no"
	if p.IsGuest {
		guestStr = "yes"
	}
	fmt.Printf("Guest: %s\n", guestStr)
	if p.IsCPU {
		fmt.Println("CPU: yes")
	}
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printMatch(m Match) {
	fmt.Printf("Match: %s\n", m.ID)
	fmt.Printf("Status: %s\n", m.Status)
	if m.SeatX != "" {
		fmt.Printf("X: %s\n", m.SeatX)
	}
	if m.SeatO != "" {
		fmt.Printf("O: %s\n", m.SeatO)
	}
	if m.CPUSeat != "" {
		fmt.Printf("CPU seat: %s (%s)\n", m.CPUSeat, m.CPUStrategy)
	}

	fmt.Println()
	o.printBoard(&m.Board)

	switch m.Board.Status {
	case "won":
		if m.ResignedBy != "" {
			fmt.Printf("\n%s wins by resignation\n", m.Board.Winner)
		} else {
			fmt.Printf("\n%s wins!\n", m.Board.Winner)
		}
	case "drawn":
		fmt.Println("\nDraw")
	default:
		fmt.Printf("\nTo move: %s\n", m.Board.ToMove)
		fmt.Printf("Play in: %s\n", m.Board.Active)
	}
	fmt.Printf("Moves played: %d\n", m.Board.MoveCount)
}

func (o *Output) printMatchResult(r MatchResult) {
	for _, mv := range r.CPUMoves {
		fmt.Printf("CPU (%s) played %s\n", mv.Mark, mv.Move)
	}
	o.printMatch(r.Match)
}

func (o *Output) printMoveResult(r MoveResult) {
	fmt.Printf("%s played %s\n", r.Mark, r.Move)
	if r.BoardWon {
		fmt.Printf("%s takes board (%d,%d)!\n", r.Mark, r.Move.BoardX, r.Move.BoardY)
	}
	if r.BoardDrawn {
		fmt.Printf("Board (%d,%d) is drawn\n", r.Move.BoardX, r.Move.BoardY)
	}
	switch {
	case r.GameWon:
		fmt.Printf("%s wins the game!\n", r.Mark)
	case r.GameDrawn:
		fmt.Println("The game is a draw")
	default:
		fmt.Printf("Next: %s in %s\n", r.NextToMove, r.NextConstraint)
	}
}

func (o *Output) printMoveSubmitResult(r MoveSubmitResult) {
	o.printMoveResult(r.Result)
	for _, mv := range r.CPUMoves {
		fmt.Printf("CPU (%s) played %s\n", mv.Mark, mv.Move)
		if mv.BoardWon {
			fmt.Printf("%s takes board (%d,%d)!\n", mv.Mark, mv.Move.BoardX, mv.Move.BoardY)
		}
		switch {
		case mv.GameWon:
			fmt.Printf("%s wins the game!\n", mv.Mark)
		case mv.GameDrawn:
			fmt.Println("The game is a draw")
		}
	}
	fmt.Println()
	o.printMatch(r.Match)
}

func (o *Output) printLegalMoves(r LegalMovesResult) {
	fmt.Printf("Legal moves (%d):\n", len(r.Moves))
	for _, m := range r.Moves {
		fmt.Printf("  - %s\n", m)
	}
}

// printBoard renders the position as a 9x9 grid with small-board borders,
// followed by a 3x3 overview of decided boards.
func (o *Output) printBoard(b *BoardState) {
	fmt.Println("     0 1 2   3 4 5   6 7 8")
	for gy := 0; gy < 9; gy++ {
		if gy%3 == 0 {
			fmt.Println("   +-------+-------+-------+")
		}
		fmt.Printf(" %d ", gy)
		for gx := 0; gx < 9; gx++ {
			if gx%3 == 0 {
				fmt.Print("| ")
			}
			cell := b.CellAt(gx, gy)
			if cell == "" {
				cell = "."
			}
			fmt.Printf("%s ", cell)
		}
		fmt.Println("|")
	}
	fmt.Println("   +-------+-------+-------+")

	decided := false
	for i := range b.Winners {
		if b.Winners[i] != "" {
			decided = true
			break
		}
	}
	if decided {
		fmt.Println("\nBoards won:")
		for by := 0; by < 3; by++ {
			fmt.Print("  ")
			for bx := 0; bx < 3; bx++ {
				w := b.WinnerAt(bx, by)
				if w == "" {
					w = "."
				}
				fmt.Printf(" %s", w)
			}
			fmt.Println()
		}
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
