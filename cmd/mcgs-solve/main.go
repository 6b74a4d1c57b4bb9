// Command mcgs-solve builds a sum-game from one or more sub-game
// specifications given on the command line and reports whether the player
// to move has a winning strategy.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/herohde/mcgs/pkg/cgt"
	"github.com/herohde/mcgs/pkg/games/clobber"
	"github.com/herohde/mcgs/pkg/games/domineering"
	"github.com/herohde/mcgs/pkg/games/elephants"
	"github.com/herohde/mcgs/pkg/games/nogo1xn"
	"github.com/herohde/mcgs/pkg/search"
	"github.com/herohde/mcgs/pkg/search/searchctl"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

type gameList []string

func (g *gameList) String() string { return strings.Join(*g, ",") }
func (g *gameList) Set(v string) error {
	*g = append(*g, v)
	return nil
}

var (
	games    gameList
	toPlay   = flag.String("toplay", "X", "Player to move first: X (Black) or O (White)")
	deadline = flag.Duration("deadline", 0, "Abort the search after this long (zero means no deadline)")
	ttSizeMB = flag.Uint64("tt", 0, "Transposition table size in MB (zero disables caching)")
)

func init() {
	flag.Var(&games, "game", "A sub-game spec \"kind:board\", e.g. -game clobber:XO|OX. Repeatable.")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `usage: mcgs-solve -game kind:board [-game kind:board ...] [options]

mcgs-solve %v is an exact win/loss solver for sums of combinatorial games.
Supported kinds: clobber, nogo1xn, elephants, domineering.

Options:
`, version)
		flag.PrintDefaults()
	}
}

func parseColor(s string) cgt.Color {
	switch strings.ToUpper(s) {
	case "X", "BLACK":
		return cgt.Black
	case "O", "WHITE":
		return cgt.White
	default:
		panic(fmt.Sprintf("mcgs-solve: invalid player %q", s))
	}
}

func buildGame(spec string) cgt.Game {
	kind, board, ok := strings.Cut(spec, ":")
	if !ok {
		logw.Exitf(context.Background(), "invalid -game spec %q, want kind:board", spec)
	}

	switch kind {
	case "clobber":
		return clobber.New(board)
	case "nogo1xn":
		return nogo1xn.New(board)
	case "elephants":
		return elephants.New(board)
	case "domineering":
		return domineering.New(board)
	default:
		logw.Exitf(context.Background(), "unknown game kind %q", kind)
		return nil
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if len(games) == 0 {
		flag.Usage()
		logw.Exitf(ctx, "at least one -game is required")
	}

	sum := cgt.NewSum(parseColor(*toPlay))
	for _, spec := range games {
		sum.Add(buildGame(spec))
	}

	deadlineCtl := searchctl.NewDeadline()
	var deadlineBudget lang.Optional[time.Duration]
	if *deadline > 0 {
		deadlineBudget = lang.Some(*deadline)
	}
	deadlineCtl.ArmTimer(ctx, deadlineBudget)

	// A supervising process can abort the search without killing us.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGQUIT)
	go func() {
		<-quit
		logw.Infof(ctx, "Received SIGQUIT; halting search")
		deadlineCtl.Halt()
	}()

	var tt search.TranspositionTable = search.NoTranspositionTable{}
	if *ttSizeMB > 0 {
		tt = search.NewTranspositionTable(ctx, *ttSizeMB<<20)
	}

	start := time.Now()
	win, err := search.SolveWithOptions(ctx, sum, deadlineCtl, tt)
	elapsed := time.Since(start)

	if err != nil {
		logw.Exitf(ctx, "search did not complete: %v", err)
	}

	result := "loses"
	if win {
		result = "wins"
	}
	logw.Infof(ctx, "Solved %v sub-game(s) in %v: %v to move %v", sum.NumTotalGames(), elapsed, *toPlay, result)
	fmt.Println(win)
}
