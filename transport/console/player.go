package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
)

const helpText = "type a cell number to play, r to reset, q to quit"

// Play - reads commands from in until it ends, "q" is typed or ctx is done.
// Cell numbers go through the grid as activation events, like clicks in the browser.
func Play(ctx context.Context, in io.Reader, out io.Writer, game *tictactoe.Game, presenter *Presenter) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, helpText)

	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil
		}

		command := strings.TrimSpace(scanner.Text())

		switch command {
		case "":
			continue
		case "q", "quit":
			return nil
		case "r", "reset":
			if presenter.ResetVisible() {
				game.StartGame()
			}
			continue
		}

		id, err := strconv.Atoi(command)
		if err != nil {
			fmt.Fprintln(out, helpText)
			continue
		}

		game.Grid().Activate(id)
	}
}
