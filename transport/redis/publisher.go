package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

const publishTimeout = 2 * time.Second

const (
	EventCellRender   = "cell:render"
	EventGridRender   = "grid:render"
	EventStatusUpdate = "status:update"
	EventResetShow    = "reset:show"
	EventResetHide    = "reset:hide"
)

// Event is one presentation notification as it appears on the channel.
type Event struct {
	GameID string        `json:"game_id"`
	Type   string        `json:"type"`
	Cell   *entity.Cell  `json:"cell,omitempty"`
	Size   int           `json:"size,omitempty"`
	Cells  []entity.Cell `json:"cells,omitempty"`
	Text   *string       `json:"text,omitempty"`
}

// Channel - name of the pub/sub channel a game's events go to.
func Channel(prefix, gameID string) string {
	return prefix + ":" + gameID
}

// Publisher mirrors a game's presentation onto a Redis channel. Nothing is stored:
// subscribers that are not listening miss the events.
type Publisher struct {
	ctx     context.Context
	logger  *slog.Logger
	client  *redis.Client
	gameID  string
	channel string
}

func NewPublisher(ctx context.Context, logger *slog.Logger, client *redis.Client, prefix, gameID string) *Publisher {
	return &Publisher{
		ctx:     ctx,
		logger:  logger.With("component", "redis-publisher", "gameID", gameID),
		client:  client,
		gameID:  gameID,
		channel: Channel(prefix, gameID),
	}
}

func (that *Publisher) RenderCell(cell *entity.Cell) {
	snapshot := *cell
	that.publish(Event{Type: EventCellRender, Cell: &snapshot})
}

func (that *Publisher) RenderGrid(grid *entity.Grid) {
	cells := make([]entity.Cell, 0, len(grid.Cells()))
	for _, cell := range grid.Cells() {
		cells = append(cells, *cell)
	}

	that.publish(Event{Type: EventGridRender, Size: grid.Size(), Cells: cells})
}

func (that *Publisher) UpdateStatusMessage(text string) {
	that.publish(Event{Type: EventStatusUpdate, Text: &text})
}

func (that *Publisher) ShowResetControl() {
	that.publish(Event{Type: EventResetShow})
}

func (that *Publisher) HideResetControl() {
	that.publish(Event{Type: EventResetHide})
}

func (that *Publisher) publish(event Event) {
	event.GameID = that.gameID

	if err := that.send(event); err != nil {
		that.logger.Error("failed to publish event", "type", event.Type, "error", err)
	}
}

func (that *Publisher) send(event Event) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(that.ctx, publishTimeout)
	defer cancel()

	if err = that.client.Publish(ctx, that.channel, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", that.channel, err)
	}

	return nil
}

// Subscribe - listens to a game's events until ctx is done or the subscription closes.
func Subscribe(ctx context.Context, client *redis.Client, prefix, gameID string) (<-chan Event, func() error, error) {
	pubsub := client.Subscribe(ctx, Channel(prefix, gameID))

	// wait for the subscription to be confirmed so no event published afterwards is lost
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	events := make(chan Event)

	go func() {
		defer close(events)

		for msg := range pubsub.Channel() {
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				continue
			}

			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, pubsub.Close, nil
}
