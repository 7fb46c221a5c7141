package communication

import (
	"context"
	"errors"
	"fmt"
	"io"

	"blokus/agent"

	"github.com/rs/zerolog/log"
)

// Pass is written when the agent has no legal move.
const Pass = "0 0 0 0"

type Client struct {
	comm     Communicator
	selector *agent.Selector
}

func NewClient(comm Communicator, selector *agent.Selector) *Client {
	return &Client{comm: comm, selector: selector}
}

// Run handles messages until the driver closes the channel or ctx is done.
// Cancellation is noticed between messages.
func (c *Client) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m, err := c.comm.Receive()
		if errors.Is(err, io.EOF) {
			log.Debug().Msg("driver closed the input")
			return nil
		}
		if err != nil {
			return err
		}
		if err := c.Handle(m); err != nil {
			return err
		}
	}
}

// Handle applies one message and answers it when a move is requested.
func (c *Client) Handle(m Message) error {
	if m.Error != nil {
		log.Debug().Msgf("Error: %s", *m.Error)
		return nil
	}
	if m.Number != nil {
		if err := c.selector.SetNumber(*m.Number); err != nil {
			return err
		}
	}
	if m.Board != nil {
		snap, err := m.Snapshot()
		if err != nil {
			return err
		}
		if err := c.selector.InterpretState(snap); err != nil {
			return fmt.Errorf("interpret state: %w", err)
		}
	}
	if m.Move == nil || *m.Move != 1 {
		return nil
	}

	move, err := c.selector.SelectMove()
	if errors.Is(err, agent.ErrNoMove) {
		log.Debug().Msgf("player %d has no legal move, passing", c.selector.Number())
		return c.comm.Send(Pass)
	}
	if err != nil {
		return fmt.Errorf("select move: %w", err)
	}
	return c.comm.Send(move.String())
}
