package player

import (
	"encoding/json"
	"errors"

	"blokus/agent"
	"blokus/communication"
)

var errNoReply = errors.New("player wrote no reply")

// Player runs a protocol client in process. Messages go through their JSON
// form so the seat sees exactly what a driver would send.
type Player struct {
	client  *communication.Client
	replies []string
}

func NewPlayer(a agent.Agent) *Player {
	p := &Player{}
	p.client = communication.NewClient(p, agent.NewSelector(a))
	return p
}

func (p *Player) Notify(m communication.Message) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	var decoded communication.Message
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	return p.client.Handle(decoded)
}

func (p *Player) Reply() (string, error) {
	if len(p.replies) == 0 {
		return "", errNoReply
	}
	line := p.replies[0]
	p.replies = p.replies[1:]
	return line, nil
}

// Receive is never called: messages are handed to the client directly.
func (p *Player) Receive() (communication.Message, error) {
	return communication.Message{}, errors.ErrUnsupported
}

func (p *Player) Send(line string) error {
	p.replies = append(p.replies, line)
	return nil
}
