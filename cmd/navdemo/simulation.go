package main

import (
	"fmt"

	"github.com/go-mclib/client/nav"
	"github.com/go-mclib/client/pkg/client"
	"github.com/go-mclib/client/pkg/client/host"
	"github.com/go-mclib/client/pkg/client/modules/physics"
	"github.com/go-mclib/client/pkg/client/modules/self"
)

// tickMsg is one physics tick's worth of navigation state, pushed across
// the channel a bubbletea Cmd blocks on. physics.Module ticks on its own
// goroutine (see physics.Module.startTickLoop), so this is the hand-off
// point between that goroutine and the TUI's update loop.
type tickMsg struct {
	tick     int64
	state    nav.ExecState
	x, y, z  float64
	yaw      float64
	err      error
	finished bool
}

// simulation owns the agent, the executor, and the channel that carries
// per-tick snapshots to the TUI.
type simulation struct {
	client   *client.Client
	adapter  *host.Adapter
	exec     *nav.Executor
	goal     nav.Goal
	maxTicks int

	ticks   int64
	updates chan tickMsg
}

func newSimulation(c *client.Client, adapter *host.Adapter, exec *nav.Executor, goal nav.Goal, maxTicks int) *simulation {
	return &simulation{
		client:   c,
		adapter:  adapter,
		exec:     exec,
		goal:     goal,
		maxTicks: maxTicks,
		updates:  make(chan tickMsg, 64),
	}
}

// start wires the physics module's tick callback to drive the adapter's
// clock and the executor's step, then kicks the agent's spawn hook, which
// is what actually starts physics' tick goroutine.
func (s *simulation) start() {
	selfMod := self.From(s.client)
	phys := physics.From(s.client)

	if err := s.exec.NavigateTo(s.goal); err != nil {
		s.updates <- tickMsg{err: err, finished: true}
		return
	}

	phys.OnTick(func() {
		s.ticks++
		s.adapter.Tick()
		state := s.exec.Tick()

		x, y, z := s.adapter.AgentPosition()
		msg := tickMsg{
			tick:  s.ticks,
			state: state,
			x:     x, y: y, z: z,
			yaw: s.adapter.Yaw(),
		}

		finished := state == nav.ExecSucceeded || state == nav.ExecFailed || s.ticks >= int64(s.maxTicks)
		if finished {
			msg.finished = true
			if state == nav.ExecFailed {
				msg.err = s.exec.LastError()
			} else if s.ticks >= int64(s.maxTicks) {
				msg.err = fmt.Errorf("exceeded %d ticks without reaching the goal", s.maxTicks)
			}
		}

		select {
		case s.updates <- msg:
		default:
			// UI fell behind; drop the tick rather than block the physics
			// goroutine.
		}
	})

	selfMod.Spawn()
}
