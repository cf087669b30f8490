package client

import (
	"log"
	"os"
)

// Client is the module registry and shared state container for a single
// agent. It owns no network connection: the host world is supplied by
// whatever Module implementations are registered (see pkg/client/modules),
// which may be backed by a real server connection, a recorded replay, or
// (as in this repository) an in-process simulated world.
type Client struct {
	Logger *log.Logger

	modules       []Module
	modulesByName map[string]Module
}

// New creates a client with no modules registered.
func New() *Client {
	return &Client{
		Logger:        log.New(os.Stdout, "", log.LstdFlags),
		modulesByName: make(map[string]Module),
	}
}

// Register adds a module to the client. Panics on duplicate name, mirroring
// the fail-fast wiring check used throughout this package.
func (c *Client) Register(m Module) {
	if _, exists := c.modulesByName[m.Name()]; exists {
		panic("module already registered: " + m.Name())
	}
	c.modules = append(c.modules, m)
	c.modulesByName[m.Name()] = m
	m.Init(c)
}

// Module returns a registered module by name, or nil.
func (c *Client) Module(name string) Module {
	return c.modulesByName[name]
}

// Reset clears all registered modules, e.g. between path-planning episodes
// in a test harness.
func (c *Client) Reset() {
	for _, m := range c.modules {
		m.Reset()
	}
}
