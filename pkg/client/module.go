package client

// Module is a pluggable piece of agent state (world view, self, physics,
// inventory, ...). Modules are registered on a Client in dependency order
// and looked up at runtime via each package's From() helper.
type Module interface {
	// Name returns a unique key for this module (e.g. "world", "self", "physics").
	Name() string
	// Init is called once when the module is registered on a client.
	// Store the *Client reference for later use.
	Init(c *Client)
	// Reset clears module state, e.g. before a fresh run.
	Reset()
}

// Ticker is optionally implemented by modules that drive logic once per
// simulation tick. The physics module owns the tick clock and invokes
// registered OnTick callbacks. Client never calls Tick itself, and no module
// in this repository implements Ticker.
type Ticker interface {
	Tick()
}
