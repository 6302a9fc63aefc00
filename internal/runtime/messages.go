package runtime

// Messages delivered to the host program's update loop. Everything an
// instance reacts to after mount arrives through these, so all widget work
// runs serialized on the single update goroutine in delivery order.

// EnvelopeMsg carries one raw inbound push frame for an instance.
type EnvelopeMsg struct {
	ID  int
	Raw []byte
}

// OpenedMsg reports that an instance's push connection opened.
type OpenedMsg struct {
	ID int
}

// ClosedMsg reports that an instance's push connection closed.
type ClosedMsg struct {
	ID int
}

// ConnErrMsg reports a connection error. The connection stays closed; there
// is no retry.
type ConnErrMsg struct {
	ID  int
	Err error
}

// FrameMsg requests one animation frame for an instance. Gen identifies the
// frame chain; stale generations are dropped, which is how unmount cancels
// outstanding frames synchronously.
type FrameMsg struct {
	ID  int
	Gen int
}
