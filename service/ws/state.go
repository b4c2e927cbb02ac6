package ws

// ConnState WebSocketセッションの状態
type ConnState int

const (
	// StateConnecting ハンドシェイク中
	StateConnecting ConnState = iota
	// StateOpen 接続中
	StateOpen
	// StateClosed 切断済み
	StateClosed
)

func (s ConnState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// canTransitionTo Connecting -> Open -> Closed 以外の遷移は許可しない
func (s ConnState) canTransitionTo(to ConnState) bool {
	switch s {
	case StateConnecting:
		return to == StateOpen || to == StateClosed
	case StateOpen:
		return to == StateClosed
	default:
		return false
	}
}
