package ws

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

func (s *session) commandHandler(cmd string) {
	args := strings.Split(strings.TrimSpace(cmd), ":")

	switch strings.ToLower(args[0]) {
	case OnlineUsersEvent:
		// online-users
		s.sendOnlineUsers()

	default:
		// 不明なコマンド
		s.sendErrorMessage(fmt.Sprintf("unknown command: %s", cmd))
	}
}

func (s *session) sendOnlineUsers() {
	if err := s.Send(OnlineUsersEvent, s.streamer.registry.Snapshot()); err != nil {
		s.streamer.logger.Debug("failed to reply online users", zap.String("key", s.key), zap.Stringer("userID", s.userID), zap.Error(err))
	}
}

func (s *session) sendErrorMessage(error string) {
	_ = s.Send(ErrorEvent, error)
}
