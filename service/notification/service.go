package notification

import (
	"sync"

	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"

	"github.com/quickchat/quickchat/repository"
)

// Service 通知サービス
type Service struct {
	repo     repository.Repository
	notifier *Notifier
	hub      *hub.Hub
	logger   *zap.Logger
	sub      hub.Subscription
	wg       sync.WaitGroup
	done     chan struct{}
}

// NewService 通知サービスを作成して起動します
func NewService(repo repository.Repository, notifier *Notifier, hub *hub.Hub, logger *zap.Logger) *Service {
	service := &Service{
		repo:     repo,
		notifier: notifier,
		hub:      hub,
		logger:   logger.Named("notification"),
		done:     make(chan struct{}),
	}

	topics := make([]string, 0, len(handlerMap))
	for k := range handlerMap {
		topics = append(topics, k)
	}
	// 起動直後のイベントを取りこぼさないように、先に購読しておく
	service.sub = hub.Subscribe(200, topics...)

	go func() {
		defer close(service.done)
		for msg := range service.sub.Receiver {
			h, ok := handlerMap[msg.Topic()]
			if !ok {
				continue
			}
			// 送信は発行順に行う。DBに書き込むハンドラだけ別goroutineで実行する
			if blockingTopics[msg.Topic()] {
				service.wg.Add(1)
				go func() {
					defer service.wg.Done()
					h(service, msg)
				}()
			} else {
				h(service, msg)
			}
		}
	}()
	return service
}

// Close 購読を停止し、処理中のハンドラの終了を待ちます
func (s *Service) Close() {
	s.hub.Unsubscribe(s.sub)
	<-s.done
	s.wg.Wait()
}
