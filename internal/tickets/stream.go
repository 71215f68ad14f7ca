package tickets

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	pkgerrors "github.com/luxerealty/luxerealty-backend/pkg/errors"
	"github.com/luxerealty/luxerealty-backend/pkg/logger"
	pkgredis "github.com/luxerealty/luxerealty-backend/pkg/redis"
)

// Streamer fans live ticket replies out to connected clients via redis
// pub/sub. Each subscriber holds its own redis subscription.
type Streamer struct {
	redis *pkgredis.Client
	logg  *logger.Logger
}

// NewStreamer constructs a reply streamer.
func NewStreamer(redisClient *pkgredis.Client, logg *logger.Logger) (*Streamer, error) {
	if redisClient == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "redis client required")
	}
	return &Streamer{redis: redisClient, logg: logg}, nil
}

// SubscribeReplies opens a live feed of replies for one ticket. The returned
// cancel func must be called to release the subscription; the channel closes
// once the subscription ends.
func (s *Streamer) SubscribeReplies(ctx context.Context, ticketID uuid.UUID) (<-chan ReplyDTO, func(), error) {
	if ticketID == uuid.Nil {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "ticket id is required")
	}

	channel := s.redis.TicketRepliesChannel(ticketID.String())
	sub, err := s.redis.Subscribe(ctx, channel)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "subscribe ticket replies")
	}

	out := make(chan ReplyDTO)
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			_ = sub.Close()
		})
	}

	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var reply ReplyDTO
			if err := json.Unmarshal([]byte(msg.Payload), &reply); err != nil {
				if s.logg != nil {
					s.logg.Warn(ctx, "dropping malformed reply message")
				}
				continue
			}
			select {
			case out <- reply:
			case <-ctx.Done():
				cancel()
				return
			}
		}
	}()

	return out, cancel, nil
}
