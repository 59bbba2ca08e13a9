package messagestream

import (
	"tour-backoffice/config"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Amqp hands out publishers and subscribers. Without a broker URL both
// sides share one in-process channel, so events still reach local
// consumers.
type Amqp struct {
	cfg     *config.MessageStreamConfig
	logger  watermill.LoggerAdapter
	channel *gochannel.GoChannel
}

func NewAmpq(cfg *config.MessageStreamConfig, logger watermill.LoggerAdapter) *Amqp {
	a := &Amqp{
		cfg:    cfg,
		logger: logger,
	}
	if cfg.AmqpURL == "" {
		a.channel = gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, logger)
	}
	return a
}

// InProcess reports whether no broker is configured.
func (a *Amqp) InProcess() bool {
	return a.channel != nil
}

func (a *Amqp) amqpConfig() amqp.Config {
	return amqp.NewDurablePubSubConfig(a.cfg.AmqpURL, amqp.GenerateQueueNameTopicName)
}

func (a *Amqp) NewPublisher() (message.Publisher, error) {
	if a.channel != nil {
		return a.channel, nil
	}
	return amqp.NewPublisher(a.amqpConfig(), a.logger)
}

func (a *Amqp) NewSubscriber() (message.Subscriber, error) {
	if a.channel != nil {
		return a.channel, nil
	}
	return amqp.NewSubscriber(a.amqpConfig(), a.logger)
}

// NewRouter consumes topic with handlerFunc. Messages the handler rejects
// are moved to poisonTopic instead of being redelivered forever.
func NewRouter(pub message.Publisher, poisonTopic string, handlerName string, topic string, sub message.Subscriber, handlerFunc message.NoPublishHandlerFunc, logger watermill.LoggerAdapter) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	poisonQueue, err := middleware.PoisonQueue(pub, poisonTopic)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(
		middleware.Recoverer,
		poisonQueue,
	)

	router.AddNoPublisherHandler(handlerName, topic, sub, handlerFunc)

	return router, nil
}
