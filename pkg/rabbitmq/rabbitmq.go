package rabbitmq

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

func (c *connectionImpl) connect() error {
	ctx, cancel := context.WithTimeout(context.Background(), RetryConnectionTimeout)
	defer cancel()

	for attempt := 1; ; attempt++ {
		c.l.Infof(ctx, "rabbitmq.connect: attempt %d", attempt)
		conn, err := amqp.Dial(c.url)
		if err == nil {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
			c.listenNotifyClose(conn)
			return nil
		}
		c.l.Warnf(ctx, "rabbitmq.connect: %v", err)

		select {
		case <-ctx.Done():
			return ErrConnectionTimeout
		case <-time.After(RetryConnectionDelay):
		}
	}
}

func (c *connectionImpl) listenNotifyClose(conn *amqp.Connection) {
	notifyClose := conn.NotifyClose(make(chan *amqp.Error, 1))
	go func() {
		amqpErr, ok := <-notifyClose
		if !ok || amqpErr == nil {
			return
		}
		c.mu.Lock()
		c.conn = nil
		closed := c.closed
		c.mu.Unlock()
		if closed {
			return
		}

		c.l.Warnf(context.Background(), "rabbitmq.listenNotifyClose: connection lost: %v", amqpErr)
		for {
			if err := c.connect(); err == nil {
				break
			}
		}

		c.mu.RLock()
		subs := append([]chan struct{}(nil), c.reconnects...)
		c.mu.RUnlock()
		for _, s := range subs {
			select {
			case s <- struct{}{}:
			default:
			}
		}
	}()
}

func (c *connectionImpl) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn != nil && !c.conn.IsClosed()
}

func (c *connectionImpl) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

func (c *connectionImpl) rawChannel() (*amqp.Channel, error) {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()
	if conn == nil {
		return nil, ErrNotConnected
	}
	return conn.Channel()
}

func (c *connectionImpl) Channel() (IChannel, error) {
	ch, err := c.rawChannel()
	if err != nil {
		return nil, err
	}

	notify := make(chan struct{}, 1)
	c.mu.Lock()
	c.reconnects = append(c.reconnects, notify)
	c.mu.Unlock()

	impl := &channelImpl{conn: c, ch: ch}
	go impl.listenReconnect(notify)
	return impl, nil
}

func (ch *channelImpl) listenReconnect(notify <-chan struct{}) {
	for range notify {
		raw, err := ch.conn.rawChannel()
		if err != nil {
			ch.conn.l.Errorf(context.Background(), "rabbitmq.listenReconnect: %v", err)
			continue
		}
		ch.mu.Lock()
		_ = ch.ch.Close()
		ch.ch = raw
		ch.mu.Unlock()
	}
}

func (ch *channelImpl) current() *amqp.Channel {
	ch.mu.RLock()
	defer ch.mu.RUnlock()
	return ch.ch
}

func (ch *channelImpl) ExchangeDeclare(exc ExchangeArgs) error {
	return ch.current().ExchangeDeclare(exc.spread())
}

func (ch *channelImpl) QueueDeclare(queue QueueArgs) (amqp.Queue, error) {
	return ch.current().QueueDeclare(queue.spread())
}

func (ch *channelImpl) QueueBind(queueBind QueueBindArgs) error {
	return ch.current().QueueBind(queueBind.spread())
}

func (ch *channelImpl) Publish(ctx context.Context, publish PublishArgs) error {
	return ch.current().PublishWithContext(publish.spread(ctx))
}

func (ch *channelImpl) Close() error {
	return ch.current().Close()
}
