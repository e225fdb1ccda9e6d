// Package memory holds conversation history between agent runs.
package memory

import (
	"context"

	"github.com/antgroup/tripmate/schema"
)

// Buffer is an in-memory message history. A window of 0 keeps everything,
// otherwise Load returns at most the last window messages.
type Buffer struct {
	Messages []schema.Message
	window   int
}

func NewBufferMemory() *Buffer {
	return &Buffer{}
}

func NewBufferWindowMemory(window int) *Buffer {
	return &Buffer{window: window}
}

func (c *Buffer) Load(_ context.Context, filter func(index int, message schema.Message) bool) []schema.Message {
	msgs := make([]schema.Message, 0, len(c.Messages))
	for i, message := range c.Messages {
		if filter == nil || filter(i, message) {
			msgs = append(msgs, message)
		}
	}
	if len(msgs) > c.window && c.window > 0 {
		msgs = msgs[len(msgs)-c.window:]
	}
	return msgs
}

func (c *Buffer) Save(_ context.Context, msg schema.Message) error {
	c.Messages = append(c.Messages, msg)
	return nil
}

func (c *Buffer) Clear(_ context.Context) error {
	c.Messages = c.Messages[:0]
	return nil
}
