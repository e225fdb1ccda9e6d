package schema

import "strings"

const (
	MsgTypeMsg = "MSG"
	MsgTypeEnd = "END"
)

// Message is one turn of the planning conversation. Type is MSG for an
// intermediate turn and END for the agent's final answer.
type Message struct {
	Type    string `json:"cate"`
	Thought string `json:"thought"`
	Content string `json:"content"`
	Sender  string `json:"sender"`
	Token   int    `json:"token"`
	Log     string
}

func (m *Message) IsEnd() bool {
	return strings.EqualFold(m.Type, MsgTypeEnd)
}

func (m *Message) IsMsg() bool {
	return strings.EqualFold(m.Type, MsgTypeMsg)
}

func NewUserMessage(sender, content string) Message {
	return Message{Type: MsgTypeMsg, Sender: sender, Content: content}
}
