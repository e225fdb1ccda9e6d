package schema

import (
	"context"
	"strings"
	"testing"

	"github.com/antgroup/tripmate/tool"
)

type fakeTool struct {
	name string
	desc string
}

func (f fakeTool) Name() string { return f.name }

func (f fakeTool) Description() string { return f.desc }

func (f fakeTool) Strict() bool { return false }

func (f fakeTool) Schema() *tool.PropertiesSchema { return nil }

func (f fakeTool) Call(context.Context, string) (string, error) {
	return "", nil
}

func TestConvertToolNames(t *testing.T) {
	names := ConvertToolNames([]tool.Tool{
		fakeTool{name: "FlightSearch"},
		fakeTool{name: "WeatherLookup"},
	})
	if names != "FlightSearch, WeatherLookup" {
		t.Fatalf("unexpected names: %s", names)
	}
}

func TestConvertToolDescriptions(t *testing.T) {
	descs := ConvertToolDescriptions([]tool.Tool{
		fakeTool{name: "FlightSearch", desc: "finds flights"},
	})
	if descs != "- FlightSearch: finds flights\n" {
		t.Fatalf("unexpected descriptions: %q", descs)
	}
}

func TestConvertConstructScratchPad(t *testing.T) {
	messages := []Message{
		NewUserMessage("User", "plan a trip"),
		{Type: MsgTypeMsg, Sender: "TravelPlanner", Content: "working on it"},
	}
	steps := []StepAction{
		{Thought: "check flights", Action: "FlightSearch", Input: "{}", Observation: "found 3"},
		{Log: "bad json", Feedback: "parse output failed"},
	}

	pad := ConvertConstructScratchPad("TravelPlanner", "me", messages, steps)
	for _, want := range []string{
		"(User): plan a trip",
		"(me): working on it",
		"(me)Thought: check flights",
		"Observation: found 3",
		"Feedback: parse output failed",
	} {
		if !strings.Contains(pad, want) {
			t.Fatalf("scratchpad missing %q:\n%s", want, pad)
		}
	}
}

func TestMessageTypes(t *testing.T) {
	end := Message{Type: "end"}
	if !end.IsEnd() || end.IsMsg() {
		t.Fatal("end message misclassified")
	}
	msg := NewUserMessage("User", "hi")
	if !msg.IsMsg() || msg.IsEnd() {
		t.Fatal("user message misclassified")
	}
}
