package events

import "github.com/AssassinTK/readlog-ai-tracker/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) ItemSelect(bucket, itemID, title string) {
	logging.Trace("ui.select", map[string]interface{}{
		"bucket": bucket,
		"item":   itemID,
		"title":  title,
	})
}

func (UITracer) Cursor(bucket string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"bucket": bucket, "cursor": cursor})
}

func (UITracer) Panel(visible, pinned bool) {
	logging.Trace("ui.panel", map[string]interface{}{"visible": visible, "pinned": pinned})
}

func (UITracer) Mode(mode string) {
	logging.Trace("ui.mode", map[string]interface{}{"mode": mode})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared(bucket string) {
	logging.Trace("filter.clear", map[string]interface{}{"bucket": bucket})
}

func (FilterTracer) Append(bucket, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"bucket": bucket, "filter": filter})
}

func (FilterTracer) Backspace(bucket, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"bucket": bucket, "filter": filter})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
