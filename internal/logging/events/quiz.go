package events

import "github.com/AssassinTK/readlog-ai-tracker/internal/logging"

type QuizTracer struct{}

var Quiz = QuizTracer{}

func (QuizTracer) Requested(recordID, title string) {
	logging.Trace("quiz.request", map[string]interface{}{"id": recordID, "title": title})
}

func (QuizTracer) Ready(recordID string, questions int) {
	logging.Trace("quiz.ready", map[string]interface{}{"id": recordID, "questions": questions})
}

func (QuizTracer) Answered(recordID string, question int, correct bool) {
	logging.Trace("quiz.answer", map[string]interface{}{"id": recordID, "question": question, "correct": correct})
}

func (QuizTracer) Failed(recordID string, err error) {
	payload := map[string]interface{}{"id": recordID}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("quiz.fail", payload)
}
