package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeClosePosting = "posting:close"

type PostingPayload struct {
	PostingID string `json:"posting_id"`
}

func NewClosePostingTask(postingID string) (*asynq.Task, error) {
	payload, err := json.Marshal(PostingPayload{PostingID: postingID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeClosePosting, payload), nil
}

const TypeRecalcAllScores = "score:recalculate_all"

func NewRecalcAllScoresTask() (*asynq.Task, error) {
	return asynq.NewTask(TypeRecalcAllScores, nil), nil
}
